package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrastev/wellkeeper/internal/common"
)

func TestMemoryAdapter_RoundTrip(t *testing.T) {
	a := NewMemoryAdapter()
	ctx := context.Background()

	_, err := a.Get(ctx, "moods")
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, a.Set(ctx, "moods", "{}"))
	got, err := a.Get(ctx, "moods")
	require.NoError(t, err)
	assert.Equal(t, "{}", got)
}

func TestMemoryAdapter_FailureInjection(t *testing.T) {
	a := NewMemoryAdapter()
	ctx := context.Background()

	boom := errors.New("disk full")
	a.FailSet = boom
	assert.ErrorIs(t, a.Set(ctx, "k", "v"), boom)

	a.FailSet = nil
	require.NoError(t, a.Set(ctx, "k", "v"))

	a.FailGet = boom
	_, err := a.Get(ctx, "k")
	assert.ErrorIs(t, err, boom)
}
