package profile

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrastev/wellkeeper/internal/logging"
	"github.com/dkrastev/wellkeeper/internal/storage"
)

func ptr[T any](v T) *T { return &v }

func newTestStore(t *testing.T) (*Store, *storage.MemoryAdapter) {
	t.Helper()
	adapter := storage.NewMemoryAdapter()
	return NewStore(adapter, logging.New(logging.EnvProd, io.Discard)), adapter
}

func TestStore_LoadEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	p, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Profile{}, p)
}

func TestStore_UpdateMergesShallowly(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Update(ctx, Profile{WeightKg: ptr(80.0)})
	require.NoError(t, err)

	p, err := s.Update(ctx, Profile{HeightCm: ptr(170.0)})
	require.NoError(t, err)

	require.NotNil(t, p.WeightKg)
	require.NotNil(t, p.HeightCm)
	assert.Equal(t, 80.0, *p.WeightKg)
	assert.Equal(t, 170.0, *p.HeightCm)
}

func TestStore_UpdateReplacesNestedStructInFull(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Update(ctx, Profile{HealthGoals: &HealthGoals{
		PrimaryGoal: "sleep",
		Sleep:       &SleepGoal{CurrentHours: 6, TargetHours: 8},
	}})
	require.NoError(t, err)

	// The merge is shallow: a new healthGoals value replaces the old one
	// wholesale, it is not deep-merged.
	p, err := s.Update(ctx, Profile{HealthGoals: &HealthGoals{PrimaryGoal: "stress"}})
	require.NoError(t, err)
	require.NotNil(t, p.HealthGoals)
	assert.Equal(t, "stress", p.HealthGoals.PrimaryGoal)
	assert.Nil(t, p.HealthGoals.Sleep)
}

func TestStore_DateOfBirthRoundTrip(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	log := logging.New(logging.EnvProd, io.Discard)
	ctx := context.Background()

	dob := time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC)
	s1 := NewStore(adapter, log)
	_, err := s1.Update(ctx, Profile{DateOfBirth: ptr(dob)})
	require.NoError(t, err)

	// Restart: a fresh store parses the ISO string back into a time.
	s2 := NewStore(adapter, log)
	p, err := s2.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, p.DateOfBirth)
	assert.True(t, p.DateOfBirth.Equal(dob))
}

func TestStore_UpdatePropagatesWriteFailure(t *testing.T) {
	s, adapter := newTestStore(t)
	ctx := context.Background()

	_, err := s.Update(ctx, Profile{WeightKg: ptr(80.0)})
	require.NoError(t, err)

	boom := errors.New("disk full")
	adapter.FailSet = boom
	_, err = s.Update(ctx, Profile{WeightKg: ptr(90.0)})
	assert.ErrorIs(t, err, boom)

	// The in-memory copy still holds the last successfully written state.
	adapter.FailSet = nil
	p, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, p.WeightKg)
	assert.Equal(t, 80.0, *p.WeightKg)
}

func TestStore_LoadCorruptJSON(t *testing.T) {
	s, adapter := newTestStore(t)
	adapter.Seed("profile", `{"weight":`)

	_, err := s.Load(context.Background())
	assert.Error(t, err)
}

func TestStore_UnknownFieldsAreTolerated(t *testing.T) {
	s, adapter := newTestStore(t)
	adapter.Seed("profile", `{"weight":72.5,"futureField":{"x":1}}`)

	p, err := s.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, p.WeightKg)
	assert.Equal(t, 72.5, *p.WeightKg)
}
