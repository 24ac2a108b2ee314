package auth

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrastev/wellkeeper/internal/common"
	"github.com/dkrastev/wellkeeper/internal/logging"
)

func newTestService(t *testing.T, devPassword string, validity time.Duration) *Service {
	t.Helper()
	backend, err := NewStubBackend("test@test.com", devPassword, 0)
	require.NoError(t, err)
	return NewService(backend, logging.New(logging.EnvProd, io.Discard), []byte("test-secret"), validity)
}

func TestStubBackend_EmailGate(t *testing.T) {
	backend, err := NewStubBackend("test@test.com", "", 0)
	require.NoError(t, err)
	ctx := context.Background()

	user, err := backend.SignIn(ctx, "test@test.com", "anything")
	require.NoError(t, err)
	assert.Equal(t, "dev-user", user.ID)

	_, err = backend.SignIn(ctx, "someone@else.com", "anything")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestStubBackend_PasswordCheck(t *testing.T) {
	backend, err := NewStubBackend("test@test.com", "hunter2", 0)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = backend.SignIn(ctx, "test@test.com", "hunter2")
	require.NoError(t, err)

	_, err = backend.SignIn(ctx, "test@test.com", "wrong")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestStubBackend_DelayRespectsContext(t *testing.T) {
	backend, err := NewStubBackend("test@test.com", "", time.Minute)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = backend.SignIn(ctx, "test@test.com", "")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestService_SignInIssuesVerifiableToken(t *testing.T) {
	s := newTestService(t, "", time.Hour)
	ctx := context.Background()

	session, err := s.SignIn(ctx, "test@test.com", "")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)

	userID, err := s.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "dev-user", userID)

	got, ok := s.Session()
	require.True(t, ok)
	assert.Equal(t, session.Token, got.Token)
}

func TestService_SignOutClearsSession(t *testing.T) {
	s := newTestService(t, "", time.Hour)
	ctx := context.Background()

	_, err := s.SignIn(ctx, "test@test.com", "")
	require.NoError(t, err)

	s.SignOut(ctx)
	_, ok := s.Session()
	assert.False(t, ok)
}

func TestVerify_ExpiredAndGarbageTokens(t *testing.T) {
	s := newTestService(t, "", -time.Minute)
	ctx := context.Background()

	session, err := s.SignIn(ctx, "test@test.com", "")
	require.NoError(t, err)

	_, err = s.Verify(session.Token)
	assert.ErrorIs(t, err, common.ErrTokenExpired)

	_, err = s.Verify("not.a.token")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := GenerateToken("dev-user", []byte("other-secret"), time.Hour)
	require.NoError(t, err)

	s := newTestService(t, "", time.Hour)
	_, err = s.Verify(token)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
