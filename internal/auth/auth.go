// Package auth provides the sign-in collaborator. The app ships a stub
// backend gated on a development email; a live remote backend is an
// external boundary selected by configuration, not part of this package.
package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dkrastev/wellkeeper/internal/common"
	"github.com/dkrastev/wellkeeper/internal/logging"
)

// User is the authenticated identity.
type User struct {
	ID    string `json:"uid"`
	Email string `json:"email"`
}

// Session pairs a user with their signed session token.
type Session struct {
	User  User
	Token string
}

// Backend performs the actual credential check.
type Backend interface {
	SignIn(ctx context.Context, email, password string) (User, error)
}

// StubBackend accepts only the configured development email. When a dev
// password is configured it is bcrypt-checked; otherwise only the email is
// checked, matching the shipped stub behavior. A small delay simulates the
// network round trip.
type StubBackend struct {
	devEmail string
	pwHash   []byte
	delay    time.Duration
}

func NewStubBackend(devEmail, devPassword string, delay time.Duration) (*StubBackend, error) {
	b := &StubBackend{devEmail: devEmail, delay: delay}
	if devPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(devPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash dev password: %w", err)
		}
		b.pwHash = hash
	}
	return b, nil
}

func (b *StubBackend) SignIn(ctx context.Context, email, password string) (User, error) {
	if b.delay > 0 {
		select {
		case <-time.After(b.delay):
		case <-ctx.Done():
			return User{}, ctx.Err()
		}
	}

	if email != b.devEmail {
		return User{}, fmt.Errorf("%w: please use %s to sign in", common.ErrUnauthorized, b.devEmail)
	}
	if b.pwHash != nil {
		if err := bcrypt.CompareHashAndPassword(b.pwHash, []byte(password)); err != nil {
			return User{}, fmt.Errorf("%w: wrong password", common.ErrUnauthorized)
		}
	}
	return User{ID: "dev-user", Email: email}, nil
}

// Service wraps a backend with local session-token handling.
type Service struct {
	backend  Backend
	log      logging.Logger
	secret   []byte
	validity time.Duration

	session *Session
}

func NewService(backend Backend, log logging.Logger, secret []byte, validity time.Duration) *Service {
	return &Service{
		backend:  backend,
		log:      log.With("service", "auth"),
		secret:   secret,
		validity: validity,
	}
}

// SignIn authenticates against the backend and issues a session token.
func (s *Service) SignIn(ctx context.Context, email, password string) (Session, error) {
	user, err := s.backend.SignIn(ctx, email, password)
	if err != nil {
		return Session{}, err
	}

	token, err := GenerateToken(user.ID, s.secret, s.validity)
	if err != nil {
		return Session{}, err
	}

	session := Session{User: user, Token: token}
	s.session = &session
	s.log.Info(ctx, "signed in", "email", user.Email)
	return session, nil
}

// SignOut clears the current session.
func (s *Service) SignOut(ctx context.Context) {
	if s.session != nil {
		s.log.Info(ctx, "signed out", "email", s.session.User.Email)
	}
	s.session = nil
}

// Session returns the current session, if signed in.
func (s *Service) Session() (Session, bool) {
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

// Verify validates a session token and returns the user id it carries.
func (s *Service) Verify(token string) (string, error) {
	return GetUserIDFromToken(token, s.secret)
}
