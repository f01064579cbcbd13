package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/intellihealth/api/internal/domain"
	"github.com/intellihealth/api/internal/service/auth"
	"github.com/intellihealth/api/internal/store"
)

// IdentityService handles signup, login, and logout. Login creates the
// assessment session; logout destroys it.
type IdentityService struct {
	users    store.UserStore
	sessions *SessionRegistry
	scheme   auth.PasswordScheme
	logger   *slog.Logger
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(
	users store.UserStore,
	sessions *SessionRegistry,
	scheme auth.PasswordScheme,
	logger *slog.Logger,
) *IdentityService {
	return &IdentityService{
		users:    users,
		sessions: sessions,
		scheme:   scheme,
		logger:   logger.With("component", "identity_service"),
	}
}

// Register creates a new account. Returns store.ErrUsernameExists when the
// username is taken; the store is left unchanged in that case.
func (s *IdentityService) Register(ctx context.Context, username, password string) error {
	stored, err := s.scheme.Hash(password)
	if err != nil {
		return fmt.Errorf("preparing credential: %w", err)
	}

	user, err := domain.NewUser(username, stored)
	if err != nil {
		return err
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			return err
		}
		s.logger.Error("failed to create user", "error", err, "username", username)
		return fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user registered", "username", username)
	return nil
}

// Login checks credentials and, on success, starts a fresh assessment
// session. Unknown usernames and wrong passwords both come back as
// ErrInvalidCredentials.
func (s *IdentityService) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user", "error", err, "username", username)
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := s.scheme.Compare(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	sess := s.sessions.Create(username)
	s.logger.Info("user logged in", "username", username, "session_id", sess.ID)
	return sess, nil
}

// Logout destroys the session, clearing its cached results.
func (s *IdentityService) Logout(ctx context.Context, sess *Session) {
	s.sessions.Delete(sess.ID)
	s.logger.Info("user logged out", "username", sess.Username, "session_id", sess.ID)
}
