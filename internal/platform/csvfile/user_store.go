package csvfile

import (
	"context"
	"fmt"
	"sync"

	"github.com/intellihealth/api/internal/domain"
	"github.com/intellihealth/api/internal/store"
)

var userHeader = []string{"username", "password"}

// UserStore implements store.UserStore backed by a single CSV file with
// columns username,password.
type UserStore struct {
	path string
	mu   sync.Mutex
}

// NewUserStore creates a UserStore over the given file path. The file is
// created lazily on first use.
func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

// Ensure UserStore implements store.UserStore.
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := readRows(s.path, userHeader)
	if err != nil {
		return err
	}

	for _, row := range rows {
		if row[0] == user.Username {
			return store.ErrUsernameExists
		}
	}

	return appendRow(s.path, userHeader, []string{user.Username, user.Password})
}

// GetByUsername implements store.UserStore.GetByUsername.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := readRows(s.path, userHeader)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row[0] == username {
			return &domain.User{Username: row[0], Password: row[1]}, nil
		}
	}

	return nil, store.ErrUserNotFound
}
