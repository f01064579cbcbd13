package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/intellihealth/api/internal/domain"
	"github.com/intellihealth/api/internal/store"
)

// PostgreSQL unique violation error code.
const uniqueViolationCode = "23505"

// UserStore implements the store.UserStore interface using PostgreSQL.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a PostgreSQL implementation of store.UserStore.
// It accepts a database connection that is initialized and managed by the
// caller.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// Ensure UserStore implements store.UserStore.
var _ store.UserStore = (*UserStore)(nil)

// isUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation, which is how a duplicate username surfaces.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// Create implements store.UserStore.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password) VALUES ($1, $2)`,
		user.Username, user.Password)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrUsernameExists
		}
		return fmt.Errorf("inserting user: %w", err)
	}

	return nil
}

// GetByUsername implements store.UserStore.GetByUsername.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := s.db.QueryRowContext(ctx,
		`SELECT username, password FROM users WHERE username = $1`,
		username).Scan(&user.Username, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}

	return &user, nil
}
