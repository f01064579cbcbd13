// Package store defines the persistence interfaces the service layer is
// written against. Implementations live under internal/platform.
package store

import (
	"context"

	"github.com/intellihealth/api/internal/domain"
)

// UserStore defines the interface for account persistence.
//
// Accounts are created on signup and never mutated or deleted afterwards,
// so the interface is deliberately append-and-lookup only.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrUsernameExists if the username is already taken; the store
	// is left unchanged in that case.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by exact, case-sensitive username match.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
