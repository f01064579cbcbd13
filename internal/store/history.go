package store

import (
	"context"

	"github.com/intellihealth/api/internal/domain"
)

// HistoryStore defines the interface for the durable, append-only health
// history. The write-once-per-session guard lives upstream in the service
// layer; implementations only have to make each Append durable and keep
// concurrent appends from losing each other.
type HistoryStore interface {
	// Append durably adds one record.
	Append(ctx context.Context, record *domain.HealthRecord) error

	// QueryByUser returns the records for one user in the order they were
	// appended. A user with no records gets an empty slice, not an error.
	QueryByUser(ctx context.Context, username string) ([]domain.HealthRecord, error)
}
