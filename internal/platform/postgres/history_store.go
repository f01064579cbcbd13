package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/intellihealth/api/internal/domain"
	"github.com/intellihealth/api/internal/store"
)

// HistoryStore implements the store.HistoryStore interface using PostgreSQL.
type HistoryStore struct {
	db *sql.DB
}

// NewHistoryStore creates a PostgreSQL implementation of store.HistoryStore.
func NewHistoryStore(db *sql.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Ensure HistoryStore implements store.HistoryStore.
var _ store.HistoryStore = (*HistoryStore)(nil)

// Append implements store.HistoryStore.Append.
func (s *HistoryStore) Append(ctx context.Context, record *domain.HealthRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO health_history (username, recorded_at, stress, sleep, calories)
		 VALUES ($1, $2, $3, $4, $5)`,
		record.Username, record.Timestamp, record.Stress, record.Sleep, record.Calories)
	if err != nil {
		return fmt.Errorf("inserting health record: %w", err)
	}

	return nil
}

// QueryByUser implements store.HistoryStore.QueryByUser. Ordering by the
// serial id preserves append order.
func (s *HistoryStore) QueryByUser(ctx context.Context, username string) ([]domain.HealthRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT username, recorded_at, stress, sleep, calories
		 FROM health_history WHERE username = $1 ORDER BY id`,
		username)
	if err != nil {
		return nil, fmt.Errorf("querying health history: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []domain.HealthRecord
	for rows.Next() {
		var rec domain.HealthRecord
		if err := rows.Scan(&rec.Username, &rec.Timestamp, &rec.Stress, &rec.Sleep, &rec.Calories); err != nil {
			return nil, fmt.Errorf("scanning health record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating health history: %w", err)
	}

	if records == nil {
		records = []domain.HealthRecord{}
	}
	return records, nil
}
