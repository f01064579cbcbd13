package csvfile

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/intellihealth/api/internal/domain"
	"github.com/intellihealth/api/internal/store"
)

var historyHeader = []string{"username", "timestamp", "stress", "sleep", "calories"}

// HistoryStore implements store.HistoryStore backed by a single append-only
// CSV file with columns username,timestamp,stress,sleep,calories.
type HistoryStore struct {
	path string
	mu   sync.Mutex
}

// NewHistoryStore creates a HistoryStore over the given file path. The file
// is created lazily on first use.
func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{path: path}
}

// Ensure HistoryStore implements store.HistoryStore.
var _ store.HistoryStore = (*HistoryStore)(nil)

// Append implements store.HistoryStore.Append.
func (s *HistoryStore) Append(ctx context.Context, record *domain.HealthRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := []string{
		record.Username,
		record.Timestamp.Format(domain.TimestampLayout),
		formatScore(record.Stress),
		formatScore(record.Sleep),
		formatScore(record.Calories),
	}
	return appendRow(s.path, historyHeader, row)
}

// QueryByUser implements store.HistoryStore.QueryByUser. Rows come back in
// file order, which is append order.
func (s *HistoryStore) QueryByUser(ctx context.Context, username string) ([]domain.HealthRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := readRows(s.path, historyHeader)
	if err != nil {
		return nil, err
	}

	records := make([]domain.HealthRecord, 0, len(rows))
	for _, row := range rows {
		if row[0] != username {
			continue
		}
		rec, ok := parseRecord(row)
		if !ok {
			// Unparsable rows are treated like the rest of a corrupt file:
			// skipped rather than surfaced, so one bad row cannot block the
			// whole history view.
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRecord(row []string) (domain.HealthRecord, bool) {
	ts, err := time.Parse(domain.TimestampLayout, row[1])
	if err != nil {
		return domain.HealthRecord{}, false
	}

	scores := make([]float64, 3)
	for i, col := range row[2:5] {
		v, err := strconv.ParseFloat(col, 64)
		if err != nil {
			return domain.HealthRecord{}, false
		}
		scores[i] = v
	}

	return domain.HealthRecord{
		Username:  row[0],
		Timestamp: ts,
		Stress:    scores[0],
		Sleep:     scores[1],
		Calories:  scores[2],
	}, true
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
