package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/intellihealth/api/internal/domain"
	"github.com/intellihealth/api/internal/features"
	"github.com/intellihealth/api/internal/model"
	"github.com/intellihealth/api/internal/store"
)

// AssessmentService runs the inference pipeline: it builds the feature
// vector for a metric, dispatches to that metric's predictor, caches the
// score in the session, and persists completed sessions to the history
// store exactly once.
type AssessmentService struct {
	registry *model.Registry
	history  store.HistoryStore
	logger   *slog.Logger
	timeFunc func() time.Time // Injectable for testing
}

// NewAssessmentService creates a new AssessmentService.
func NewAssessmentService(registry *model.Registry, history store.HistoryStore, logger *slog.Logger) *AssessmentService {
	return &AssessmentService{
		registry: registry,
		history:  history,
		logger:   logger.With("component", "assessment_service"),
		timeFunc: time.Now,
	}
}

// Predict builds the metric's feature vector from the raw inputs, invokes
// the metric's predictor, and caches the raw score in the session. The
// score is returned unrounded and unclamped.
func (s *AssessmentService) Predict(
	ctx context.Context,
	sess *Session,
	m domain.Metric,
	in features.Inputs,
) (float64, error) {
	vector, err := features.Build(m, in, s.registry.Schema(m))
	if err != nil {
		return 0, err
	}

	score, err := s.registry.Predictor(m).Predict(vector)
	if err != nil {
		s.logger.Error("prediction failed", "error", err, "metric", m, "username", sess.Username)
		return 0, fmt.Errorf("predicting %s: %w", m, err)
	}

	sess.SetResult(m, score)

	s.logger.Debug("prediction complete",
		"metric", m,
		"username", sess.Username,
		"score", score)
	return score, nil
}

// Overview returns the session's complete score set, or
// ErrResultsIncomplete while any metric is still missing.
func (s *AssessmentService) Overview(sess *Session) (ResultSet, error) {
	r, ok := sess.Results()
	if !ok {
		return ResultSet{}, ErrResultsIncomplete
	}
	return r, nil
}

// MaybeSaveHistory appends the session's scores to the user's history if
// all three are present and this session has not saved yet. It is
// idempotent: the first successful call per session appends one record and
// every later call is a no-op, reported by the returned boolean.
//
// A failed append leaves the session unsaved, so the next call retries.
func (s *AssessmentService) MaybeSaveHistory(ctx context.Context, sess *Session) (bool, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.historySaved {
		return false, nil
	}

	r, ok := sess.resultsLocked()
	if !ok {
		return false, ErrResultsIncomplete
	}

	record := domain.NewHealthRecord(sess.Username, s.timeFunc(), r.Stress, r.Sleep, r.Calories)
	if err := s.history.Append(ctx, record); err != nil {
		s.logger.Error("failed to append health record",
			"error", err,
			"username", sess.Username,
			"session_id", sess.ID)
		return false, fmt.Errorf("appending health record: %w", err)
	}

	sess.historySaved = true
	s.logger.Info("health record saved", "username", sess.Username, "session_id", sess.ID)
	return true, nil
}

// History returns the user's records in append order.
func (s *AssessmentService) History(ctx context.Context, username string) ([]domain.HealthRecord, error) {
	records, err := s.history.QueryByUser(ctx, username)
	if err != nil {
		s.logger.Error("failed to query history", "error", err, "username", username)
		return nil, fmt.Errorf("querying history: %w", err)
	}
	return records, nil
}
