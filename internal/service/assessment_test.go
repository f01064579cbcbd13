package service

import (
	"context"
	"encoding/gob"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intellihealth/api/internal/domain"
	"github.com/intellihealth/api/internal/features"
	"github.com/intellihealth/api/internal/model"
	"github.com/intellihealth/api/internal/store"
)

// testSchemas mirrors what the builder produces per metric, including the
// derived sleep features.
var testSchemas = map[domain.Metric][]string{
	domain.MetricStress: {
		"rmssd", "nremhr", "resting_hr", "nightly_temp",
		"steps", "sedentary", "sleep_duration",
	},
	domain.MetricSleep: {
		"sleep_duration", "efficiency", "awake", "deep_ratio", "rem_ratio",
		"breathing", "nremhr", "minutes_asleep", "sleep_light_ratio",
	},
	domain.MetricCalorie: {
		"steps", "distance", "light", "moderate", "vigorous",
		"sedentary", "bpm", "nremhr", "rmssd", "sleep_duration",
	},
}

var testIntercepts = map[domain.Metric]float64{
	domain.MetricStress:  42.5,
	domain.MetricSleep:   77.25,
	domain.MetricCalorie: 2650,
}

var testInputs = map[domain.Metric]features.Inputs{
	domain.MetricStress: {
		"rmssd": 45, "nremhr": 58, "resting_hr": 62, "nightly_temp": 0.2,
		"steps": 8000, "sedentary": 600, "sleep_duration": 7.5,
	},
	domain.MetricSleep: {
		"sleep_duration": 7.5, "efficiency": 93, "awake": 45,
		"deep_ratio": 0.18, "rem_ratio": 0.22, "breathing": 15.2, "nremhr": 58,
	},
	domain.MetricCalorie: {
		"steps": 8000, "distance": 6.1, "light": 210, "moderate": 35,
		"vigorous": 20, "sedentary": 600, "bpm": 72, "nremhr": 58,
		"rmssd": 45, "sleep_duration": 7.5,
	},
}

func encodeGobFile(t *testing.T, path string, v any) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, gob.NewEncoder(f).Encode(v))
	require.NoError(t, f.Close())
}

// newTestRegistry writes intercept-only artifacts so every prediction
// returns the metric's intercept regardless of inputs.
func newTestRegistry(t *testing.T) *model.Registry {
	t.Helper()
	dir := t.TempDir()
	for _, m := range domain.Metrics {
		schema := testSchemas[m]
		lm := model.LinearModel{Weights: make([]float64, len(schema)), Intercept: testIntercepts[m]}
		encodeGobFile(t, filepath.Join(dir, string(m)+"_model.gob"), &lm)
		encodeGobFile(t, filepath.Join(dir, string(m)+"_features.gob"), schema)
	}
	reg, err := model.LoadDir(dir)
	require.NoError(t, err)
	return reg
}

// fakeHistoryStore is an in-memory store.HistoryStore with failure
// injection for the append path.
type fakeHistoryStore struct {
	records   []domain.HealthRecord
	appendErr error
}

var _ store.HistoryStore = (*fakeHistoryStore)(nil)

func (f *fakeHistoryStore) Append(_ context.Context, record *domain.HealthRecord) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeHistoryStore) QueryByUser(_ context.Context, username string) ([]domain.HealthRecord, error) {
	out := make([]domain.HealthRecord, 0, len(f.records))
	for _, r := range f.records {
		if r.Username == username {
			out = append(out, r)
		}
	}
	return out, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAssessmentService(t *testing.T, history store.HistoryStore) *AssessmentService {
	t.Helper()
	svc := NewAssessmentService(newTestRegistry(t), history, discardLogger())
	svc.timeFunc = func() time.Time {
		return time.Date(2026, 1, 2, 8, 30, 45, 0, time.UTC)
	}
	return svc
}

func runAllPredictions(t *testing.T, svc *AssessmentService, sess *Session) {
	t.Helper()
	for _, m := range domain.Metrics {
		_, err := svc.Predict(context.Background(), sess, m, testInputs[m])
		require.NoError(t, err)
	}
}

func TestPredictCachesScore(t *testing.T) {
	t.Parallel()
	svc := newTestAssessmentService(t, &fakeHistoryStore{})
	sess := NewSessionRegistry().Create("alice")

	score, err := svc.Predict(context.Background(), sess, domain.MetricStress, testInputs[domain.MetricStress])
	require.NoError(t, err)
	assert.Equal(t, 42.5, score)

	cached, ok := sess.Result(domain.MetricStress)
	require.True(t, ok)
	assert.Equal(t, 42.5, cached)

	_, ok = sess.Result(domain.MetricSleep)
	assert.False(t, ok, "metrics not yet predicted must stay absent")
}

func TestPredictMissingInput(t *testing.T) {
	t.Parallel()
	svc := newTestAssessmentService(t, &fakeHistoryStore{})
	sess := NewSessionRegistry().Create("alice")

	in := features.Inputs{"rmssd": 45}
	_, err := svc.Predict(context.Background(), sess, domain.MetricStress, in)
	assert.ErrorIs(t, err, features.ErrMissingInput)

	_, ok := sess.Result(domain.MetricStress)
	assert.False(t, ok, "failed predictions must not cache a score")
}

func TestOverviewRequiresAllMetrics(t *testing.T) {
	t.Parallel()
	svc := newTestAssessmentService(t, &fakeHistoryStore{})
	sess := NewSessionRegistry().Create("alice")

	_, err := svc.Overview(sess)
	assert.ErrorIs(t, err, ErrResultsIncomplete)

	_, err = svc.Predict(context.Background(), sess, domain.MetricStress, testInputs[domain.MetricStress])
	require.NoError(t, err)
	_, err = svc.Overview(sess)
	assert.ErrorIs(t, err, ErrResultsIncomplete, "two metrics still missing")

	runAllPredictions(t, svc, sess)

	r, err := svc.Overview(sess)
	require.NoError(t, err)
	assert.Equal(t, ResultSet{Stress: 42.5, Sleep: 77.25, Calories: 2650}, r)
}

func TestMaybeSaveHistoryWritesOncePerSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	history := &fakeHistoryStore{}
	svc := newTestAssessmentService(t, history)
	sess := NewSessionRegistry().Create("alice")
	runAllPredictions(t, svc, sess)

	saved, err := svc.MaybeSaveHistory(ctx, sess)
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = svc.MaybeSaveHistory(ctx, sess)
	require.NoError(t, err)
	assert.False(t, saved, "second save in the same session must be a no-op")

	require.Len(t, history.records, 1)
	rec := history.records[0]
	assert.Equal(t, "alice", rec.Username)
	assert.Equal(t, 42.5, rec.Stress)
	assert.Equal(t, 77.25, rec.Sleep)
	assert.Equal(t, 2650.0, rec.Calories)
	assert.Equal(t, time.Date(2026, 1, 2, 8, 30, 0, 0, time.UTC), rec.Timestamp,
		"timestamps carry minute precision")
}

func TestMaybeSaveHistoryIncompleteResults(t *testing.T) {
	t.Parallel()
	history := &fakeHistoryStore{}
	svc := newTestAssessmentService(t, history)
	sess := NewSessionRegistry().Create("alice")

	_, err := svc.MaybeSaveHistory(context.Background(), sess)
	assert.ErrorIs(t, err, ErrResultsIncomplete)
	assert.Empty(t, history.records)
}

func TestMaybeSaveHistoryRetriesAfterAppendFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	history := &fakeHistoryStore{appendErr: errors.New("disk full")}
	svc := newTestAssessmentService(t, history)
	sess := NewSessionRegistry().Create("alice")
	runAllPredictions(t, svc, sess)

	saved, err := svc.MaybeSaveHistory(ctx, sess)
	require.Error(t, err)
	assert.False(t, saved)

	// The failed save must not flip the flag; the next call retries.
	history.appendErr = nil
	saved, err = svc.MaybeSaveHistory(ctx, sess)
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Len(t, history.records, 1)
}

func TestNewSessionsStartUnsaved(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	history := &fakeHistoryStore{}
	svc := newTestAssessmentService(t, history)
	registry := NewSessionRegistry()

	first := registry.Create("alice")
	runAllPredictions(t, svc, first)
	saved, err := svc.MaybeSaveHistory(ctx, first)
	require.NoError(t, err)
	require.True(t, saved)

	// A second login is a fresh session: empty cache, eligible to save again.
	second := registry.Create("alice")
	_, ok := second.Result(domain.MetricStress)
	assert.False(t, ok)

	runAllPredictions(t, svc, second)
	saved, err = svc.MaybeSaveHistory(ctx, second)
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Len(t, history.records, 2)
}

func TestHistoryReturnsAppendOrder(t *testing.T) {
	t.Parallel()
	history := &fakeHistoryStore{records: []domain.HealthRecord{
		{Username: "alice", Stress: 40},
		{Username: "bob", Stress: 80},
		{Username: "alice", Stress: 45},
	}}
	svc := newTestAssessmentService(t, history)

	records, err := svc.History(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 40.0, records[0].Stress)
	assert.Equal(t, 45.0, records[1].Stress)
}
