package model

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intellihealth/api/internal/domain"
)

func writeArtifact(t *testing.T, path string, v any) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, gob.NewEncoder(f).Encode(v))
	require.NoError(t, f.Close())
}

// writeArtifactDir lays down a complete artifact set: identity-ish weights
// so predictions are easy to reason about in tests.
func writeArtifactDir(t *testing.T, dir string) {
	t.Helper()

	schemas := map[domain.Metric][]string{
		domain.MetricStress:  {"a", "b"},
		domain.MetricSleep:   {"a", "b", "c"},
		domain.MetricCalorie: {"a"},
	}

	for m, schema := range schemas {
		weights := make([]float64, len(schema))
		for i := range weights {
			weights[i] = 1
		}
		lm := LinearModel{Weights: weights, Intercept: 10}
		writeArtifact(t, filepath.Join(dir, string(m)+"_model.gob"), &lm)
		writeArtifact(t, filepath.Join(dir, string(m)+"_features.gob"), schema)
	}
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeArtifactDir(t, dir)

	reg, err := LoadDir(dir)
	require.NoError(t, err)

	for _, m := range domain.Metrics {
		assert.NotNil(t, reg.Predictor(m), "predictor for %s", m)
		assert.NotEmpty(t, reg.Schema(m), "schema for %s", m)
	}

	// Sum of features plus intercept, per the trivial weights above.
	score, err := reg.Predictor(domain.MetricStress).Predict([]float64{2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 15.0, score, 1e-9)
}

func TestLoadDirMissingArtifactFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		remove string
	}{
		{"missing model file", "sleep_model.gob"},
		{"missing feature schema file", "calorie_features.gob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeArtifactDir(t, dir)
			require.NoError(t, os.Remove(filepath.Join(dir, tt.remove)))

			// No partial-functionality mode: one missing artifact fails the
			// whole load.
			_, err := LoadDir(dir)
			assert.Error(t, err)
		})
	}
}

func TestLoadDirCorruptArtifactFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeArtifactDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stress_model.gob"), []byte("not gob"), 0o644))

	_, err := LoadDir(dir)
	assert.Error(t, err)
}

func TestLinearModelDimensionMismatch(t *testing.T) {
	t.Parallel()

	lm := LinearModel{Weights: []float64{1, 2, 3}, Intercept: 0}
	_, err := lm.Predict([]float64{1, 2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
