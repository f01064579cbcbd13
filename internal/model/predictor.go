// Package model loads and holds the pre-trained regression artifacts the
// assessment pipeline dispatches to. Predictors are opaque: they consume an
// ordered numeric vector and produce a scalar, and nothing else about them
// is inspected after load.
package model

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when a feature vector's length does not
// match what the predictor was trained on.
var ErrDimensionMismatch = errors.New("feature vector dimension mismatch")

// Predictor is an opaque pre-trained regression model.
type Predictor interface {
	// Predict maps an ordered feature vector to a scalar score.
	Predict(features []float64) (float64, error)
}

// LinearModel is the on-disk predictor representation: the weights and
// intercept of an externally trained linear regression, gob-encoded.
type LinearModel struct {
	Weights   []float64
	Intercept float64
}

var _ Predictor = (*LinearModel)(nil)

// Predict implements Predictor as a dot product plus intercept.
func (m *LinearModel) Predict(features []float64) (float64, error) {
	if len(features) != len(m.Weights) {
		return 0, fmt.Errorf("%w: got %d features, model expects %d",
			ErrDimensionMismatch, len(features), len(m.Weights))
	}

	score := m.Intercept
	for i, w := range m.Weights {
		score += w * features[i]
	}
	return score, nil
}
