// Package features assembles model-ready feature vectors from raw named
// inputs. Ordering is data: vectors are emitted in whatever order the
// loaded feature schema declares, never in an order hardcoded here.
package features

import (
	"errors"
	"fmt"

	"github.com/intellihealth/api/internal/domain"
)

var (
	// ErrSchemaMismatch is returned when a loaded schema names features this
	// builder does not produce for the metric, or omits features it does.
	// A mismatch is a hard failure: features are never silently reordered,
	// truncated, or zero-filled.
	ErrSchemaMismatch = errors.New("feature schema mismatch")

	// ErrMissingInput is returned when a raw input the metric requires was
	// not supplied.
	ErrMissingInput = errors.New("missing raw input")
)

// Inputs are the raw named values collected at the input boundary. Range
// validation happens there; values arrive here unchanged.
type Inputs map[string]float64

// Raw input names each metric requires. Derived quantities are computed
// here and are not expected in Inputs.
var required = map[domain.Metric][]string{
	domain.MetricStress: {
		"rmssd", "nremhr", "resting_hr", "nightly_temp",
		"steps", "sedentary", "sleep_duration",
	},
	domain.MetricSleep: {
		"sleep_duration", "efficiency", "awake",
		"deep_ratio", "rem_ratio", "breathing", "nremhr",
	},
	domain.MetricCalorie: {
		"steps", "distance", "light", "moderate", "vigorous",
		"sedentary", "bpm", "nremhr", "rmssd", "sleep_duration",
	},
}

// Build maps raw inputs into an ordered vector matching schema, the
// metric's feature schema as declared by the loaded model artifact.
func Build(m domain.Metric, in Inputs, schema []string) ([]float64, error) {
	names, ok := required[m]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMetric, m)
	}

	produced := make(map[string]float64, len(names)+2)
	for _, name := range names {
		v, ok := in[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s/%s", ErrMissingInput, m, name)
		}
		produced[name] = v
	}

	if m == domain.MetricSleep {
		produced["minutes_asleep"] = produced["sleep_duration"] * 60

		light := 1.0 - (produced["deep_ratio"] + produced["rem_ratio"])
		if light < 0 {
			light = 0
		}
		produced["sleep_light_ratio"] = light
	}

	if len(schema) != len(produced) {
		return nil, fmt.Errorf("%w: %s schema declares %d features, builder produces %d",
			ErrSchemaMismatch, m, len(schema), len(produced))
	}

	vector := make([]float64, len(schema))
	seen := make(map[string]bool, len(schema))
	for i, name := range schema {
		v, ok := produced[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s schema declares unknown feature %q",
				ErrSchemaMismatch, m, name)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %s schema declares feature %q twice",
				ErrSchemaMismatch, m, name)
		}
		seen[name] = true
		vector[i] = v
	}

	return vector, nil
}
