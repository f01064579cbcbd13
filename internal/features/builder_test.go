package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intellihealth/api/internal/domain"
)

func stressInputs() Inputs {
	return Inputs{
		"rmssd":          45,
		"nremhr":         58,
		"resting_hr":     62,
		"nightly_temp":   36.4,
		"steps":          8200,
		"sedentary":      540,
		"sleep_duration": 7.5,
	}
}

func sleepInputs() Inputs {
	return Inputs{
		"sleep_duration": 8,
		"efficiency":     92,
		"awake":          35,
		"deep_ratio":     0.3,
		"rem_ratio":      0.25,
		"breathing":      14.5,
		"nremhr":         56,
	}
}

var sleepSchema = []string{
	"sleep_duration", "efficiency", "minutes_asleep", "awake",
	"deep_ratio", "sleep_light_ratio", "rem_ratio", "breathing", "nremhr",
}

func TestBuildStress(t *testing.T) {
	t.Parallel()

	schema := []string{
		"rmssd", "nremhr", "resting_hr", "nightly_temp",
		"steps", "sedentary", "sleep_duration",
	}

	vector, err := Build(domain.MetricStress, stressInputs(), schema)
	require.NoError(t, err)
	assert.Equal(t, []float64{45, 58, 62, 36.4, 8200, 540, 7.5}, vector)
}

func TestBuildSleepDerivedFeatures(t *testing.T) {
	t.Parallel()

	t.Run("derives minutes asleep and light ratio", func(t *testing.T) {
		t.Parallel()
		vector, err := Build(domain.MetricSleep, sleepInputs(), sleepSchema)
		require.NoError(t, err)

		// minutes_asleep = 8h * 60, sleep_light_ratio = 1 - (0.3 + 0.25).
		assert.InDelta(t, 480.0, vector[2], 1e-9)
		assert.InDelta(t, 0.45, vector[5], 1e-9)
	})

	t.Run("light ratio clamps at zero", func(t *testing.T) {
		t.Parallel()
		in := sleepInputs()
		in["deep_ratio"] = 0.6
		in["rem_ratio"] = 0.6

		vector, err := Build(domain.MetricSleep, in, sleepSchema)
		require.NoError(t, err)
		assert.Equal(t, 0.0, vector[5])
	})
}

func TestBuildFollowsSchemaOrder(t *testing.T) {
	t.Parallel()

	// Ordering comes from the schema, not from any order hardcoded in the
	// builder: a permuted schema of the same names permutes the vector.
	schema := []string{
		"sleep_duration", "sedentary", "steps", "nightly_temp",
		"resting_hr", "nremhr", "rmssd",
	}

	vector, err := Build(domain.MetricStress, stressInputs(), schema)
	require.NoError(t, err)
	assert.Equal(t, []float64{7.5, 540, 8200, 36.4, 62, 58, 45}, vector)
}

func TestBuildSchemaMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		schema []string
	}{
		{
			name: "unknown feature name",
			schema: []string{
				"rmssd", "nremhr", "resting_hr", "nightly_temp",
				"steps", "sedentary", "heart_rate_max",
			},
		},
		{
			name:   "truncated schema",
			schema: []string{"rmssd", "nremhr"},
		},
		{
			name: "duplicated feature name",
			schema: []string{
				"rmssd", "rmssd", "resting_hr", "nightly_temp",
				"steps", "sedentary", "sleep_duration",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Build(domain.MetricStress, stressInputs(), tt.schema)
			assert.ErrorIs(t, err, ErrSchemaMismatch)
		})
	}
}

func TestBuildMissingInput(t *testing.T) {
	t.Parallel()

	in := stressInputs()
	delete(in, "rmssd")

	_, err := Build(domain.MetricStress, in, []string{
		"rmssd", "nremhr", "resting_hr", "nightly_temp",
		"steps", "sedentary", "sleep_duration",
	})
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestBuildUnknownMetric(t *testing.T) {
	t.Parallel()

	_, err := Build(domain.Metric("bmi"), Inputs{}, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownMetric)
}
