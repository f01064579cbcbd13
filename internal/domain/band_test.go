package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		metric Metric
		score  float64
		want   Band
	}{
		// Stress: >70 High, >50 Moderate, otherwise Low.
		{"stress well above high cutoff", MetricStress, 95.2, BandStressHigh},
		{"stress just above high cutoff", MetricStress, 70.001, BandStressHigh},
		{"stress exactly at high cutoff", MetricStress, 70.0, BandStressModerate},
		{"stress mid band", MetricStress, 60, BandStressModerate},
		{"stress exactly at moderate cutoff", MetricStress, 50.0, BandStressLow},
		{"stress low", MetricStress, 12.5, BandStressLow},
		{"stress negative", MetricStress, -3, BandStressLow},

		// Sleep: >65 Good, >45 Average, otherwise Poor.
		{"sleep good", MetricSleep, 80, BandSleepGood},
		{"sleep exactly at good cutoff", MetricSleep, 65.0, BandSleepAverage},
		{"sleep average", MetricSleep, 50, BandSleepAverage},
		{"sleep exactly at average cutoff", MetricSleep, 45.0, BandSleepPoor},
		{"sleep poor", MetricSleep, 10, BandSleepPoor},

		// Calorie: >2800 High, >2000 Balanced, otherwise Low.
		{"calorie high", MetricCalorie, 3200, BandCalorieHigh},
		{"calorie exactly at high cutoff", MetricCalorie, 2800.0, BandCalorieBalanced},
		{"calorie balanced", MetricCalorie, 2400, BandCalorieBalanced},
		{"calorie exactly at balanced cutoff", MetricCalorie, 2000.0, BandCalorieLow},
		{"calorie low", MetricCalorie, 1500, BandCalorieLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.metric, tt.score))
		})
	}
}

func TestParseMetric(t *testing.T) {
	t.Parallel()

	for _, m := range Metrics {
		got, err := ParseMetric(string(m))
		assert.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseMetric("cholesterol")
	assert.ErrorIs(t, err, ErrUnknownMetric)

	// Metric names are case-sensitive.
	_, err = ParseMetric("Stress")
	assert.ErrorIs(t, err, ErrUnknownMetric)
}
