package domain

// Band is an ordered categorical label produced by thresholding a score.
type Band string

// Band labels per metric. Each metric partitions the real line into exactly
// three bands.
const (
	BandStressHigh     Band = "High"
	BandStressModerate Band = "Moderate"
	BandStressLow      Band = "Low"

	BandSleepGood    Band = "Good"
	BandSleepAverage Band = "Average"
	BandSleepPoor    Band = "Poor"

	BandCalorieHigh     Band = "High expenditure"
	BandCalorieBalanced Band = "Balanced"
	BandCalorieLow      Band = "Low expenditure"
)

// Per-metric cutoffs. Upper bounds are strict: a score exactly at a cutoff
// falls into the lower band.
const (
	stressHighCutoff     = 70
	stressModerateCutoff = 50

	sleepGoodCutoff    = 65
	sleepAverageCutoff = 45

	calorieHighCutoff     = 2800
	calorieBalancedCutoff = 2000
)

// Classify maps a metric's score to its band. It is total over the real
// line: every score lands in exactly one band.
func Classify(m Metric, score float64) Band {
	switch m {
	case MetricStress:
		if score > stressHighCutoff {
			return BandStressHigh
		}
		if score > stressModerateCutoff {
			return BandStressModerate
		}
		return BandStressLow
	case MetricSleep:
		if score > sleepGoodCutoff {
			return BandSleepGood
		}
		if score > sleepAverageCutoff {
			return BandSleepAverage
		}
		return BandSleepPoor
	case MetricCalorie:
		if score > calorieHighCutoff {
			return BandCalorieHigh
		}
		if score > calorieBalancedCutoff {
			return BandCalorieBalanced
		}
		return BandCalorieLow
	}
	// Unreachable for metrics produced by ParseMetric.
	return ""
}
