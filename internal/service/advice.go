package service

import "github.com/intellihealth/api/internal/domain"

// Per-band recommendation texts shown on the recommendations view.
var advice = map[domain.Metric]map[domain.Band]string{
	domain.MetricStress: {
		domain.BandStressHigh:     "High stress detected. Practice relaxation techniques and reduce workload.",
		domain.BandStressModerate: "Moderate stress detected. Monitor stress and maintain balance.",
		domain.BandStressLow:      "Low stress detected. Maintain your current stress-management habits.",
	},
	domain.MetricSleep: {
		domain.BandSleepGood:    "Good sleep quality. Maintain consistent sleep routines.",
		domain.BandSleepAverage: "Average sleep quality. Improve sleep hygiene and consistency.",
		domain.BandSleepPoor:    "Poor sleep quality. Prioritize adequate sleep and reduce disruptions.",
	},
	domain.MetricCalorie: {
		domain.BandCalorieHigh:     "High calorie expenditure. Ensure sufficient nutrition and hydration.",
		domain.BandCalorieBalanced: "Balanced calorie expenditure. Maintain your activity levels.",
		domain.BandCalorieLow:      "Low calorie expenditure. Consider increasing physical activity.",
	},
}

// Advise returns the recommendation text for a metric's score, derived from
// its band.
func Advise(m domain.Metric, score float64) string {
	return advice[m][domain.Classify(m, score)]
}
