package domain

import "fmt"

// Metric identifies one of the three health metrics the system scores.
type Metric string

const (
	MetricStress  Metric = "stress"
	MetricSleep   Metric = "sleep"
	MetricCalorie Metric = "calorie"
)

// Metrics lists all supported metrics in their canonical order.
// The order matters to consumers that persist one column per metric.
var Metrics = []Metric{MetricStress, MetricSleep, MetricCalorie}

// ParseMetric converts a string into a Metric.
// Returns ErrUnknownMetric for anything outside the supported set.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricStress, MetricSleep, MetricCalorie:
		return Metric(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
}

// String implements fmt.Stringer.
func (m Metric) String() string {
	return string(m)
}
