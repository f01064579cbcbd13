package domain

import "time"

// TimestampLayout is the minute-resolution format health records are
// persisted with.
const TimestampLayout = "2006-01-02 15:04"

// HealthRecord is one appended row of a user's health history: the three
// scores computed during a single session. Records are immutable once
// appended.
type HealthRecord struct {
	Username  string    `json:"username"`
	Timestamp time.Time `json:"timestamp"`
	Stress    float64   `json:"stress"`
	Sleep     float64   `json:"sleep"`
	Calories  float64   `json:"calories"`
}

// NewHealthRecord creates a record stamped at the given time, truncated to
// minute resolution.
func NewHealthRecord(username string, at time.Time, stress, sleep, calories float64) *HealthRecord {
	return &HealthRecord{
		Username:  username,
		Timestamp: at.Truncate(time.Minute),
		Stress:    stress,
		Sleep:     sleep,
		Calories:  calories,
	}
}
