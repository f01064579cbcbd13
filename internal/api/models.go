// Package api implements the HTTP handlers that expose the assessment
// pipeline. This layer is the input-collection boundary: raw measurements
// are range-validated here and passed through unchanged below it.
package api

import "github.com/intellihealth/api/internal/domain"

// Common request/response structures

// RegisterRequest defines the payload for the signup endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	Username string `json:"username"`

	// Token is the JWT session token used for API authorization. It names
	// the assessment session created by this login.
	Token string `json:"token"`
}

// StressRequest carries the raw inputs for a stress assessment. Ranges
// mirror the measurement bounds of the collection devices.
type StressRequest struct {
	RMSSD         float64 `json:"rmssd"          validate:"min=10,max=150"`
	NREMHR        float64 `json:"nremhr"         validate:"min=40,max=120"`
	RestingHR     float64 `json:"resting_hr"     validate:"min=40,max=120"`
	NightlyTemp   float64 `json:"nightly_temp"   validate:"min=30,max=38"`
	Steps         float64 `json:"steps"          validate:"min=0,max=30000"`
	Sedentary     float64 `json:"sedentary"      validate:"min=0,max=1440"`
	SleepDuration float64 `json:"sleep_duration" validate:"min=0,max=12"`
}

// SleepRequest carries the raw inputs for a sleep-quality assessment.
type SleepRequest struct {
	SleepDuration float64 `json:"sleep_duration" validate:"min=0,max=12"`
	Efficiency    float64 `json:"efficiency"     validate:"min=0,max=100"`
	DeepRatio     float64 `json:"deep_ratio"     validate:"min=0,max=1"`
	REMRatio      float64 `json:"rem_ratio"      validate:"min=0,max=1"`
	Awake         float64 `json:"awake"          validate:"min=0,max=300"`
	Breathing     float64 `json:"breathing"      validate:"min=10,max=25"`
	NREMHR        float64 `json:"nremhr"         validate:"min=40,max=120"`
}

// CalorieRequest carries the raw inputs for a calorie-expenditure
// assessment.
type CalorieRequest struct {
	Steps         float64 `json:"steps"          validate:"min=0,max=30000"`
	Distance      float64 `json:"distance"       validate:"min=0,max=30"`
	Light         float64 `json:"light"          validate:"min=0,max=500"`
	Moderate      float64 `json:"moderate"       validate:"min=0,max=300"`
	Vigorous      float64 `json:"vigorous"       validate:"min=0,max=180"`
	Sedentary     float64 `json:"sedentary"      validate:"min=0,max=1440"`
	BPM           float64 `json:"bpm"            validate:"min=40,max=150"`
	NREMHR        float64 `json:"nremhr"         validate:"min=40,max=120"`
	RMSSD         float64 `json:"rmssd"          validate:"min=10,max=150"`
	SleepDuration float64 `json:"sleep_duration" validate:"min=0,max=12"`
}

// MetricResult is one metric's score with its classified band.
type MetricResult struct {
	Metric domain.Metric `json:"metric"`
	Score  float64       `json:"score"`
	Band   domain.Band   `json:"band"`
}

// AssessmentResponse defines the response to a single prediction.
type AssessmentResponse struct {
	MetricResult
}

// DashboardResponse defines the response for the dashboard view: all three
// scores with their bands.
type DashboardResponse struct {
	Results []MetricResult `json:"results"`
}

// Recommendation is one metric's result with its advice text.
type Recommendation struct {
	MetricResult
	Advice string `json:"advice"`
}

// RecommendationsResponse defines the response for the recommendations
// view. Saved reports whether this request appended the session's history
// record (true at most once per session).
type RecommendationsResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
	Saved           bool             `json:"saved"`
}

// HistoryEntry is one persisted health record.
type HistoryEntry struct {
	Timestamp string  `json:"timestamp"`
	Stress    float64 `json:"stress"`
	Sleep     float64 `json:"sleep"`
	Calories  float64 `json:"calories"`
}

// HistoryResponse defines the response for the history view, in append
// order.
type HistoryResponse struct {
	Username string         `json:"username"`
	Records  []HistoryEntry `json:"records"`
}
