package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/intellihealth/api/internal/api/shared"
	"github.com/intellihealth/api/internal/domain"
	"github.com/intellihealth/api/internal/features"
	"github.com/intellihealth/api/internal/service"
)

// AssessmentHandler handles the assessment, dashboard, recommendations, and
// history API requests.
type AssessmentHandler struct {
	assessments *service.AssessmentService
	validator   *validator.Validate
}

// NewAssessmentHandler creates a new AssessmentHandler with the given
// dependencies.
func NewAssessmentHandler(assessments *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		assessments: assessments,
		validator:   validator.New(),
	}
}

// Predict handles POST /assessments/{metric}: it runs one metric's
// inference over the submitted raw inputs and responds with the score and
// its band. The score also lands in the session cache for the dashboard,
// recommendations, and history views.
func (h *AssessmentHandler) Predict(w http.ResponseWriter, r *http.Request) {
	sess, ok := getSession(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not logged in")
		return
	}

	metric, err := domain.ParseMetric(chi.URLParam(r, "metric"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Unknown metric")
		return
	}

	in, err := h.decodeInputs(r, metric)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	score, err := h.assessments.Predict(r.Context(), sess, metric, in)
	if err != nil {
		slog.Error("prediction failed", "error", err, "metric", metric, "username", sess.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Prediction failed")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AssessmentResponse{
		MetricResult: MetricResult{
			Metric: metric,
			Score:  score,
			Band:   domain.Classify(metric, score),
		},
	})
}

// decodeInputs decodes and range-validates the metric-specific request
// body, then flattens it into named raw inputs for the feature builder.
func (h *AssessmentHandler) decodeInputs(r *http.Request, metric domain.Metric) (features.Inputs, error) {
	invalidBody := errors.New("Invalid request format")

	switch metric {
	case domain.MetricStress:
		var req StressRequest
		if err := shared.DecodeJSON(r, &req); err != nil {
			return nil, invalidBody
		}
		if err := h.validator.Struct(req); err != nil {
			return nil, errors.New("Input out of range: " + err.Error())
		}
		return features.Inputs{
			"rmssd":          req.RMSSD,
			"nremhr":         req.NREMHR,
			"resting_hr":     req.RestingHR,
			"nightly_temp":   req.NightlyTemp,
			"steps":          req.Steps,
			"sedentary":      req.Sedentary,
			"sleep_duration": req.SleepDuration,
		}, nil

	case domain.MetricSleep:
		var req SleepRequest
		if err := shared.DecodeJSON(r, &req); err != nil {
			return nil, invalidBody
		}
		if err := h.validator.Struct(req); err != nil {
			return nil, errors.New("Input out of range: " + err.Error())
		}
		return features.Inputs{
			"sleep_duration": req.SleepDuration,
			"efficiency":     req.Efficiency,
			"deep_ratio":     req.DeepRatio,
			"rem_ratio":      req.REMRatio,
			"awake":          req.Awake,
			"breathing":      req.Breathing,
			"nremhr":         req.NREMHR,
		}, nil

	default: // domain.MetricCalorie
		var req CalorieRequest
		if err := shared.DecodeJSON(r, &req); err != nil {
			return nil, invalidBody
		}
		if err := h.validator.Struct(req); err != nil {
			return nil, errors.New("Input out of range: " + err.Error())
		}
		return features.Inputs{
			"steps":          req.Steps,
			"distance":       req.Distance,
			"light":          req.Light,
			"moderate":       req.Moderate,
			"vigorous":       req.Vigorous,
			"sedentary":      req.Sedentary,
			"bpm":            req.BPM,
			"nremhr":         req.NREMHR,
			"rmssd":          req.RMSSD,
			"sleep_duration": req.SleepDuration,
		}, nil
	}
}

// Dashboard handles GET /dashboard: all three cached scores with their
// bands. Responds 409 until every analysis has run in this session.
func (h *AssessmentHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := getSession(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not logged in")
		return
	}

	results, err := h.assessments.Overview(sess)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusConflict,
			"Please run stress, sleep, and calorie predictions first")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DashboardResponse{
		Results: metricResults(results),
	})
}

// Recommendations handles GET /recommendations: per-band advice for all
// three metrics. The first complete visit per session also appends the
// scores to the user's history; repeat visits never append again.
func (h *AssessmentHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	sess, ok := getSession(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not logged in")
		return
	}

	results, err := h.assessments.Overview(sess)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusConflict,
			"Please complete all analyses first")
		return
	}

	saved, err := h.assessments.MaybeSaveHistory(r.Context(), sess)
	if err != nil {
		slog.Error("failed to save history", "error", err, "username", sess.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to save health history")
		return
	}

	recs := make([]Recommendation, 0, len(domain.Metrics))
	for _, mr := range metricResults(results) {
		recs = append(recs, Recommendation{
			MetricResult: mr,
			Advice:       service.Advise(mr.Metric, mr.Score),
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RecommendationsResponse{
		Recommendations: recs,
		Saved:           saved,
	})
}

// History handles GET /history: the calling user's records, oldest first.
func (h *AssessmentHandler) History(w http.ResponseWriter, r *http.Request) {
	sess, ok := getSession(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not logged in")
		return
	}

	records, err := h.assessments.History(r.Context(), sess.Username)
	if err != nil {
		slog.Error("failed to load history", "error", err, "username", sess.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to load health history")
		return
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, HistoryEntry{
			Timestamp: rec.Timestamp.Format(domain.TimestampLayout),
			Stress:    rec.Stress,
			Sleep:     rec.Sleep,
			Calories:  rec.Calories,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HistoryResponse{
		Username: sess.Username,
		Records:  entries,
	})
}

func metricResults(r service.ResultSet) []MetricResult {
	return []MetricResult{
		{
			Metric: domain.MetricStress,
			Score:  r.Stress,
			Band:   domain.Classify(domain.MetricStress, r.Stress),
		},
		{
			Metric: domain.MetricSleep,
			Score:  r.Sleep,
			Band:   domain.Classify(domain.MetricSleep, r.Sleep),
		},
		{
			Metric: domain.MetricCalorie,
			Score:  r.Calories,
			Band:   domain.Classify(domain.MetricCalorie, r.Calories),
		},
	}
}
