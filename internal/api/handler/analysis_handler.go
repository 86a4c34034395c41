package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fitforge/fitforge-api/internal/domain"
	"github.com/fitforge/fitforge-api/internal/service"
	"github.com/fitforge/fitforge-api/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AnalysisHandler handles readiness and training-analysis endpoints.
type AnalysisHandler struct {
	service service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(service service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// GetAnalysis handles GET /v1/users/{userId}/analysis
// @Summary Get full readiness analysis
// @Description Compute readiness score, overtraining risk, training load and recommendations over a configurable window.
// @Tags analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param window_days query integer false "Number of days to analyze" default(28) minimum(1) maximum(365)
// @Success 200 {object} domain.AnalysisResult "Readiness analysis"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/analysis [get]
func (h *AnalysisHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	windowDays := parseIntParam(r, "window_days", 0)
	if windowDays < 0 || windowDays > 365 {
		problem.BadRequest("window_days must be between 1 and 365").Write(w)
		return
	}

	result, err := h.service.Analyze(r.Context(), userID, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute analysis").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetQuickStatus handles GET /v1/users/{userId}/analysis/quick
// @Summary Quick readiness check
// @Description Answer "should I train today?" from the cached analysis when it is fresh, recomputing over a two-week window otherwise.
// @Tags analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.QuickStatus "Quick readiness status"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/analysis/quick [get]
func (h *AnalysisHandler) GetQuickStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.service.Quick(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute quick status").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetConsistency handles GET /v1/users/{userId}/analysis/consistency
// @Summary Get consistency report
// @Description Weekly workout-frequency breakdown over the requested number of weeks.
// @Tags analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param weeks query integer false "Number of trailing weeks to analyze" default(4) minimum(1) maximum(52)
// @Success 200 {object} domain.ConsistencyReport "Consistency report"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/analysis/consistency [get]
func (h *AnalysisHandler) GetConsistency(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	weeks := parseIntParam(r, "weeks", service.DefaultReportWeeks)
	if weeks < 1 || weeks > 52 {
		problem.BadRequest("weeks must be between 1 and 52").Write(w)
		return
	}

	result, err := h.service.ConsistencyReport(r.Context(), userID, weeks)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute consistency report").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetStreaks handles GET /v1/users/{userId}/analysis/streaks
// @Summary Get workout streaks
// @Description Current and best consecutive-day streaks, tolerating a single rest day between sessions.
// @Tags analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.StreakInfo "Streak info"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/analysis/streaks [get]
func (h *AnalysisHandler) GetStreaks(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.service.Streaks(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute streaks").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetRecommendations handles GET /v1/users/{userId}/recommendations
// @Summary Get training recommendations
// @Description Readiness-aware workout suggestions, optionally narrowed to a focus discipline.
// @Tags analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param focus query string false "Focus discipline: strength, cardio, recovery, rest or hiit"
// @Success 200 {object} domain.TrainingRecommendations "Training recommendations"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/recommendations [get]
func (h *AnalysisHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	focus, ok := domain.ParseTrainingFocus(r.URL.Query().Get("focus"))
	if !ok {
		problem.BadRequest("focus must be one of: strength, cardio, recovery, rest, hiit").Write(w)
		return
	}

	result, err := h.service.Recommendations(r.Context(), userID, focus)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute recommendations").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetProfileStats handles GET /v1/users/{userId}/profile/stats
// @Summary Get profile statistics
// @Description Lifetime workout totals, streaks and weekly averages.
// @Tags analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.ProfileStats "Profile statistics"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/profile/stats [get]
func (h *AnalysisHandler) GetProfileStats(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.service.ProfileStats(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute profile stats").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
