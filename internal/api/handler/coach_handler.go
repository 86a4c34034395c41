package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitforge/fitforge-api/internal/domain"
	"github.com/fitforge/fitforge-api/internal/langfuse"
	"github.com/fitforge/fitforge-api/internal/llm"
	"github.com/fitforge/fitforge-api/internal/service"
	"github.com/fitforge/fitforge-api/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// CoachHandler handles LLM coaching endpoints.
type CoachHandler struct {
	coachService   service.CoachService
	langfuseClient langfuse.Client
}

// NewCoachHandler creates a new CoachHandler.
func NewCoachHandler(coachService service.CoachService, langfuseClient langfuse.Client) *CoachHandler {
	return &CoachHandler{
		coachService:   coachService,
		langfuseClient: langfuseClient,
	}
}

// GetInsights handles GET /v1/users/{userId}/coach/insights
// @Summary Get AI coaching insights
// @Description Generate coaching commentary from the user's readiness analysis, streaks and consistency using an LLM.
// @Tags coach
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.CoachInsightsResponse "Coaching insights with analysis context"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM error"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/coach/insights [get]
func (h *CoachHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.coachService.Generate(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.New(http.StatusServiceUnavailable, "service-unavailable", "Service Unavailable", "OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate insights from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate coaching insights").Write(w)
		return
	}

	// Attach OTEL trace ID (if present) to response for feedback linking
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		result.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// FeedbackRequest is the request body for coaching feedback.
// @Description Request body for submitting feedback on coaching insights.
type FeedbackRequest struct {
	// Trace ID from the insights response
	TraceID string `json:"trace_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"The guidance was spot on!"`
}

// PostFeedback handles POST /v1/users/{userId}/coach/insights/feedback
// @Summary Submit feedback on coaching insights
// @Description Submit a user rating and optional comment for a previous insights response.
// @Tags coach
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/coach/insights/feedback [post]
func (h *CoachHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	if _, err := uuid.Parse(chi.URLParam(r, "userId")); err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	// Validate required fields
	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	// Create score in Langfuse (errors are logged but don't fail the request)
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}
