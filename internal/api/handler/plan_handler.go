package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitforge/fitforge-api/internal/api/validation"
	"github.com/fitforge/fitforge-api/internal/domain"
	"github.com/fitforge/fitforge-api/internal/service"
	"github.com/fitforge/fitforge-api/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PlanHandler struct {
	service service.PlanService
}

func NewPlanHandler(service service.PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

// Generate handles POST /v1/users/{userId}/plan
// @Summary Generate a training plan
// @Description Build a template-based plan for the goal and store it as the user's current plan, replacing any previous one. Unrecognized goals fall back to general fitness.
// @Tags plans
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.GeneratePlanRequest true "Plan parameters"
// @Success 201 {object} domain.TrainingPlan "Generated plan"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/plan [post]
func (h *PlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.GeneratePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	plan, err := h.service.Generate(r.Context(), userID, domain.ParseTrainingGoal(req.Goal), req.Days)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to generate plan").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(plan)
}

// GetCurrent handles GET /v1/users/{userId}/plan
// @Summary Get current training plan
// @Description Fetch the user's most recently generated plan.
// @Tags plans
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.TrainingPlan "Current plan"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User or plan not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/plan [get]
func (h *PlanHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	plan, err := h.service.GetCurrent(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrNoPlan) {
			problem.NotFound("No plan generated yet").Write(w)
			return
		}
		problem.InternalError("Failed to get plan").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plan)
}

// GetToday handles GET /v1/users/{userId}/plan/today
// @Summary Get today's planned session
// @Description Resolve the current plan's session for today, with warm-up and cool-down guidance. Users without a plan get a no_plan response, not an error.
// @Tags plans
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.TodaySession "Today's session, rest day or no_plan"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/plan/today [get]
func (h *PlanHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	today, err := h.service.Today(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to resolve today's session").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(today)
}
