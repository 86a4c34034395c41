package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/fitforge/fitforge-api/internal/domain"
	"github.com/fitforge/fitforge-api/internal/planner"
	"github.com/fitforge/fitforge-api/internal/repository"
	"github.com/google/uuid"
)

type PlanService interface {
	// Generate builds a template plan for the goal and stores it as the
	// user's current plan.
	Generate(ctx context.Context, userID uuid.UUID, goal domain.TrainingGoal, days int) (*domain.TrainingPlan, error)
	// GetCurrent returns the user's stored plan, or domain.ErrNoPlan.
	GetCurrent(ctx context.Context, userID uuid.UUID) (*domain.TrainingPlan, error)
	// Today resolves the stored plan's session for the current day. A missing
	// plan yields a no_plan response rather than an error.
	Today(ctx context.Context, userID uuid.UUID) (*domain.TodaySession, error)
}

type planService struct {
	planRepo repository.PlanRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewPlanService(planRepo repository.PlanRepository, userRepo repository.UserRepository) PlanService {
	return &planService{
		planRepo: planRepo,
		userRepo: userRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *planService) Generate(ctx context.Context, userID uuid.UUID, goal domain.TrainingGoal, days int) (*domain.TrainingPlan, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	plan := planner.GeneratePlan(goal, days, s.now())

	payload, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}
	stored := &domain.StoredPlan{
		UserID:   userID,
		PlanJSON: payload,
	}
	if err := s.planRepo.Upsert(ctx, stored); err != nil {
		return nil, err
	}

	return plan, nil
}

func (s *planService) GetCurrent(ctx context.Context, userID uuid.UUID) (*domain.TrainingPlan, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	stored, err := s.planRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var plan domain.TrainingPlan
	if err := json.Unmarshal(stored.PlanJSON, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *planService) Today(ctx context.Context, userID uuid.UUID) (*domain.TodaySession, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	stored, err := s.planRepo.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNoPlan) {
		return &domain.TodaySession{
			Status:  "no_plan",
			Message: "No training plan yet.",
			NextSteps: []string{
				"Generate a plan with your training goal",
				"Log a few workouts so the plan can build on your history",
			},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	var plan domain.TrainingPlan
	if err := json.Unmarshal(stored.PlanJSON, &plan); err != nil {
		return nil, err
	}
	return planner.TodaySession(&plan, s.now()), nil
}
