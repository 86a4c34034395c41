package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fitforge/fitforge-api/internal/domain"
	"github.com/fitforge/fitforge-api/internal/llm"
	"github.com/google/uuid"
)

func TestCoachService_Generate(t *testing.T) {
	workoutRepo := NewMockWorkoutRepository()
	userRepo := NewMockUserRepository()
	userID := seedUser(userRepo)
	now := time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)
	analysisSvc := newTestAnalysisService(workoutRepo, userRepo, now)

	for _, day := range []string{"2025-03-12", "2025-03-14", "2025-03-15"} {
		addWorkout(workoutRepo, userID, day, 45, domain.IntensityModerate, nil, nil)
	}

	mockLLM := &MockCoachLLM{
		insights: &domain.CoachInsights{
			Summary:      "Training looks balanced this week.",
			Observations: []string{"Three sessions logged", "No high-intensity spikes"},
			Guidance:     []string{"Keep the current rhythm", "Add one longer session"},
		},
	}
	svc := NewCoachService(analysisSvc, mockLLM, userRepo)

	resp, err := svc.Generate(context.Background(), userID)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if mockLLM.calls != 1 {
		t.Errorf("LLM calls = %d, want 1", mockLLM.calls)
	}
	if resp.Insights.Summary != mockLLM.insights.Summary {
		t.Errorf("summary = %q, want %q", resp.Insights.Summary, mockLLM.insights.Summary)
	}
	if resp.Context.Analysis.Status != domain.AnalysisStatusSuccess {
		t.Errorf("context analysis status = %v, want success", resp.Context.Analysis.Status)
	}
	if resp.Context.Analysis.TotalWorkouts != 3 {
		t.Errorf("context workouts = %d, want 3", resp.Context.Analysis.TotalWorkouts)
	}
	if resp.Context.Consistency.Status != domain.AnalysisStatusSuccess {
		t.Errorf("context consistency status = %v, want success", resp.Context.Consistency.Status)
	}
	if mockLLM.lastContext == nil || mockLLM.lastContext.Analysis.ReadinessScore != resp.Context.Analysis.ReadinessScore {
		t.Error("LLM should receive the same context as the response carries")
	}
}

func TestCoachService_GenerateLLMError(t *testing.T) {
	workoutRepo := NewMockWorkoutRepository()
	userRepo := NewMockUserRepository()
	userID := seedUser(userRepo)
	analysisSvc := newTestAnalysisService(workoutRepo, userRepo, time.Now())

	mockLLM := &MockCoachLLM{err: llm.ErrOpenAIUnavailable}
	svc := NewCoachService(analysisSvc, mockLLM, userRepo)

	_, err := svc.Generate(context.Background(), userID)
	if !errors.Is(err, llm.ErrOpenAIUnavailable) {
		t.Errorf("Generate() error = %v, want ErrOpenAIUnavailable", err)
	}
}

func TestCoachService_GenerateUserNotFound(t *testing.T) {
	userRepo := NewMockUserRepository()
	analysisSvc := newTestAnalysisService(NewMockWorkoutRepository(), userRepo, time.Now())
	svc := NewCoachService(analysisSvc, &MockCoachLLM{}, userRepo)

	_, err := svc.Generate(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Generate() error = %v, want ErrNotFound", err)
	}
}
