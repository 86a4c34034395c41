package service

import (
	"context"

	"github.com/fitforge/fitforge-api/internal/domain"
	"github.com/fitforge/fitforge-api/internal/llm"
	"github.com/fitforge/fitforge-api/internal/repository"
	"github.com/google/uuid"
)

// CoachService generates LLM coaching commentary on top of the deterministic
// analysis.
type CoachService interface {
	// Generate creates coach insights for a user.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.CoachInsightsResponse, error)
}

type coachService struct {
	analysisService AnalysisService
	llmClient       llm.CoachLLM
	userRepo        repository.UserRepository
}

// NewCoachService creates a new CoachService.
func NewCoachService(analysisService AnalysisService, llmClient llm.CoachLLM, userRepo repository.UserRepository) CoachService {
	return &coachService{
		analysisService: analysisService,
		llmClient:       llmClient,
		userRepo:        userRepo,
	}
}

func (s *coachService) Generate(ctx context.Context, userID uuid.UUID) (*domain.CoachInsightsResponse, error) {
	// Validate user exists
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	// Fresh default-window analysis; the coach should never comment on a
	// stale snapshot.
	analysis, err := s.analysisService.Analyze(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	streaks, err := s.analysisService.Streaks(ctx, userID)
	if err != nil {
		return nil, err
	}

	consistency, err := s.analysisService.ConsistencyReport(ctx, userID, DefaultReportWeeks)
	if err != nil {
		return nil, err
	}

	coachCtx := &domain.CoachContext{
		Analysis:    *analysis,
		Streaks:     *streaks,
		Consistency: *consistency,
	}

	insights, err := s.llmClient.GenerateCoachInsights(ctx, coachCtx)
	if err != nil {
		return nil, err
	}

	return &domain.CoachInsightsResponse{
		Context:  *coachCtx,
		Insights: *insights,
	}, nil
}
