package handler

import (
	"context"
	"time"

	"github.com/fitforge/fitforge-api/internal/domain"
	"github.com/fitforge/fitforge-api/internal/langfuse"
	"github.com/google/uuid"
)

// MockWorkoutService is a mock implementation of WorkoutService
type MockWorkoutService struct {
	logFunc  func(ctx context.Context, userID uuid.UUID, req *domain.CreateWorkoutRequest) (*domain.WorkoutRecord, error)
	listFunc func(ctx context.Context, userID uuid.UUID, filter domain.WorkoutFilter) (*domain.WorkoutListResponse, error)
}

func (m *MockWorkoutService) Log(ctx context.Context, userID uuid.UUID, req *domain.CreateWorkoutRequest) (*domain.WorkoutRecord, error) {
	if m.logFunc != nil {
		return m.logFunc(ctx, userID, req)
	}
	return &domain.WorkoutRecord{
		ID:              uuid.New(),
		UserID:          userID,
		Day:             req.Date,
		Type:            req.Type,
		DurationMinutes: req.DurationMinutes,
		Intensity:       domain.ParseIntensity(req.Intensity),
		LoggedAt:        time.Now(),
	}, nil
}

func (m *MockWorkoutService) List(ctx context.Context, userID uuid.UUID, filter domain.WorkoutFilter) (*domain.WorkoutListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.WorkoutListResponse{
		Data:       []domain.WorkoutResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockAnalysisService is a mock implementation of AnalysisService
type MockAnalysisService struct {
	analyzeFunc         func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AnalysisResult, error)
	quickFunc           func(ctx context.Context, userID uuid.UUID) (*domain.QuickStatus, error)
	consistencyFunc     func(ctx context.Context, userID uuid.UUID, weeks int) (*domain.ConsistencyReport, error)
	streaksFunc         func(ctx context.Context, userID uuid.UUID) (*domain.StreakInfo, error)
	recommendationsFunc func(ctx context.Context, userID uuid.UUID, focus domain.TrainingFocus) (*domain.TrainingRecommendations, error)
	profileStatsFunc    func(ctx context.Context, userID uuid.UUID) (*domain.ProfileStats, error)
}

func (m *MockAnalysisService) Analyze(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AnalysisResult, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, userID, windowDays)
	}
	return &domain.AnalysisResult{
		Status:         domain.AnalysisStatusSuccess,
		ReadinessScore: 82,
		ReadinessLabel: "STRONG",
	}, nil
}

func (m *MockAnalysisService) Quick(ctx context.Context, userID uuid.UUID) (*domain.QuickStatus, error) {
	if m.quickFunc != nil {
		return m.quickFunc(ctx, userID)
	}
	return &domain.QuickStatus{Status: "fresh", ReadinessScore: 82}, nil
}

func (m *MockAnalysisService) ConsistencyReport(ctx context.Context, userID uuid.UUID, weeks int) (*domain.ConsistencyReport, error) {
	if m.consistencyFunc != nil {
		return m.consistencyFunc(ctx, userID, weeks)
	}
	return &domain.ConsistencyReport{Status: domain.AnalysisStatusSuccess}, nil
}

func (m *MockAnalysisService) Streaks(ctx context.Context, userID uuid.UUID) (*domain.StreakInfo, error) {
	if m.streaksFunc != nil {
		return m.streaksFunc(ctx, userID)
	}
	return &domain.StreakInfo{CurrentStreak: 2, BestStreak: 5}, nil
}

func (m *MockAnalysisService) Recommendations(ctx context.Context, userID uuid.UUID, focus domain.TrainingFocus) (*domain.TrainingRecommendations, error) {
	if m.recommendationsFunc != nil {
		return m.recommendationsFunc(ctx, userID, focus)
	}
	return &domain.TrainingRecommendations{Status: "success"}, nil
}

func (m *MockAnalysisService) ProfileStats(ctx context.Context, userID uuid.UUID) (*domain.ProfileStats, error) {
	if m.profileStatsFunc != nil {
		return m.profileStatsFunc(ctx, userID)
	}
	return &domain.ProfileStats{}, nil
}

func (m *MockAnalysisService) InvalidateCache(userID uuid.UUID) {}

// MockPlanService is a mock implementation of PlanService
type MockPlanService struct {
	generateFunc   func(ctx context.Context, userID uuid.UUID, goal domain.TrainingGoal, days int) (*domain.TrainingPlan, error)
	getCurrentFunc func(ctx context.Context, userID uuid.UUID) (*domain.TrainingPlan, error)
	todayFunc      func(ctx context.Context, userID uuid.UUID) (*domain.TodaySession, error)
}

func (m *MockPlanService) Generate(ctx context.Context, userID uuid.UUID, goal domain.TrainingGoal, days int) (*domain.TrainingPlan, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID, goal, days)
	}
	return &domain.TrainingPlan{PlanID: "tpl_test", Goal: goal, DaysPlanned: days}, nil
}

func (m *MockPlanService) GetCurrent(ctx context.Context, userID uuid.UUID) (*domain.TrainingPlan, error) {
	if m.getCurrentFunc != nil {
		return m.getCurrentFunc(ctx, userID)
	}
	return &domain.TrainingPlan{PlanID: "tpl_test"}, nil
}

func (m *MockPlanService) Today(ctx context.Context, userID uuid.UUID) (*domain.TodaySession, error) {
	if m.todayFunc != nil {
		return m.todayFunc(ctx, userID)
	}
	return &domain.TodaySession{Status: "session"}, nil
}

// MockCoachService is a mock implementation of CoachService
type MockCoachService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.CoachInsightsResponse, error)
}

func (m *MockCoachService) Generate(ctx context.Context, userID uuid.UUID) (*domain.CoachInsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.CoachInsightsResponse{
		Insights: domain.CoachInsights{
			Summary:      "Training looks balanced.",
			Observations: []string{"Steady frequency"},
			Guidance:     []string{"Keep it up"},
		},
	}, nil
}

// mockLangfuseClient for testing
type mockLangfuseClient struct {
	enabled    bool
	scoreCalls int
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "", nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scoreCalls++
	return nil
}
