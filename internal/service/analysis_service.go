package service

import (
	"context"
	"encoding/json"
	"math"
	"sync"
	"time"

	"github.com/fitforge/fitforge-api/internal/analyzer"
	"github.com/fitforge/fitforge-api/internal/domain"
	"github.com/fitforge/fitforge-api/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultReportWeeks is the default consistency-report window.
const DefaultReportWeeks = 4

// AnalysisService runs the readiness engine over a user's workout history and
// owns the per-user analysis cache.
type AnalysisService interface {
	// Analyze computes a full readiness snapshot over the trailing window and
	// refreshes the user's cache slot.
	Analyze(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AnalysisResult, error)
	// Quick answers "should I train today?", served from the cache while it
	// is younger than the engine's TTL.
	Quick(ctx context.Context, userID uuid.UUID) (*domain.QuickStatus, error)
	ConsistencyReport(ctx context.Context, userID uuid.UUID, weeks int) (*domain.ConsistencyReport, error)
	Streaks(ctx context.Context, userID uuid.UUID) (*domain.StreakInfo, error)
	Recommendations(ctx context.Context, userID uuid.UUID, focus domain.TrainingFocus) (*domain.TrainingRecommendations, error)
	ProfileStats(ctx context.Context, userID uuid.UUID) (*domain.ProfileStats, error)
	InvalidateCache(userID uuid.UUID)
}

type analysisService struct {
	workoutRepo repository.WorkoutRepository
	userRepo    repository.UserRepository
	cfg         analyzer.Config
	now         func() time.Time

	mu    sync.Mutex
	cache map[uuid.UUID]*analyzer.CacheEntry
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(workoutRepo repository.WorkoutRepository, userRepo repository.UserRepository, cfg analyzer.Config) AnalysisService {
	return &analysisService{
		workoutRepo: workoutRepo,
		userRepo:    userRepo,
		cfg:         cfg,
		now:         func() time.Time { return time.Now().UTC() },
		cache:       make(map[uuid.UUID]*analyzer.CacheEntry),
	}
}

func (s *analysisService) Analyze(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AnalysisResult, error) {
	tracer := otel.Tracer("fitforge-api/analysis")
	ctx, span := tracer.Start(ctx, "AnalysisService.Analyze",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("window.days", windowDays),
		),
	)
	defer span.End()

	history, err := s.history(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := analyzer.Analyze(history, windowDays, now, s.cfg)

	span.SetAttributes(
		attribute.String("analysis.status", string(result.Status)),
		attribute.Int("analysis.readiness_score", result.ReadinessScore),
		attribute.Float64("analysis.risk_level", result.RiskLevel),
	)

	// Attach input payload for Langfuse
	inputPayload := map[string]any{
		"user_id":        userID.String(),
		"window_days":    result.AnalysisWindowDays,
		"total_workouts": len(history),
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	s.mu.Lock()
	s.cache[userID] = &analyzer.CacheEntry{Result: result, ComputedAt: now}
	s.mu.Unlock()

	return result, nil
}

func (s *analysisService) Quick(ctx context.Context, userID uuid.UUID) (*domain.QuickStatus, error) {
	history, err := s.history(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	prev := s.cache[userID]
	s.mu.Unlock()

	status, entry := analyzer.QuickStatus(prev, history, s.now(), s.cfg)

	s.mu.Lock()
	s.cache[userID] = entry
	s.mu.Unlock()

	return &status, nil
}

func (s *analysisService) ConsistencyReport(ctx context.Context, userID uuid.UUID, weeks int) (*domain.ConsistencyReport, error) {
	history, err := s.history(ctx, userID)
	if err != nil {
		return nil, err
	}

	if weeks <= 0 {
		weeks = DefaultReportWeeks
	}

	if len(history) == 0 {
		return &domain.ConsistencyReport{
			Status:           domain.AnalysisStatusNoData,
			ConsistencyLabel: "New",
			TargetPerWeek:    s.cfg.TargetWorkoutsPerWeek,
		}, nil
	}

	cutoff := s.now().AddDate(0, 0, -weeks*7)
	var filtered []domain.WorkoutRecord
	for _, w := range history {
		day, err := analyzer.ParseDay(w.Day)
		if err != nil {
			continue
		}
		if !day.Before(cutoff) {
			filtered = append(filtered, w)
		}
	}
	if len(filtered) == 0 {
		return &domain.ConsistencyReport{
			Status:           domain.AnalysisStatusNoData,
			WeeksAnalyzed:    weeks,
			ConsistencyLabel: "New",
			TargetPerWeek:    s.cfg.TargetWorkoutsPerWeek,
		}, nil
	}

	percent, activeWeeks, label := analyzer.CalculateConsistency(filtered, s.cfg.TargetWorkoutsPerWeek)

	breakdown := make(map[string]int)
	for week, count := range analyzer.WeekCounts(filtered) {
		breakdown[week.String()] = count
	}

	divisor := activeWeeks
	if divisor < 1 {
		divisor = 1
	}

	return &domain.ConsistencyReport{
		Status:             domain.AnalysisStatusSuccess,
		WeeksAnalyzed:      activeWeeks,
		ConsistencyPercent: percent,
		ConsistencyLabel:   label,
		WeeklyBreakdown:    breakdown,
		TotalWorkouts:      len(filtered),
		AvgWorkoutsPerWeek: math.Round(float64(len(filtered))/float64(divisor)*10) / 10,
		TargetPerWeek:      s.cfg.TargetWorkoutsPerWeek,
	}, nil
}

func (s *analysisService) Streaks(ctx context.Context, userID uuid.UUID) (*domain.StreakInfo, error) {
	history, err := s.history(ctx, userID)
	if err != nil {
		return nil, err
	}

	days := analyzer.WorkoutDays(history)
	streaks := analyzer.CalculateStreaks(days, s.now())
	return &streaks, nil
}

func (s *analysisService) Recommendations(ctx context.Context, userID uuid.UUID, focus domain.TrainingFocus) (*domain.TrainingRecommendations, error) {
	// Reuse the cached snapshot when one exists so a chat-style sequence of
	// questions does not recompute; fall back to a fresh default-window run.
	s.mu.Lock()
	entry := s.cache[userID]
	s.mu.Unlock()

	var result *domain.AnalysisResult
	if entry != nil && entry.Result != nil && entry.Result.Status == domain.AnalysisStatusSuccess {
		if exists, err := s.userRepo.Exists(ctx, userID); err != nil {
			return nil, err
		} else if !exists {
			return nil, domain.ErrNotFound
		}
		result = entry.Result
	} else {
		var err error
		result, err = s.Analyze(ctx, userID, 0)
		if err != nil {
			return nil, err
		}
	}

	rec := focusRecommendations(result, focus)
	rec.GeneralRecommendations = result.Recommendations
	return rec, nil
}

func (s *analysisService) ProfileStats(ctx context.Context, userID uuid.UUID) (*domain.ProfileStats, error) {
	history, err := s.history(ctx, userID)
	if err != nil {
		return nil, err
	}

	var totalMinutes int
	for _, w := range history {
		totalMinutes += w.DurationMinutes
	}

	days := analyzer.WorkoutDays(history)
	streaks := analyzer.CalculateStreaks(days, s.now())

	activeWeeks := len(analyzer.WeekCounts(history))
	divisor := activeWeeks
	if divisor < 1 {
		divisor = 1
	}

	return &domain.ProfileStats{
		TotalWorkouts:        len(history),
		TotalDurationMinutes: totalMinutes,
		Streaks:              streaks,
		AvgWorkoutsPerWeek:   math.Round(float64(len(history))/float64(divisor)*10) / 10,
	}, nil
}

func (s *analysisService) InvalidateCache(userID uuid.UUID) {
	s.mu.Lock()
	delete(s.cache, userID)
	s.mu.Unlock()
}

// history validates the user and loads their full workout log oldest-first.
func (s *analysisService) history(ctx context.Context, userID uuid.UUID) ([]domain.WorkoutRecord, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.workoutRepo.ListAll(ctx, userID)
}

func focusRecommendations(result *domain.AnalysisResult, focus domain.TrainingFocus) *domain.TrainingRecommendations {
	readiness := result.ReadinessScore
	risk := result.RiskLevel

	rec := &domain.TrainingRecommendations{
		Status:                  "success",
		ReadinessScore:          readiness,
		RiskLevel:               risk,
		SuggestedWorkoutType:    "moderate",
		IntensityRecommendation: "moderate",
		DurationRecommendation:  "45-60 min",
	}

	switch focus {
	case domain.FocusStrength:
		rec.SuggestedWorkoutType = "strength"
		switch {
		case readiness >= 80:
			rec.FocusRecommendations = append(rec.FocusRecommendations, "💪 Great day for strength! Progressive overload time.")
			rec.IntensityRecommendation = "high"
			rec.DurationRecommendation = "60-75 min"
		case readiness >= 60:
			rec.FocusRecommendations = append(rec.FocusRecommendations, "💪 Moderate strength - focus on form.")
		default:
			rec.FocusRecommendations = append(rec.FocusRecommendations, "💪 Light strength only - bodyweight or light weights.")
			rec.IntensityRecommendation = "low"
			rec.DurationRecommendation = "30-40 min"
		}
	case domain.FocusCardio:
		rec.SuggestedWorkoutType = "cardio"
		switch {
		case readiness >= 80:
			rec.FocusRecommendations = append(rec.FocusRecommendations, "🏃 Ready for cardio intensity! Include intervals.")
			rec.IntensityRecommendation = "high"
		case readiness >= 60:
			rec.FocusRecommendations = append(rec.FocusRecommendations, "🏃 Steady-state cardio is perfect today.")
		default:
			rec.FocusRecommendations = append(rec.FocusRecommendations, "🏃 Light cardio only - walking or easy cycling.")
			rec.IntensityRecommendation = "low"
		}
	case domain.FocusRecovery:
		rec.FocusRecommendations = append(rec.FocusRecommendations, "🧘 Active recovery - mobility, stretching, light movement.")
		rec.SuggestedWorkoutType = "recovery"
		rec.IntensityRecommendation = "very low"
		rec.DurationRecommendation = "20-40 min"
	case domain.FocusHIIT:
		if readiness >= 80 && risk < 0.5 {
			rec.FocusRecommendations = append(rec.FocusRecommendations, "🔥 HIIT approved! Go hard.")
			rec.SuggestedWorkoutType = "hiit"
			rec.IntensityRecommendation = "very high"
		} else {
			rec.FocusRecommendations = append(rec.FocusRecommendations, "⚠️ HIIT not recommended today. Try steady-state.")
			rec.SuggestedWorkoutType = "cardio"
		}
	default:
		switch {
		case readiness >= 85:
			rec.SuggestedWorkoutType = "strength or intervals"
			rec.IntensityRecommendation = "high"
			rec.FocusRecommendations = append(rec.FocusRecommendations, "🌟 Peak day - perfect for hard training!")
		case readiness >= 70:
			rec.SuggestedWorkoutType = "strength or cardio"
			rec.IntensityRecommendation = "moderate-high"
			rec.FocusRecommendations = append(rec.FocusRecommendations, "💪 Solid day for quality training.")
		case readiness >= 55:
			rec.SuggestedWorkoutType = "cardio or technique"
			rec.FocusRecommendations = append(rec.FocusRecommendations, "🎯 Focus on skill work or steady cardio.")
		default:
			rec.SuggestedWorkoutType = "recovery or rest"
			rec.IntensityRecommendation = "low"
			rec.FocusRecommendations = append(rec.FocusRecommendations, "🧘 Prioritize recovery today.")
		}
	}

	return rec
}
