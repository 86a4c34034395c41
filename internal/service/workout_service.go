package service

import (
	"context"

	"github.com/fitforge/fitforge-api/internal/domain"
	"github.com/fitforge/fitforge-api/internal/repository"
	"github.com/fitforge/fitforge-api/pkg/pagination"
	"github.com/google/uuid"
)

type WorkoutService interface {
	Log(ctx context.Context, userID uuid.UUID, req *domain.CreateWorkoutRequest) (*domain.WorkoutRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.WorkoutFilter) (*domain.WorkoutListResponse, error)
}

// CacheInvalidator drops a user's cached analysis. Logging a workout changes
// every derived metric, so the stale snapshot must go.
type CacheInvalidator interface {
	InvalidateCache(userID uuid.UUID)
}

type workoutService struct {
	repo     repository.WorkoutRepository
	userRepo repository.UserRepository
	cache    CacheInvalidator
}

func NewWorkoutService(repo repository.WorkoutRepository, userRepo repository.UserRepository, cache CacheInvalidator) WorkoutService {
	return &workoutService{
		repo:     repo,
		userRepo: userRepo,
		cache:    cache,
	}
}

// Log records a workout for the user. The date string is stored as supplied;
// windowed computations later parse its first ten characters and skip records
// that do not parse.
func (s *workoutService) Log(ctx context.Context, userID uuid.UUID, req *domain.CreateWorkoutRequest) (*domain.WorkoutRecord, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	workout := &domain.WorkoutRecord{
		ID:              uuid.New(),
		UserID:          userID,
		Day:             req.Date,
		Type:            req.Type,
		DurationMinutes: req.DurationMinutes,
		Intensity:       domain.ParseIntensity(req.Intensity),
		SleepHours:      req.SleepHours,
		FatigueLevel:    req.FatigueLevel,
		Notes:           req.Notes,
	}

	if err := s.repo.Create(ctx, workout); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.InvalidateCache(userID)
	}

	return workout, nil
}

func (s *workoutService) List(ctx context.Context, userID uuid.UUID, filter domain.WorkoutFilter) (*domain.WorkoutListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	workouts, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(workouts) > limit

	// Trim to actual limit
	if hasMore {
		workouts = workouts[:limit]
	}

	response := &domain.WorkoutListResponse{
		Data: make([]domain.WorkoutResponse, len(workouts)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, w := range workouts {
		response.Data[i] = w.ToResponse()
	}

	// Set next cursor if there are more results
	if hasMore && len(workouts) > 0 {
		last := workouts[len(workouts)-1]
		cursor := &pagination.Cursor{
			ID:       last.ID,
			LoggedAt: last.LoggedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
