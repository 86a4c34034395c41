package repository

import (
	"context"

	"github.com/fitforge/fitforge-api/internal/domain"
	"github.com/fitforge/fitforge-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.WorkoutRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkoutRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.WorkoutFilter) ([]domain.WorkoutRecord, error)
	// ListAll returns the user's full history oldest-first, the order the
	// analysis engine expects.
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.WorkoutRecord, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	TotalDuration(ctx context.Context, userID uuid.UUID) (int64, error)
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) Create(ctx context.Context, workout *domain.WorkoutRecord) error {
	return r.db.WithContext(ctx).Create(workout).Error
}

func (r *workoutRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkoutRecord, error) {
	var workout domain.WorkoutRecord
	err := r.db.WithContext(ctx).First(&workout, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) List(ctx context.Context, userID uuid.UUID, filter domain.WorkoutFilter) ([]domain.WorkoutRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC, id DESC")

	// Apply time filters
	if filter.From != nil {
		query = query.Where("logged_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("logged_at <= ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records with logged_at < cursor.LoggedAt
			// or same logged_at but id < cursor.ID
			query = query.Where(
				"(logged_at < ?) OR (logged_at = ? AND id < ?)",
				cursor.LoggedAt, cursor.LoggedAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var workouts []domain.WorkoutRecord
	if err := query.Find(&workouts).Error; err != nil {
		return nil, err
	}

	return workouts, nil
}

func (r *workoutRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.WorkoutRecord, error) {
	var workouts []domain.WorkoutRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at ASC, id ASC").
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *workoutRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.WorkoutRecord{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *workoutRepository) TotalDuration(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.WorkoutRecord{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Scan(&total).Error
	return total, err
}
