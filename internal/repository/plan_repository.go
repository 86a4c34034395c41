package repository

import (
	"context"

	"github.com/fitforge/fitforge-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlanRepository interface {
	// Upsert stores the plan as the user's current one, replacing any
	// previous plan.
	Upsert(ctx context.Context, plan *domain.StoredPlan) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.StoredPlan, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Upsert(ctx context.Context, plan *domain.StoredPlan) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"plan_json", "updated_at"}),
		}).
		Create(plan).Error
}

func (r *planRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.StoredPlan, error) {
	var plan domain.StoredPlan
	err := r.db.WithContext(ctx).First(&plan, "user_id = ?", userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNoPlan
		}
		return nil, err
	}
	return &plan, nil
}
