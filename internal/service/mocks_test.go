package service

import (
	"context"
	"sort"
	"time"

	"github.com/fitforge/fitforge-api/internal/domain"
	"github.com/google/uuid"
)

// MockWorkoutRepository is a mock implementation of WorkoutRepository
type MockWorkoutRepository struct {
	workouts   map[uuid.UUID]*domain.WorkoutRecord
	listResult []domain.WorkoutRecord
	err        error
}

func NewMockWorkoutRepository() *MockWorkoutRepository {
	return &MockWorkoutRepository{
		workouts: make(map[uuid.UUID]*domain.WorkoutRecord),
	}
}

func (m *MockWorkoutRepository) Create(ctx context.Context, workout *domain.WorkoutRecord) error {
	if m.err != nil {
		return m.err
	}
	if workout.ID == uuid.Nil {
		workout.ID = uuid.New()
	}
	if workout.LoggedAt.IsZero() {
		workout.LoggedAt = time.Now()
	}
	m.workouts[workout.ID] = workout
	return nil
}

func (m *MockWorkoutRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkoutRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	workout, ok := m.workouts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return workout, nil
}

func (m *MockWorkoutRepository) List(ctx context.Context, userID uuid.UUID, filter domain.WorkoutFilter) ([]domain.WorkoutRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.WorkoutRecord, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.WorkoutRecord
	for _, w := range m.workouts {
		if w.UserID == userID {
			result = append(result, *w)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LoggedAt.After(result[j].LoggedAt)
	})
	return result, nil
}

func (m *MockWorkoutRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.WorkoutRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.WorkoutRecord
	for _, w := range m.workouts {
		if w.UserID == userID {
			result = append(result, *w)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LoggedAt.Before(result[j].LoggedAt)
	})
	return result, nil
}

func (m *MockWorkoutRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var count int64
	for _, w := range m.workouts {
		if w.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *MockWorkoutRepository) TotalDuration(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var total int64
	for _, w := range m.workouts {
		if w.UserID == userID {
			total += int64(w.DurationMinutes)
		}
	}
	return total, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockPlanRepository is a mock implementation of PlanRepository
type MockPlanRepository struct {
	plans map[uuid.UUID]*domain.StoredPlan
	err   error
}

func NewMockPlanRepository() *MockPlanRepository {
	return &MockPlanRepository{
		plans: make(map[uuid.UUID]*domain.StoredPlan),
	}
}

func (m *MockPlanRepository) Upsert(ctx context.Context, plan *domain.StoredPlan) error {
	if m.err != nil {
		return m.err
	}
	now := time.Now()
	if existing, ok := m.plans[plan.UserID]; ok {
		plan.CreatedAt = existing.CreatedAt
	} else {
		plan.CreatedAt = now
	}
	plan.UpdatedAt = now
	m.plans[plan.UserID] = plan
	return nil
}

func (m *MockPlanRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.StoredPlan, error) {
	if m.err != nil {
		return nil, m.err
	}
	plan, ok := m.plans[userID]
	if !ok {
		return nil, domain.ErrNoPlan
	}
	return plan, nil
}

// MockCoachLLM is a mock implementation of llm.CoachLLM
type MockCoachLLM struct {
	insights    *domain.CoachInsights
	err         error
	lastContext *domain.CoachContext
	calls       int
}

func (m *MockCoachLLM) GenerateCoachInsights(ctx context.Context, coachCtx *domain.CoachContext) (*domain.CoachInsights, error) {
	m.calls++
	m.lastContext = coachCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.insights, nil
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func seedUser(repo *MockUserRepository) uuid.UUID {
	user := &domain.User{ID: uuid.New(), DisplayName: "Athlete", Timezone: "UTC"}
	repo.users[user.ID] = user
	return user.ID
}
