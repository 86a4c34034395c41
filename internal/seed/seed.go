package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/fitforge/fitforge-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const seededDays = 42

var seedActivities = []struct {
	workoutType string
	intensity   domain.Intensity
	minMinutes  int
	maxMinutes  int
}{
	{"strength", domain.IntensityModerate, 40, 70},
	{"run", domain.IntensityModerate, 25, 60},
	{"cycling", domain.IntensityLow, 30, 90},
	{"hiit", domain.IntensityHigh, 15, 30},
	{"yoga", domain.IntensityLow, 20, 45},
	{"swimming", domain.IntensityModerate, 30, 50},
}

// Run seeds the database with sample users and workout histories. Safe to call
// multiple times: users that already have workouts are left alone.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.WorkoutRecord{}, &domain.StoredPlan{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), DisplayName: "Mara", Timezone: "Europe/Amsterdam"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), DisplayName: "Devon", Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), DisplayName: "Yuki", Timezone: "Asia/Tokyo"},
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), DisplayName: "Sam", Timezone: "Australia/Sydney"},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedWorkoutsForUser(db, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedWorkoutsForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	var existing int64
	if err := db.Model(&domain.WorkoutRecord{}).Where("user_id = ?", user.ID).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to count workouts for %s: %w", user.ID, err)
	}
	if existing > 0 {
		return nil
	}

	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		// Roughly four sessions a week
		if rng.Float32() > 0.6 {
			continue
		}

		date := now.AddDate(0, 0, -i)
		activity := seedActivities[rng.Intn(len(seedActivities))]
		sleep := 6.0 + rng.Float64()*3.0
		fatigue := float64(2 + rng.Intn(6))

		workout := domain.WorkoutRecord{
			ID:              uuid.New(),
			UserID:          user.ID,
			Day:             date.Format("2006-01-02"),
			Type:            activity.workoutType,
			DurationMinutes: activity.minMinutes + rng.Intn(activity.maxMinutes-activity.minMinutes+1),
			Intensity:       activity.intensity,
			SleepHours:      &sleep,
			FatigueLevel:    &fatigue,
			LoggedAt:        date,
		}

		if err := db.Create(&workout).Error; err != nil {
			return fmt.Errorf("failed to create workout for %s: %w", user.ID, err)
		}
	}
	return nil
}
