package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Intensity is the normalized effort level of a workout.
// @Description Normalized workout intensity: LOW, MODERATE or HIGH.
type Intensity string

const (
	IntensityLow      Intensity = "LOW"
	IntensityModerate Intensity = "MODERATE"
	IntensityHigh     Intensity = "HIGH"
)

// ParseIntensity normalizes a free-text intensity label into an Intensity.
// The labels "high", "max", "hard" and "intense" (any casing) map to HIGH;
// common easy labels map to LOW; anything unrecognized defaults to MODERATE.
func ParseIntensity(s string) Intensity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "max", "hard", "intense":
		return IntensityHigh
	case "low", "easy", "light", "recovery":
		return IntensityLow
	default:
		return IntensityModerate
	}
}

// IsHigh reports whether the intensity counts as high effort for
// overtraining-risk purposes.
func (i Intensity) IsHigh() bool {
	return i == IntensityHigh
}

// WorkoutRecord is one logged training session.
//
// Day holds the client-supplied date string; only its first 10 characters are
// ever interpreted (as YYYY-MM-DD). Records whose Day does not parse are kept
// in the history but excluded from date-windowed computations.
type WorkoutRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_workouts_user_logged" json:"user_id"`
	Day             string    `gorm:"type:varchar(64);not null" json:"date"`
	Type            string    `gorm:"type:varchar(64);not null" json:"type"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Intensity       Intensity `gorm:"type:varchar(10);not null" json:"intensity"`
	SleepHours      *float64  `gorm:"type:numeric" json:"sleep_hours,omitempty"`
	FatigueLevel    *float64  `gorm:"type:numeric" json:"fatigue_level,omitempty"`
	Notes           *string   `gorm:"type:varchar(500)" json:"notes,omitempty"`
	LoggedAt        time.Time `gorm:"autoCreateTime;index:idx_workouts_user_logged,sort:desc" json:"logged_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (WorkoutRecord) TableName() string {
	return "workout_records"
}

// CreateWorkoutRequest is the request body for logging a workout.
// @Description Request payload for recording a training session.
type CreateWorkoutRequest struct {
	// Workout date; the first 10 characters are read as YYYY-MM-DD
	Date string `json:"date" validate:"required,max=64" example:"2025-03-10"`
	// Free-text activity label
	Type string `json:"type" validate:"required,max=64" example:"strength"`
	// Session length in minutes
	DurationMinutes int `json:"duration_minutes" validate:"required,min=1,max=1440" example:"45"`
	// Free-text intensity label; normalized to LOW/MODERATE/HIGH
	Intensity string `json:"intensity" validate:"omitempty,max=32" example:"high"`
	// Self-reported hours of sleep before the session
	SleepHours *float64 `json:"sleep_hours,omitempty" validate:"omitempty,min=0,max=24" example:"7.5"`
	// Self-reported fatigue on a 1-10 scale
	FatigueLevel *float64 `json:"fatigue_level,omitempty" validate:"omitempty,min=1,max=10" example:"4"`
	// Optional free-form notes
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// WorkoutResponse is the response body for workout endpoints.
// @Description A logged training session.
type WorkoutResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Date            string    `json:"date" example:"2025-03-10"`
	Type            string    `json:"type" example:"strength"`
	DurationMinutes int       `json:"duration_minutes" example:"45"`
	Intensity       Intensity `json:"intensity" example:"HIGH"`
	SleepHours      *float64  `json:"sleep_hours,omitempty" example:"7.5"`
	FatigueLevel    *float64  `json:"fatigue_level,omitempty" example:"4"`
	Notes           *string   `json:"notes,omitempty"`
	LoggedAt        time.Time `json:"logged_at"`
}

func (w *WorkoutRecord) ToResponse() WorkoutResponse {
	return WorkoutResponse{
		ID:              w.ID,
		UserID:          w.UserID,
		Date:            w.Day,
		Type:            w.Type,
		DurationMinutes: w.DurationMinutes,
		Intensity:       w.Intensity,
		SleepHours:      w.SleepHours,
		FatigueLevel:    w.FatigueLevel,
		Notes:           w.Notes,
		LoggedAt:        w.LoggedAt,
	}
}

// WorkoutListResponse is the response body for listing workouts.
// @Description Paginated list of workout records.
type WorkoutListResponse struct {
	Data       []WorkoutResponse  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// WorkoutFilter contains filter parameters for listing workouts
type WorkoutFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
