package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TrainingGoal selects the template pattern for a generated plan.
// @Description Training goal: general_fitness, strength, endurance, fat_loss or race_prep.
type TrainingGoal string

const (
	GoalGeneralFitness TrainingGoal = "general_fitness"
	GoalStrength       TrainingGoal = "strength"
	GoalEndurance      TrainingGoal = "endurance"
	GoalFatLoss        TrainingGoal = "fat_loss"
	GoalRacePrep       TrainingGoal = "race_prep"
)

// ParseTrainingGoal normalizes a goal label; unrecognized input falls back to
// general fitness.
func ParseTrainingGoal(s string) TrainingGoal {
	normalized := TrainingGoal(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_"))
	switch normalized {
	case GoalStrength, GoalEndurance, GoalFatLoss, GoalRacePrep, GoalGeneralFitness:
		return normalized
	default:
		return GoalGeneralFitness
	}
}

// PlanSession is one day of a generated training plan.
// @Description A single planned session.
type PlanSession struct {
	Day           string `json:"day" example:"Monday"`
	DayNumber     int    `json:"day_number" example:"1"`
	Date          string `json:"date" example:"2025-03-10"`
	Name          string `json:"name" example:"Strength Training"`
	SessionType   string `json:"session_type" example:"strength"`
	IntensityZone string `json:"intensity_zone" example:"Moderate"`
	DurationMin   int    `json:"duration_min" example:"45"`
	Emoji         string `json:"emoji" example:"💪"`
	Description   string `json:"description" example:"Full body resistance training"`
}

// PlanMetrics summarizes the load of a generated plan.
// @Description Aggregate plan load metrics.
type PlanMetrics struct {
	TotalDurationMin   int `json:"total_duration_min" example:"245"`
	TrainingDays       int `json:"training_days" example:"5"`
	RestDays           int `json:"rest_days" example:"2"`
	AvgSessionDuration int `json:"avg_session_duration" example:"49"`
	MaxIntensityRPE    int `json:"max_intensity_rpe" example:"9"`
}

// TrainingPlan is a generated week of sessions.
// @Description A generated training plan with safety warnings.
type TrainingPlan struct {
	PlanID           string        `json:"plan_id"`
	PlanName         string        `json:"plan_name" example:"Strength - Week Plan"`
	Goal             TrainingGoal  `json:"goal" example:"strength"`
	DaysPlanned      int           `json:"days_planned" example:"7"`
	WeeklyPlan       []PlanSession `json:"weekly_plan"`
	Metrics          PlanMetrics   `json:"metrics"`
	CoachExplanation string        `json:"coach_explanation"`
	Motivation       string        `json:"motivational_message"`
	// Safety warnings raised by the plan checks (high intensity, missing rest
	// days, excessive volume); informational only
	Warnings  []string  `json:"warnings,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StoredPlan persists the latest generated plan per user.
type StoredPlan struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	PlanJSON  []byte    `gorm:"type:jsonb;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StoredPlan) TableName() string {
	return "training_plans"
}

// TodaySession is the slice of the stored plan that applies to the current
// day. Status is "session", "rest_day" or "no_plan"; having no plan is a
// normal state, not an error.
// @Description Today's planned session with warm-up and cool-down guidance.
type TodaySession struct {
	Status      string       `json:"status" example:"session"`
	PlanName    string       `json:"plan_name,omitempty" example:"Strength - Week Plan"`
	Session     *PlanSession `json:"session,omitempty"`
	WarmUp      string       `json:"warm_up,omitempty"`
	CoolDown    string       `json:"cool_down,omitempty"`
	Message     string       `json:"message"`
	Suggestions []string     `json:"suggestions,omitempty"`
	NextSteps   []string     `json:"next_steps,omitempty"`
}

// GeneratePlanRequest is the request body for plan generation.
// @Description Request payload for generating a training plan.
type GeneratePlanRequest struct {
	// Training goal: general_fitness, strength, endurance, fat_loss or race_prep
	Goal string `json:"goal" validate:"omitempty,max=32" example:"strength"`
	// Plan length in days (1-28); defaults to 7
	Days int `json:"days" validate:"omitempty,min=1,max=28" example:"7"`
}
