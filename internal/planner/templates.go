// Package planner generates deterministic template-based training plans:
// seven-day session patterns per training goal, aggregate load metrics and
// safety warnings for risky weeks.
package planner

import (
	"fmt"

	"github.com/fitforge/fitforge-api/internal/domain"
)

// sessionTemplate describes one reusable session type.
type sessionTemplate struct {
	Name          string
	IntensityZone string
	DurationMin   int
	Emoji         string
	Description   string
}

var sessionTemplates = map[string]sessionTemplate{
	"easy_run": {
		Name:          "Easy Run",
		IntensityZone: "Zone 2",
		DurationMin:   30,
		Emoji:         "🏃",
		Description:   "Conversational pace run",
	},
	"tempo": {
		Name:          "Tempo Run",
		IntensityZone: "Zone 3-4",
		DurationMin:   40,
		Emoji:         "🔥",
		Description:   "Comfortably hard effort",
	},
	"long_run": {
		Name:          "Long Run",
		IntensityZone: "Zone 2",
		DurationMin:   60,
		Emoji:         "🏔️",
		Description:   "Extended aerobic session",
	},
	"strength": {
		Name:          "Strength Training",
		IntensityZone: "Moderate",
		DurationMin:   45,
		Emoji:         "💪",
		Description:   "Full body resistance training",
	},
	"hiit": {
		Name:          "HIIT Session",
		IntensityZone: "High",
		DurationMin:   25,
		Emoji:         "⚡",
		Description:   "High intensity intervals",
	},
	"recovery": {
		Name:          "Active Recovery",
		IntensityZone: "Zone 1",
		DurationMin:   20,
		Emoji:         "🧘",
		Description:   "Light movement and stretching",
	},
	"rest": {
		Name:          "Rest Day",
		IntensityZone: "None",
		DurationMin:   0,
		Emoji:         "😴",
		Description:   "Complete rest for recovery",
	},
}

// Seven-day session patterns per goal; plans longer than a week repeat the
// pattern.
var goalPatterns = map[domain.TrainingGoal][]string{
	domain.GoalGeneralFitness: {"strength", "easy_run", "rest", "hiit", "easy_run", "strength", "rest"},
	domain.GoalStrength:       {"strength", "rest", "strength", "recovery", "strength", "rest", "rest"},
	domain.GoalEndurance:      {"easy_run", "tempo", "rest", "easy_run", "recovery", "long_run", "rest"},
	domain.GoalFatLoss:        {"hiit", "strength", "easy_run", "rest", "hiit", "strength", "rest"},
	domain.GoalRacePrep:       {"easy_run", "tempo", "rest", "easy_run", "rest", "long_run", "rest"},
}

var coachExplanations = map[domain.TrainingGoal]func(m domain.PlanMetrics) string{
	domain.GoalGeneralFitness: func(m domain.PlanMetrics) string {
		return fmt.Sprintf("This balanced plan includes %d training days with %d rest days. We're mixing strength and cardio for well-rounded fitness development.", m.TrainingDays, m.RestDays)
	},
	domain.GoalStrength: func(m domain.PlanMetrics) string {
		return fmt.Sprintf("Focus on progressive overload across %d sessions. Adequate rest between sessions allows for muscle recovery and growth.", m.TrainingDays)
	},
	domain.GoalEndurance: func(m domain.PlanMetrics) string {
		return fmt.Sprintf("Building your aerobic base with %d minutes of training. The long run on the weekend is key for endurance gains.", m.TotalDurationMin)
	},
	domain.GoalFatLoss: func(domain.PlanMetrics) string {
		return "Combining HIIT and strength training maximizes calorie burn and metabolic boost. The mix keeps things interesting and effective."
	},
	domain.GoalRacePrep: func(domain.PlanMetrics) string {
		return "Periodized approach with tempo work and a long run. We're building race-specific fitness while managing fatigue."
	},
}

var motivationalMessages = map[domain.TrainingGoal]string{
	domain.GoalStrength:       "💪 Time to build that strength! Progressive overload is the key.",
	domain.GoalEndurance:      "🏃 Let's build that aerobic engine! Consistency wins.",
	domain.GoalFatLoss:        "🔥 Burn it up! Remember, nutrition is 80% of the battle.",
	domain.GoalRacePrep:       "🏁 Race day is coming! Trust the process.",
	domain.GoalGeneralFitness: "🎯 Balance is everything. Let's get after it!",
}
