package domain

import (
	"strings"
	"time"
)

// AnalysisStatus distinguishes a computed snapshot from the no-data sentinel.
type AnalysisStatus string

const (
	AnalysisStatusSuccess AnalysisStatus = "success"
	AnalysisStatusNoData  AnalysisStatus = "no_data"
)

// AnalysisResult is one computed readiness snapshot.
// @Description Full performance and recovery analysis for a user.
type AnalysisResult struct {
	Status             AnalysisStatus `json:"status" example:"success"`
	AnalysisWindowDays int            `json:"analysis_window_days" example:"28"`
	TotalWorkouts      int            `json:"total_workouts_analyzed" example:"14"`
	// Composite readiness score, clamped to [5,100] (50 in the no-data state)
	ReadinessScore int    `json:"readiness_score" example:"82"`
	ReadinessLabel string `json:"readiness_label" example:"STRONG"`
	ReadinessEmoji string `json:"readiness_emoji" example:"🟢"`
	// Overtraining risk in [0,1]
	RiskLevel float64 `json:"risk_level" example:"0.2"`
	// Chronic training load estimate (fitness)
	CTL float64 `json:"ctl" example:"45.5"`
	// Acute training load estimate (fatigue)
	ATL  float64 `json:"atl" example:"50.1"`
	Form float64 `json:"form" example:"-4.6"`
	// Percent of active weeks meeting the session target
	ConsistencyPercent int    `json:"consistency_percent" example:"75"`
	ConsistencyLabel   string `json:"consistency_label" example:"Excellent"`
	// Distinct ISO weeks with at least one workout in the window
	ActiveWeeks       int       `json:"active_weeks" example:"4"`
	AvgSleepHours     *float64  `json:"avg_sleep_hours" example:"7.2"`
	AvgFatigue        *float64  `json:"avg_fatigue" example:"4.5"`
	FatigueLevel      string    `json:"fatigue_level" example:"moderate"`
	Recommendations   []string  `json:"recommendations"`
	MotivationalQuote string    `json:"motivational_quote"`
	AnalyzedAt        time.Time `json:"analyzed_at"`
}

// StreakInfo holds consecutive-day workout streaks, tolerating one rest day
// per gap.
// @Description Current and best workout streaks in days.
type StreakInfo struct {
	CurrentStreak int `json:"current_streak" example:"5"`
	BestStreak    int `json:"best_streak" example:"12"`
}

// QuickStatus is the lightweight "should I train?" answer, served from the
// cached analysis when it is fresh enough.
// @Description Fast readiness check, cached for up to four hours.
type QuickStatus struct {
	// "cached" when served from the cache slot, "fresh" otherwise
	Status            string  `json:"status" example:"cached"`
	ReadinessScore    int     `json:"readiness_score" example:"82"`
	ReadinessLabel    string  `json:"readiness_label" example:"STRONG"`
	ReadinessEmoji    string  `json:"readiness_emoji" example:"🟢"`
	QuickSummary      string  `json:"quick_summary" example:"Good to train with normal intensity."`
	TopRecommendation string  `json:"top_recommendation"`
	CacheAgeHours     float64 `json:"cache_age_hours,omitempty" example:"1.5"`
}

// ConsistencyReport is the detailed weekly-frequency breakdown.
// @Description Weekly workout-frequency report.
type ConsistencyReport struct {
	Status             AnalysisStatus `json:"status" example:"success"`
	WeeksAnalyzed      int            `json:"weeks_analyzed" example:"4"`
	ConsistencyPercent int            `json:"consistency_percent" example:"75"`
	ConsistencyLabel   string         `json:"consistency_label" example:"Excellent"`
	// Workout count per ISO week, keyed by the serialized week (e.g. "2025-W11")
	WeeklyBreakdown    map[string]int `json:"weekly_breakdown,omitempty"`
	TotalWorkouts      int            `json:"total_workouts" example:"12"`
	AvgWorkoutsPerWeek float64        `json:"avg_workouts_per_week" example:"3.0"`
	TargetPerWeek      int            `json:"target_per_week" example:"3"`
}

// TrainingFocus narrows training recommendations to a discipline.
type TrainingFocus string

const (
	FocusStrength TrainingFocus = "strength"
	FocusCardio   TrainingFocus = "cardio"
	FocusRecovery TrainingFocus = "recovery"
	FocusHIIT     TrainingFocus = "hiit"
	FocusNone     TrainingFocus = ""
)

// ParseTrainingFocus normalizes a focus query parameter. "rest" is treated as
// recovery; anything unrecognized reports ok=false.
func ParseTrainingFocus(s string) (TrainingFocus, bool) {
	normalized := TrainingFocus(strings.ToLower(strings.TrimSpace(s)))
	switch normalized {
	case FocusStrength, FocusCardio, FocusRecovery, FocusHIIT, FocusNone:
		return normalized, true
	case "rest":
		return FocusRecovery, true
	default:
		return FocusNone, false
	}
}

// TrainingRecommendations is the "what should I do today?" answer derived from
// the latest analysis.
// @Description Readiness-aware training recommendations, optionally focused.
type TrainingRecommendations struct {
	Status                  string   `json:"status" example:"success"`
	ReadinessScore          int      `json:"readiness_score" example:"82"`
	RiskLevel               float64  `json:"risk_level" example:"0.2"`
	GeneralRecommendations  []string `json:"general_recommendations"`
	FocusRecommendations    []string `json:"focus_recommendations"`
	SuggestedWorkoutType    string   `json:"suggested_workout_type" example:"strength"`
	IntensityRecommendation string   `json:"intensity_recommendation" example:"high"`
	DurationRecommendation  string   `json:"duration_recommendation" example:"60-75 min"`
}

// ProfileStats summarizes a user's whole training history.
// @Description Lifetime training totals and streaks.
type ProfileStats struct {
	TotalWorkouts        int        `json:"total_workouts" example:"120"`
	TotalDurationMinutes int        `json:"total_duration_minutes" example:"5400"`
	Streaks              StreakInfo `json:"streaks"`
	AvgWorkoutsPerWeek   float64    `json:"avg_weekly_workouts" example:"3.2"`
}
