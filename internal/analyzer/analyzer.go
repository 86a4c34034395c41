// Package analyzer implements the deterministic performance and recovery
// engine: readiness scoring, weekly consistency, overtraining-risk estimation,
// streaks and recommendation generation. Every function is pure; callers
// supply the workout history, the clock and the configuration.
package analyzer

import (
	"math"
	"time"

	"github.com/fitforge/fitforge-api/internal/domain"
)

const (
	// CacheTTL is how long a cached analysis stays valid for quick checks.
	CacheTTL = 4 * time.Hour
	// QuickWindowDays is the analysis window used when a quick check has to
	// recompute.
	QuickWindowDays = 14
	// fallbackRecent is how many raw records the window filter falls back to
	// when it would otherwise return nothing.
	fallbackRecent = 10
)

// CacheEntry is one user's cached analysis slot. The engine never stores
// entries itself: callers pass the previous entry in and keep the returned
// one, which makes invalidation (dropping the entry after a new workout is
// logged) the caller's explicit responsibility.
type CacheEntry struct {
	Result     *domain.AnalysisResult
	ComputedAt time.Time
}

// Analyze computes a full readiness snapshot over the trailing windowDays of
// the supplied history. Workouts are expected in chronological order, most
// recent last.
//
// Records whose date does not parse are excluded from the date window, but if
// the window excludes everything the analysis falls back to the most recent
// ten raw records so a sparse or old history still yields a signal. An empty
// history yields the explicit no-data sentinel rather than an error.
func Analyze(history []domain.WorkoutRecord, windowDays int, now time.Time, cfg Config) *domain.AnalysisResult {
	if windowDays <= 0 {
		windowDays = cfg.DefaultWindowDays
	}

	if len(history) == 0 {
		return noDataResult(windowDays, now)
	}

	cutoff := now.AddDate(0, 0, -windowDays)
	var filtered []domain.WorkoutRecord
	for _, w := range history {
		day, err := ParseDay(w.Day)
		if err != nil {
			continue
		}
		if !day.Before(cutoff) {
			filtered = append(filtered, w)
		}
	}
	if len(filtered) == 0 {
		filtered = lastN(history, fallbackRecent)
	}

	consistencyPct, activeWeeks, consistencyLabel := CalculateConsistency(filtered, cfg.TargetWorkoutsPerWeek)
	avgSleep, avgFatigue := BiometricAverages(filtered, cfg.MinSamplesForAverages)
	risk := EstimateRisk(filtered, now)
	score, label, emoji := ReadinessScore(risk, avgSleep, avgFatigue, consistencyPct, cfg)
	recs := GenerateRecommendations(score, risk, avgSleep, avgFatigue, consistencyPct)

	// Simplified chronic/acute training load estimates for the planner:
	// CTL grows with total volume, ATL grows with risk, form is the gap.
	totalMinutes := 0
	for _, w := range filtered {
		totalMinutes += w.DurationMinutes
	}
	ctl := math.Min(100, 30+float64(totalMinutes)/60)
	atl := ctl * (1 + risk*0.5)
	form := ctl - atl

	return &domain.AnalysisResult{
		Status:             domain.AnalysisStatusSuccess,
		AnalysisWindowDays: windowDays,
		TotalWorkouts:      len(filtered),
		ReadinessScore:     score,
		ReadinessLabel:     label,
		ReadinessEmoji:     emoji,
		RiskLevel:          round3(risk),
		CTL:                round1(ctl),
		ATL:                round1(atl),
		Form:               round1(form),
		ConsistencyPercent: consistencyPct,
		ConsistencyLabel:   consistencyLabel,
		ActiveWeeks:        activeWeeks,
		AvgSleepHours:      avgSleep,
		AvgFatigue:         avgFatigue,
		FatigueLevel:       fatigueLabel(avgFatigue),
		Recommendations:    recs,
		MotivationalQuote:  MotivationalQuote(score),
		AnalyzedAt:         now,
	}
}

// QuickStatus answers "should I train today?" from the cached analysis when
// it is younger than CacheTTL, recomputing over a two-week window otherwise.
// It returns the status plus the cache entry the caller should keep.
func QuickStatus(prev *CacheEntry, history []domain.WorkoutRecord, now time.Time, cfg Config) (domain.QuickStatus, *CacheEntry) {
	if prev != nil && prev.Result != nil {
		age := now.Sub(prev.ComputedAt)
		if age >= 0 && age < CacheTTL {
			return quickFromResult(prev.Result, "cached", round1(age.Hours())), prev
		}
	}

	result := Analyze(history, QuickWindowDays, now, cfg)
	entry := &CacheEntry{Result: result, ComputedAt: now}
	return quickFromResult(result, "fresh", 0), entry
}

func quickFromResult(result *domain.AnalysisResult, status string, ageHours float64) domain.QuickStatus {
	return domain.QuickStatus{
		Status:            status,
		ReadinessScore:    result.ReadinessScore,
		ReadinessLabel:    result.ReadinessLabel,
		ReadinessEmoji:    result.ReadinessEmoji,
		QuickSummary:      quickSummary(result.ReadinessScore),
		TopRecommendation: result.Recommendations[0],
		CacheAgeHours:     ageHours,
	}
}

func quickSummary(score int) string {
	switch {
	case score >= 85:
		return "You're primed for a great session! 💪"
	case score >= 70:
		return "Good to train with normal intensity."
	case score >= 55:
		return "Moderate day - listen to your body."
	case score >= 40:
		return "Consider lighter training."
	default:
		return "Rest day recommended."
	}
}

func noDataResult(windowDays int, now time.Time) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Status:             domain.AnalysisStatusNoData,
		AnalysisWindowDays: windowDays,
		ReadinessScore:     50,
		ReadinessLabel:     "Unknown",
		ReadinessEmoji:     "⚪",
		RiskLevel:          0.0,
		CTL:                40,
		ATL:                35,
		Form:               5,
		ConsistencyPercent: 0,
		ConsistencyLabel:   "New",
		ActiveWeeks:        0,
		FatigueLevel:       "unknown",
		Recommendations: []string{
			"🏁 Log your first workout to get personalized analysis!",
			"💡 Include sleep hours and fatigue level for better insights.",
		},
		MotivationalQuote: "Every journey begins with a single step. 🚀",
		AnalyzedAt:        now,
	}
}

func fatigueLabel(avgFatigue *float64) string {
	if avgFatigue == nil {
		return "moderate"
	}
	switch {
	case *avgFatigue >= 7:
		return "high"
	case *avgFatigue >= 4:
		return "moderate"
	default:
		return "low"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
