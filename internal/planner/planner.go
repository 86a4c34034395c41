package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fitforge/fitforge-api/internal/domain"
)

// DefaultPlanDays is the standard plan length.
const DefaultPlanDays = 7

// maxWeeklyMinutes is the weekly volume above which a plan gets a safety
// warning (seven hours).
const maxWeeklyMinutes = 420

// GeneratePlan builds a deterministic template plan for the goal, starting at
// start and covering days calendar days. Days outside 1..28 fall back to a
// single week. Unlike the readiness analysis, plans carry no per-user state;
// the same goal and start always yield the same plan apart from the plan ID.
func GeneratePlan(goal domain.TrainingGoal, days int, start time.Time) *domain.TrainingPlan {
	if days < 1 || days > 28 {
		days = DefaultPlanDays
	}

	pattern, ok := goalPatterns[goal]
	if !ok {
		goal = domain.GoalGeneralFitness
		pattern = goalPatterns[goal]
	}

	sessions := make([]domain.PlanSession, 0, days)
	for i := 0; i < days; i++ {
		sessionType := pattern[i%len(pattern)]
		tpl, ok := sessionTemplates[sessionType]
		if !ok {
			sessionType = "rest"
			tpl = sessionTemplates[sessionType]
		}
		date := start.AddDate(0, 0, i)
		sessions = append(sessions, domain.PlanSession{
			Day:           date.Weekday().String(),
			DayNumber:     i + 1,
			Date:          date.Format("2006-01-02"),
			Name:          tpl.Name,
			SessionType:   sessionType,
			IntensityZone: tpl.IntensityZone,
			DurationMin:   tpl.DurationMin,
			Emoji:         tpl.Emoji,
			Description:   tpl.Description,
		})
	}

	metrics := CalculateMetrics(sessions)

	return &domain.TrainingPlan{
		PlanID:           fmt.Sprintf("tpl_%s", uuid.NewString()[:8]),
		PlanName:         fmt.Sprintf("%s - Week Plan", goalTitle(goal)),
		Goal:             goal,
		DaysPlanned:      days,
		WeeklyPlan:       sessions,
		Metrics:          metrics,
		CoachExplanation: coachExplanation(goal, metrics),
		Motivation:       motivationalMessages[goal],
		Warnings:         SafetyWarnings(metrics),
		CreatedAt:        start,
	}
}

// CalculateMetrics aggregates plan load: total and average duration, the
// training/rest day split and the peak session intensity on an RPE-like
// 1-10 scale.
func CalculateMetrics(sessions []domain.PlanSession) domain.PlanMetrics {
	var total, trainingDays int
	for _, s := range sessions {
		total += s.DurationMin
		if s.DurationMin > 0 {
			trainingDays++
		}
	}

	maxIntensity := 0
	for _, s := range sessions {
		if score := intensityScore(s.IntensityZone); score > maxIntensity {
			maxIntensity = score
		}
	}

	avg := 0
	if trainingDays > 0 {
		avg = total / trainingDays
	}

	return domain.PlanMetrics{
		TotalDurationMin:   total,
		TrainingDays:       trainingDays,
		RestDays:           len(sessions) - trainingDays,
		AvgSessionDuration: avg,
		MaxIntensityRPE:    maxIntensity,
	}
}

// SafetyWarnings flags risky plan shapes. Warnings are informational; plan
// generation never fails on them.
func SafetyWarnings(metrics domain.PlanMetrics) []string {
	var warnings []string
	if metrics.MaxIntensityRPE >= 8 {
		warnings = append(warnings, "🔥 High intensity sessions planned (RPE 8+)")
	}
	if metrics.RestDays == 0 {
		warnings = append(warnings, "😰 No rest days scheduled - injury risk!")
	}
	if metrics.TotalDurationMin > maxWeeklyMinutes {
		warnings = append(warnings, "📈 High weekly volume (7+ hours)")
	}
	if metrics.TrainingDays >= 7 {
		warnings = append(warnings, "⚠️ Training every day - recovery needed!")
	}
	return warnings
}

func intensityScore(zone string) int {
	z := strings.ToLower(zone)
	switch {
	case strings.Contains(z, "high") || strings.Contains(z, "max") || strings.Contains(z, "zone 5"):
		return 9
	case strings.Contains(z, "zone 4"):
		return 8
	case strings.Contains(z, "moderate") || strings.Contains(z, "zone 3"):
		return 6
	case strings.Contains(z, "zone 2"):
		return 4
	default:
		return 2
	}
}

func coachExplanation(goal domain.TrainingGoal, metrics domain.PlanMetrics) string {
	if explain, ok := coachExplanations[goal]; ok {
		return explain(metrics)
	}
	return fmt.Sprintf("Balanced plan with %d training days.", metrics.TrainingDays)
}

func goalTitle(goal domain.TrainingGoal) string {
	words := strings.Split(string(goal), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
