package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/fitforge/fitforge-api/internal/domain"
)

var restDaySuggestions = []string{
	"Light stretching or yoga",
	"Focus on nutrition and hydration",
	"Get quality sleep tonight",
}

// TodaySession picks the entry of plan that applies to today and wraps it
// with warm-up and cool-down guidance. Sessions match by calendar date first,
// then by weekday name, then by position in the week (Monday-first), so plans
// generated mid-week still resolve after their dates have passed.
func TodaySession(plan *domain.TrainingPlan, today time.Time) *domain.TodaySession {
	session := findSession(plan.WeeklyPlan, today)
	if session == nil {
		return &domain.TodaySession{
			Status:      "rest_day",
			PlanName:    plan.PlanName,
			Message:     "No session scheduled today - enjoy the recovery.",
			Suggestions: restDaySuggestions,
		}
	}

	if session.SessionType == "rest" {
		return &domain.TodaySession{
			Status:      "rest_day",
			PlanName:    plan.PlanName,
			Session:     session,
			Message:     "Rest day! Recovery is where the gains happen.",
			Suggestions: restDaySuggestions,
		}
	}

	warmUp, coolDown := sessionBookends(session)
	return &domain.TodaySession{
		Status:   "session",
		PlanName: plan.PlanName,
		Session:  session,
		WarmUp:   warmUp,
		CoolDown: coolDown,
		Message:  fmt.Sprintf("Today: %s (%d min). Let's go!", session.Name, session.DurationMin),
	}
}

func findSession(sessions []domain.PlanSession, today time.Time) *domain.PlanSession {
	date := today.Format("2006-01-02")
	for i := range sessions {
		if sessions[i].Date == date {
			return &sessions[i]
		}
	}

	weekday := today.Weekday().String()
	for i := range sessions {
		if sessions[i].Day == weekday {
			return &sessions[i]
		}
	}

	// Monday-first index into the week.
	idx := (int(today.Weekday()) + 6) % 7
	if idx < len(sessions) {
		return &sessions[idx]
	}
	return nil
}

func sessionBookends(session *domain.PlanSession) (warmUp, coolDown string) {
	zone := strings.ToLower(session.IntensityZone)
	switch {
	case session.SessionType == "hiit" || strings.Contains(zone, "zone 4") || strings.Contains(zone, "zone 5"):
		return "10-15 min progressive warm-up with dynamic stretches", "10 min easy movement + stretching"
	case session.SessionType == "strength":
		return "5 min cardio + dynamic movements + warm-up sets", "5 min walking + full body stretching"
	default:
		return "5-10 min easy movement", "5 min cool-down + stretching"
	}
}
