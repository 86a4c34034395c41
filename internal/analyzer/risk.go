package analyzer

import (
	"time"

	"github.com/fitforge/fitforge-api/internal/domain"
)

// EstimateRisk estimates overtraining risk in [0,1] from three independent,
// individually capped signals. Workouts are expected in chronological order,
// most recent last; "last N" slices are positional, not date-based.
//
//  1. High-intensity frequency among the last 7 workouts: >=5 adds 0.4,
//     >=3 adds 0.2.
//  2. Training density: distinct workout days within the trailing 7 calendar
//     days of now: 7 adds 0.3, 6 adds 0.15.
//  3. Recent fatigue: mean of reported fatigue among the last 5 workouts:
//     >=8 adds 0.3, >=6 adds 0.15.
//
// The sum is clamped to 1.0. An empty history carries no risk.
func EstimateRisk(workouts []domain.WorkoutRecord, now time.Time) float64 {
	if len(workouts) == 0 {
		return 0.0
	}

	risk := 0.0

	highCount := 0
	for _, w := range lastN(workouts, 7) {
		if w.Intensity.IsHigh() {
			highCount++
		}
	}
	switch {
	case highCount >= 5:
		risk += 0.4
	case highCount >= 3:
		risk += 0.2
	}

	cutoff := now.AddDate(0, 0, -7)
	recentDays := make(map[time.Time]struct{})
	for _, w := range workouts {
		day, err := ParseDay(w.Day)
		if err != nil {
			continue
		}
		if !day.Before(cutoff) {
			recentDays[day] = struct{}{}
		}
	}
	switch {
	case len(recentDays) >= 7:
		risk += 0.3
	case len(recentDays) >= 6:
		risk += 0.15
	}

	var fatigueSum float64
	fatigueCount := 0
	for _, w := range lastN(workouts, 5) {
		if w.FatigueLevel != nil {
			fatigueSum += *w.FatigueLevel
			fatigueCount++
		}
	}
	if fatigueCount > 0 {
		switch avg := fatigueSum / float64(fatigueCount); {
		case avg >= 8:
			risk += 0.3
		case avg >= 6:
			risk += 0.15
		}
	}

	if risk > 1.0 {
		risk = 1.0
	}
	return risk
}

func lastN(workouts []domain.WorkoutRecord, n int) []domain.WorkoutRecord {
	if len(workouts) <= n {
		return workouts
	}
	return workouts[len(workouts)-n:]
}
