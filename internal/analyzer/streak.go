package analyzer

import (
	"sort"
	"time"

	"github.com/fitforge/fitforge-api/internal/domain"
)

// maxStreakGapDays is the largest day gap that keeps a streak alive: a gap of
// 2 means at most one skipped day between workouts.
const maxStreakGapDays = 2

// WorkoutDays collects the distinct parseable calendar days from a workout
// history.
func WorkoutDays(workouts []domain.WorkoutRecord) []time.Time {
	seen := make(map[time.Time]struct{})
	var days []time.Time
	for _, w := range workouts {
		day, err := ParseDay(w.Day)
		if err != nil {
			continue
		}
		if _, ok := seen[day]; !ok {
			seen[day] = struct{}{}
			days = append(days, day)
		}
	}
	return days
}

// CalculateStreaks computes the current and best consecutive-day workout
// streaks, tolerating one rest day per gap.
//
// The current streak is 0 unless the most recent workout day is today or
// yesterday; otherwise it extends backwards while successive workout days are
// at most maxStreakGapDays apart. The best streak is the longest such run
// anywhere in the history, never less than the current streak, and at least 1
// whenever any day exists.
func CalculateStreaks(days []time.Time, today time.Time) domain.StreakInfo {
	if len(days) == 0 {
		return domain.StreakInfo{}
	}

	sorted := make([]time.Time, len(days))
	for i, d := range days {
		sorted[i] = truncateToDay(d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].After(sorted[j]) })
	sorted = dedupeSorted(sorted)

	today = truncateToDay(today)

	current := 0
	if daysBetween(today, sorted[0]) <= 1 {
		current = 1
		for i := 0; i < len(sorted)-1; i++ {
			if daysBetween(sorted[i], sorted[i+1]) > maxStreakGapDays {
				break
			}
			current++
		}
	}

	best := 1
	run := 1
	for i := 0; i < len(sorted)-1; i++ {
		if daysBetween(sorted[i], sorted[i+1]) <= maxStreakGapDays {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	if current > best {
		best = current
	}

	return domain.StreakInfo{CurrentStreak: current, BestStreak: best}
}

// daysBetween returns the whole days from the earlier day b to the later day a.
func daysBetween(a, b time.Time) int {
	return int(a.Sub(b).Hours() / 24)
}

func dedupeSorted(days []time.Time) []time.Time {
	out := days[:1]
	for _, d := range days[1:] {
		if !d.Equal(out[len(out)-1]) {
			out = append(out, d)
		}
	}
	return out
}
