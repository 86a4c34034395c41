package analyzer

import (
	"math"

	"github.com/fitforge/fitforge-api/internal/domain"
)

// Consistency label thresholds, highest first.
var consistencyLabels = []struct {
	min   int
	label string
}{
	{90, "Elite"},
	{75, "Excellent"},
	{50, "Strong"},
	{25, "Building"},
	{0, "Getting Started"},
}

// ConsistencyLabel maps a consistency percent to its descriptive tier.
func ConsistencyLabel(percent int) string {
	for _, tier := range consistencyLabels {
		if percent >= tier.min {
			return tier.label
		}
	}
	return "Getting Started"
}

// WeekCounts buckets workouts by ISO week. Records whose date does not parse
// are skipped.
func WeekCounts(workouts []domain.WorkoutRecord) map[WeekKey]int {
	counts := make(map[WeekKey]int)
	for _, w := range workouts {
		key, err := WeekKeyFor(w.Day)
		if err != nil {
			continue
		}
		counts[key]++
	}
	return counts
}

// CalculateConsistency computes weekly workout consistency: the share of
// active ISO weeks (weeks with at least one workout) that meet the target
// session count. Weeks with no workouts never appear in the denominator.
//
// Returns the consistency percent, the number of active weeks and the tier
// label. An empty history, or one with no parseable dates, yields (0, 0, "New").
func CalculateConsistency(workouts []domain.WorkoutRecord, targetPerWeek int) (int, int, string) {
	if len(workouts) == 0 {
		return 0, 0, "New"
	}

	counts := WeekCounts(workouts)
	totalWeeks := len(counts)
	if totalWeeks == 0 {
		return 0, 0, "New"
	}

	goodWeeks := 0
	for _, n := range counts {
		if n >= targetPerWeek {
			goodWeeks++
		}
	}

	percent := int(math.Round(float64(goodWeeks) / float64(totalWeeks) * 100))
	return percent, totalWeeks, ConsistencyLabel(percent)
}
