package analyzer

import (
	"math"

	"github.com/fitforge/fitforge-api/internal/domain"
)

// BiometricAverages extracts average sleep hours and fatigue level from the
// workout history. Each average is computed independently and is nil until at
// least minSamples values are present; missing values are skipped, never
// treated as zero. Results are rounded to one decimal.
func BiometricAverages(workouts []domain.WorkoutRecord, minSamples int) (avgSleep, avgFatigue *float64) {
	var sleepVals, fatigueVals []float64

	for _, w := range workouts {
		if w.SleepHours != nil {
			sleepVals = append(sleepVals, *w.SleepHours)
		}
		if w.FatigueLevel != nil {
			fatigueVals = append(fatigueVals, *w.FatigueLevel)
		}
	}

	if len(sleepVals) >= minSamples {
		avgSleep = roundedMean(sleepVals)
	}
	if len(fatigueVals) >= minSamples {
		avgFatigue = roundedMean(fatigueVals)
	}
	return avgSleep, avgFatigue
}

func roundedMean(values []float64) *float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := math.Round(sum/float64(len(values))*10) / 10
	return &mean
}
