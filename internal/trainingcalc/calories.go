package trainingcalc

import (
	"fmt"
	"math"
	"strings"

	"github.com/fitforge/fitforge-api/internal/domain"
)

// defaultMET is the fallback for unrecognized activities, roughly moderate
// strength work.
const defaultMET = 5.0

// Metabolic equivalent values per activity.
var metValues = map[string]float64{
	"running_easy":     8.0,
	"running_moderate": 10.0,
	"running_hard":     12.0,
	"running_sprint":   15.0,

	"cycling_easy":     4.0,
	"cycling_moderate": 8.0,
	"cycling_hard":     10.0,
	"cycling_racing":   12.0,

	"swimming_easy":     6.0,
	"swimming_moderate": 8.0,
	"swimming_hard":     10.0,

	"strength_light":    3.5,
	"strength_moderate": 5.0,
	"strength_vigorous": 6.0,

	"walking":    3.5,
	"hiking":     6.0,
	"rowing":     7.0,
	"hiit":       12.0,
	"yoga":       2.5,
	"stretching": 2.0,
}

// CaloriesResult is the outcome of a calorie expenditure estimate.
// @Description Estimated calories burned for a session.
type CaloriesResult struct {
	CaloriesBurned    int                `json:"calories_burned" example:"562"`
	METValue          float64            `json:"met_value" example:"10"`
	ActivityType      string             `json:"activity_type" example:"running_moderate"`
	DurationMinutes   float64            `json:"duration_minutes" example:"45"`
	WeightKg          float64            `json:"weight_kg" example:"75"`
	CaloriesPerMinute float64            `json:"calories_per_minute" example:"12.5"`
	FoodEquivalents   map[string]float64 `json:"equivalent_food"`
}

// CaloriesBurned estimates energy expenditure as MET * weight * hours. An
// optional intensity label swaps in the intensity-specific MET for activities
// that have graded entries (running, cycling, swimming, strength).
func CaloriesBurned(weightKg, durationMinutes float64, activityType, intensity string) (*CaloriesResult, error) {
	if weightKg <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive", domain.ErrInvalidInput)
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", domain.ErrInvalidInput)
	}
	if activityType == "" {
		activityType = "running_moderate"
	}

	met, ok := metValues[activityType]
	if !ok {
		met = defaultMET
	}
	if intensity != "" {
		base, _, found := strings.Cut(activityType, "_")
		if found {
			if graded, ok := metValues[base+"_"+strings.ToLower(intensity)]; ok {
				met = graded
			}
		}
	}

	calories := math.Round(met * weightKg * durationMinutes / 60)

	equivalents := map[string]float64{
		"bananas":         round1(calories / 105),
		"slices_of_pizza": round1(calories / 285),
		"cookies":         round1(calories / 150),
		"beers":           round1(calories / 150),
		"chocolate_bars":  round1(calories / 230),
	}

	return &CaloriesResult{
		CaloriesBurned:    int(calories),
		METValue:          met,
		ActivityType:      activityType,
		DurationMinutes:   durationMinutes,
		WeightKg:          weightKg,
		CaloriesPerMinute: round1(calories / durationMinutes),
		FoodEquivalents:   equivalents,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
