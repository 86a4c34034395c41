package trainingcalc

import (
	"fmt"
	"math"

	"github.com/fitforge/fitforge-api/internal/domain"
)

// ProgressionSuggestion is one way to add volume next session.
type ProgressionSuggestion struct {
	Method    string  `json:"method" example:"Add weight"`
	Example   string  `json:"example" example:"Increase to 82.0 kg (+2.5%)"`
	NewVolume float64 `json:"new_volume" example:"13120"`
}

// TrainingVolumeResult summarizes the tonnage of a strength session.
// @Description Training volume with progressive-overload suggestions.
type TrainingVolumeResult struct {
	VolumePerSet           float64                 `json:"volume_per_set" example:"640"`
	VolumePerExercise      float64                 `json:"volume_per_exercise" example:"2560"`
	TotalVolume            float64                 `json:"total_volume" example:"12800"`
	TotalReps              int                     `json:"total_reps" example:"160"`
	TotalSets              int                     `json:"total_sets" example:"20"`
	Unit                   string                  `json:"unit" example:"kg"`
	VolumeCategory         string                  `json:"volume_category" example:"Moderate"`
	VolumeNote             string                  `json:"volume_note" example:"Standard training volume"`
	ProgressionSuggestions []ProgressionSuggestion `json:"progression_suggestions"`
}

// TrainingVolume computes session tonnage (sets * reps * weight * exercises)
// and suggests three progressive-overload paths: +2.5% weight, one extra rep
// or one extra set.
func TrainingVolume(sets, reps int, weight float64, exercises int, unit string) (*TrainingVolumeResult, error) {
	if sets <= 0 || reps <= 0 || weight <= 0 {
		return nil, fmt.Errorf("%w: sets, reps and weight must be positive", domain.ErrInvalidInput)
	}
	if exercises <= 0 {
		exercises = 1
	}
	if unit == "" {
		unit = "kg"
	}

	perSet := float64(reps) * weight
	perExercise := float64(sets) * perSet
	total := perExercise * float64(exercises)

	var category, note string
	switch {
	case total < 5000:
		category = "Low"
		note = "Good for deload or recovery week"
	case total < 15000:
		category = "Moderate"
		note = "Standard training volume"
	case total < 30000:
		category = "High"
		note = "High volume - ensure adequate recovery"
	default:
		category = "Very High"
		note = "Very high volume - typically for advanced lifters"
	}

	suggestions := []ProgressionSuggestion{
		{
			Method:    "Add weight",
			Example:   fmt.Sprintf("Increase to %.1f %s (+2.5%%)", round1(weight*1.025), unit),
			NewVolume: math.Round(float64(sets) * float64(reps) * weight * 1.025 * float64(exercises)),
		},
		{
			Method:    "Add reps",
			Example:   fmt.Sprintf("Do %d reps instead of %d", reps+1, reps),
			NewVolume: math.Round(float64(sets) * float64(reps+1) * weight * float64(exercises)),
		},
		{
			Method:    "Add set",
			Example:   fmt.Sprintf("Do %d sets instead of %d", sets+1, sets),
			NewVolume: math.Round(float64(sets+1) * float64(reps) * weight * float64(exercises)),
		},
	}

	return &TrainingVolumeResult{
		VolumePerSet:           round1(perSet),
		VolumePerExercise:      round1(perExercise),
		TotalVolume:            round1(total),
		TotalReps:              sets * reps * exercises,
		TotalSets:              sets * exercises,
		Unit:                   unit,
		VolumeCategory:         category,
		VolumeNote:             note,
		ProgressionSuggestions: suggestions,
	}, nil
}
