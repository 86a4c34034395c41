// Package trainingcalc implements the stateless fitness calculators: one-rep
// max estimation, training stress, calorie expenditure, heart-rate zones,
// body metrics and training volume. All functions are pure and validate their
// own inputs, returning errors that wrap domain.ErrInvalidInput.
package trainingcalc

import (
	"fmt"
	"math"
	"strings"

	"github.com/fitforge/fitforge-api/internal/domain"
)

// One-rep max estimation formulas.
const (
	FormulaEpley    = "epley"
	FormulaBrzycki  = "brzycki"
	FormulaLander   = "lander"
	FormulaLombardi = "lombardi"
	FormulaOConner  = "oconner"
	FormulaAverage  = "average"
)

// maxReliableReps is the rep count above which 1RM estimation formulas lose
// accuracy; higher inputs are rejected.
const maxReliableReps = 15

var oneRMFormulas = map[string]func(weight float64, reps int) float64{
	FormulaEpley:    func(w float64, r int) float64 { return w * (1 + float64(r)/30) },
	FormulaBrzycki:  func(w float64, r int) float64 { return w * (36 / (37 - float64(r))) },
	FormulaLander:   func(w float64, r int) float64 { return (100 * w) / (101.3 - 2.67123*float64(r)) },
	FormulaLombardi: func(w float64, r int) float64 { return w * math.Pow(float64(r), 0.10) },
	FormulaOConner:  func(w float64, r int) float64 { return w * (1 + float64(r)/40) },
}

// OneRepMaxResult is the outcome of a 1RM estimation.
// @Description Estimated one-rep max with derived training loads.
type OneRepMaxResult struct {
	Estimated1RM        float64            `json:"estimated_1rm" example:"116.7"`
	WeightUsed          float64            `json:"weight_used" example:"100"`
	RepsCompleted       int                `json:"reps_completed" example:"5"`
	Unit                string             `json:"unit" example:"kg"`
	FormulaUsed         string             `json:"formula_used" example:"epley"`
	TrainingPercentages map[string]float64 `json:"training_percentages"`
	RepMaxes            map[string]float64 `json:"rep_maxes"`
}

// OneRepMax estimates the one-rep max from a submaximal set.
//
// A single-rep set is taken as the actual max. "average" averages all five
// formulas. Rep counts above maxReliableReps are rejected rather than
// producing a misleading estimate.
func OneRepMax(weight float64, reps int, formula, unit string) (*OneRepMaxResult, error) {
	if weight <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive", domain.ErrInvalidInput)
	}
	if reps < 1 {
		return nil, fmt.Errorf("%w: reps must be at least 1", domain.ErrInvalidInput)
	}
	if reps > maxReliableReps {
		return nil, fmt.Errorf("%w: one-rep max estimates are unreliable above %d reps", domain.ErrInvalidInput, maxReliableReps)
	}
	if unit == "" {
		unit = "kg"
	}

	var estimated float64
	formulaUsed := strings.ToLower(strings.TrimSpace(formula))
	switch {
	case reps == 1:
		estimated = weight
		formulaUsed = "actual"
	case formulaUsed == "" || formulaUsed == FormulaEpley:
		estimated = oneRMFormulas[FormulaEpley](weight, reps)
		formulaUsed = FormulaEpley
	case formulaUsed == FormulaAverage:
		var sum float64
		for _, f := range oneRMFormulas {
			sum += f(weight, reps)
		}
		estimated = sum / float64(len(oneRMFormulas))
		formulaUsed = "average_all"
	default:
		f, ok := oneRMFormulas[formulaUsed]
		if !ok {
			return nil, fmt.Errorf("%w: unknown formula %q", domain.ErrInvalidInput, formula)
		}
		estimated = f(weight, reps)
	}
	estimated = round1(estimated)

	percentages := make(map[string]float64, 9)
	for pct := 100; pct >= 60; pct -= 5 {
		percentages[fmt.Sprintf("%d%%", pct)] = round1(estimated * float64(pct) / 100)
	}

	// Rep maxes come from the reverse Epley formula.
	repMaxes := make(map[string]float64, 7)
	for _, target := range []int{1, 3, 5, 8, 10, 12, 15} {
		if target == 1 {
			repMaxes["1RM"] = estimated
			continue
		}
		repMaxes[fmt.Sprintf("%dRM", target)] = round1(estimated / (1 + float64(target)/30))
	}

	return &OneRepMaxResult{
		Estimated1RM:        estimated,
		WeightUsed:          weight,
		RepsCompleted:       reps,
		Unit:                unit,
		FormulaUsed:         formulaUsed,
		TrainingPercentages: percentages,
		RepMaxes:            repMaxes,
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
