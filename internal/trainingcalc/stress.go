package trainingcalc

import (
	"fmt"
	"strings"

	"github.com/fitforge/fitforge-api/internal/domain"
)

// typicalWeeklyTSS is the weekly stress budget of a moderately trained
// athlete, used to express a single session as a share of the week.
const typicalWeeklyTSS = 450

var intensityFactors = map[string]float64{
	"easy":      0.6,
	"moderate":  0.75,
	"hard":      0.88,
	"very_hard": 1.0,
}

// TrainingStressResult quantifies the load of one session.
// @Description Training stress score with recovery guidance.
type TrainingStressResult struct {
	TSS                    float64 `json:"tss" example:"77.4"`
	Interpretation         string  `json:"tss_interpretation" example:"Moderate stress - Standard training day"`
	IntensityFactor        float64 `json:"intensity_factor" example:"0.88"`
	DurationMinutes        float64 `json:"duration_minutes" example:"60"`
	ActivityType           string  `json:"activity_type" example:"running_moderate"`
	METValue               float64 `json:"met_value" example:"10"`
	RecoveryRecommendation string  `json:"recovery_recommendation" example:"24-36 hours recommended"`
	WeeklyLimitPercent     float64 `json:"weekly_limit_percent" example:"17.2"`
}

// TrainingStress computes a training stress score from duration and perceived
// intensity: hours * IF^2 * 100, with strength work discounted to a 60 base
// because its systemic load is lower. When both average and max heart rate
// are supplied, the HR ratio (scaled by 1.1) replaces the perceived intensity
// factor.
func TrainingStress(durationMinutes float64, intensity, activityType string, heartRateAvg, heartRateMax *int) (*TrainingStressResult, error) {
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

	factor, ok := intensityFactors[strings.ToLower(strings.TrimSpace(intensity))]
	if !ok {
		factor = intensityFactors["moderate"]
	}

	hours := durationMinutes / 60
	base := 100.0
	if strings.Contains(activityType, "strength") {
		base = 60.0
	}
	tss := hours * factor * factor * base

	if heartRateAvg != nil && heartRateMax != nil && *heartRateMax > 0 {
		hrFactor := float64(*heartRateAvg) / float64(*heartRateMax) * 1.1
		tss = hours * hrFactor * hrFactor * 100
		factor = hrFactor
	}
	tss = round1(tss)

	var interpretation, recovery string
	switch {
	case tss < 50:
		interpretation = "Low stress - Easy recovery workout"
		recovery = "Few hours to next day"
	case tss < 100:
		interpretation = "Moderate stress - Standard training day"
		recovery = "24-36 hours recommended"
	case tss < 150:
		interpretation = "High stress - Hard training day"
		recovery = "36-48 hours recommended"
	case tss < 250:
		interpretation = "Very high stress - Key workout or race"
		recovery = "48-72 hours recommended"
	default:
		interpretation = "Extreme stress - Major event"
		recovery = "72+ hours recommended"
	}

	return &TrainingStressResult{
		TSS:                    tss,
		Interpretation:         interpretation,
		IntensityFactor:        round2(factor),
		DurationMinutes:        durationMinutes,
		ActivityType:           activityType,
		METValue:               met,
		RecoveryRecommendation: recovery,
		WeeklyLimitPercent:     round1(tss / typicalWeeklyTSS * 100),
	}, nil
}
