package trainingcalc

import (
	"fmt"
	"math"
	"strings"

	"github.com/fitforge/fitforge-api/internal/domain"
)

// Heart-rate zone calculation methods.
const (
	MethodPercentage = "percentage"
	MethodKarvonen   = "karvonen"
)

var hrZoneBounds = []struct {
	name    string
	low     float64
	high    float64
	purpose string
}{
	{"zone1_recovery", 0.50, 0.60, "Active recovery, very easy effort. Good for recovery days."},
	{"zone2_aerobic", 0.60, 0.70, "Aerobic base building. Conversational pace, fat burning."},
	{"zone3_tempo", 0.70, 0.80, "Tempo/moderate effort. Comfortably hard, improves efficiency."},
	{"zone4_threshold", 0.80, 0.90, "Lactate threshold. Hard effort, improves speed."},
	{"zone5_vo2max", 0.90, 1.00, "VO2max/anaerobic. Maximum effort, short intervals."},
}

// HRZone is one training zone's heart-rate range.
type HRZone struct {
	Min int `json:"min" example:"126"`
	Max int `json:"max" example:"145"`
}

// HeartRateZonesResult holds the five personalized training zones.
// @Description Personalized heart-rate training zones.
type HeartRateZonesResult struct {
	MaxHR            int               `json:"max_hr" example:"190"`
	RestingHR        *int              `json:"resting_hr,omitempty" example:"60"`
	Zones            map[string]HRZone `json:"zones"`
	ZoneDescriptions map[string]string `json:"zone_descriptions"`
	MethodUsed       string            `json:"method_used" example:"karvonen"`
}

// HeartRateZones derives the five training zones from max heart rate, which
// is estimated as 220-age when not supplied. The Karvonen method scales the
// heart-rate reserve above resting HR and is used only when a resting HR is
// available; otherwise zones are plain percentages of max.
func HeartRateZones(age, maxHeartRate, restingHeartRate *int, method string) (*HeartRateZonesResult, error) {
	var maxHR int
	switch {
	case maxHeartRate != nil:
		maxHR = *maxHeartRate
	case age != nil:
		maxHR = 220 - *age
	default:
		return nil, fmt.Errorf("%w: provide either age or max_heart_rate", domain.ErrInvalidInput)
	}
	if maxHR < 100 || maxHR > 220 {
		return nil, fmt.Errorf("%w: max heart rate %d outside plausible range 100-220", domain.ErrInvalidInput, maxHR)
	}

	zones := make(map[string]HRZone, len(hrZoneBounds))
	descriptions := make(map[string]string, len(hrZoneBounds))

	methodUsed := MethodPercentage
	if strings.EqualFold(method, MethodKarvonen) && restingHeartRate != nil {
		hrr := float64(maxHR - *restingHeartRate)
		for _, z := range hrZoneBounds {
			zones[z.name] = HRZone{
				Min: int(math.Round(hrr*z.low)) + *restingHeartRate,
				Max: int(math.Round(hrr*z.high)) + *restingHeartRate,
			}
			descriptions[z.name] = z.purpose
		}
		methodUsed = MethodKarvonen
	} else {
		for _, z := range hrZoneBounds {
			zones[z.name] = HRZone{
				Min: int(math.Round(float64(maxHR) * z.low)),
				Max: int(math.Round(float64(maxHR) * z.high)),
			}
			descriptions[z.name] = z.purpose
		}
	}

	return &HeartRateZonesResult{
		MaxHR:            maxHR,
		RestingHR:        restingHeartRate,
		Zones:            zones,
		ZoneDescriptions: descriptions,
		MethodUsed:       methodUsed,
	}, nil
}
