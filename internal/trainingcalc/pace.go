package trainingcalc

import (
	"fmt"
	"math"
	"strings"

	"github.com/fitforge/fitforge-api/internal/domain"
)

// Pace and speed units. Values convert through meters per second.
const (
	UnitMinPerKm     = "min_per_km"
	UnitMinPerMi     = "min_per_mi"
	UnitKmPerH       = "km_per_h"
	UnitMiPerH       = "mi_per_h"
	UnitMetersPerSec = "m_per_s"

	metersPerMile = 1609.34
)

var paceUnitAliases = map[string]string{
	"kph": UnitKmPerH,
	"mph": UnitMiPerH,
	"mps": UnitMetersPerSec,
}

// PaceResult holds a pace/speed conversion plus the value in every unit.
// @Description Pace conversion result.
type PaceResult struct {
	OriginalValue  float64            `json:"original_value" example:"5.5"`
	OriginalUnit   string             `json:"original_unit" example:"min_per_km"`
	ConvertedValue float64            `json:"converted_value" example:"8.85"`
	TargetUnit     string             `json:"target_unit" example:"min_per_mi"`
	Formatted      string             `json:"formatted" example:"8:51 /mi"`
	AllConversions map[string]float64 `json:"all_conversions"`
}

// ConvertPace converts a running/cycling pace or speed between min/km,
// min/mile, km/h, mph and m/s. Unit aliases kph, mph and mps are accepted.
func ConvertPace(value float64, fromUnit, toUnit string) (*PaceResult, error) {
	if value <= 0 {
		return nil, fmt.Errorf("%w: pace must be positive", domain.ErrInvalidInput)
	}

	from := normalizePaceUnit(fromUnit)
	to := normalizePaceUnit(toUnit)

	metersPerSec, err := toMetersPerSec(value, from)
	if err != nil {
		return nil, err
	}
	converted, err := fromMetersPerSec(metersPerSec, to)
	if err != nil {
		return nil, err
	}

	return &PaceResult{
		OriginalValue:  value,
		OriginalUnit:   from,
		ConvertedValue: round2(converted),
		TargetUnit:     to,
		Formatted:      formatPace(converted, to),
		AllConversions: map[string]float64{
			UnitMinPerKm:     round2(1000 / (metersPerSec * 60)),
			UnitMinPerMi:     round2(metersPerMile / (metersPerSec * 60)),
			UnitKmPerH:       round2(metersPerSec * 3600 / 1000),
			UnitMiPerH:       round2(metersPerSec * 3600 / metersPerMile),
			UnitMetersPerSec: round2(metersPerSec),
		},
	}, nil
}

func normalizePaceUnit(unit string) string {
	unit = strings.ToLower(strings.TrimSpace(unit))
	if canonical, ok := paceUnitAliases[unit]; ok {
		return canonical
	}
	return unit
}

func toMetersPerSec(value float64, unit string) (float64, error) {
	switch unit {
	case UnitMinPerKm:
		return 1000 / (value * 60), nil
	case UnitMinPerMi:
		return metersPerMile / (value * 60), nil
	case UnitKmPerH:
		return value * 1000 / 3600, nil
	case UnitMiPerH:
		return value * metersPerMile / 3600, nil
	case UnitMetersPerSec:
		return value, nil
	default:
		return 0, fmt.Errorf("%w: unknown unit %q", domain.ErrInvalidInput, unit)
	}
}

func fromMetersPerSec(metersPerSec float64, unit string) (float64, error) {
	switch unit {
	case UnitMinPerKm:
		return 1000 / (metersPerSec * 60), nil
	case UnitMinPerMi:
		return metersPerMile / (metersPerSec * 60), nil
	case UnitKmPerH:
		return metersPerSec * 3600 / 1000, nil
	case UnitMiPerH:
		return metersPerSec * 3600 / metersPerMile, nil
	case UnitMetersPerSec:
		return metersPerSec, nil
	default:
		return 0, fmt.Errorf("%w: unknown unit %q", domain.ErrInvalidInput, unit)
	}
}

// formatPace renders min-per-distance values as M:SS and speeds with units.
// Seconds are rounded so 4.999 min/km reads 5:00, not 4:59.
func formatPace(value float64, unit string) string {
	switch unit {
	case UnitMinPerKm, UnitMinPerMi:
		totalSeconds := int(math.Round(value * 60))
		suffix := "/km"
		if unit == UnitMinPerMi {
			suffix = "/mi"
		}
		return fmt.Sprintf("%d:%02d %s", totalSeconds/60, totalSeconds%60, suffix)
	case UnitKmPerH:
		return fmt.Sprintf("%.1f km/h", value)
	case UnitMiPerH:
		return fmt.Sprintf("%.1f mph", value)
	default:
		return fmt.Sprintf("%.2f m/s", value)
	}
}
