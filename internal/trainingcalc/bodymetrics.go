package trainingcalc

import (
	"fmt"
	"math"
	"strings"

	"github.com/fitforge/fitforge-api/internal/domain"
)

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// WeightRange is a healthy body-weight band in kilograms.
type WeightRange struct {
	MinKg float64 `json:"min_kg" example:"56.7"`
	MaxKg float64 `json:"max_kg" example:"76.3"`
}

// MacroSuggestions is a daily macronutrient split at maintenance calories.
type MacroSuggestions struct {
	ProteinG        int `json:"protein_g" example:"135"`
	CarbsG          int `json:"carbs_g" example:"301"`
	FatG            int `json:"fat_g" example:"84"`
	ProteinCalories int `json:"protein_calories" example:"540"`
	CarbCalories    int `json:"carb_calories" example:"1204"`
	FatCalories     int `json:"fat_calories" example:"756"`
}

// BodyMetricsResult holds body composition and energy expenditure estimates.
// @Description BMI, BMR, TDEE, calorie targets and macro suggestions.
type BodyMetricsResult struct {
	BMI                float64          `json:"bmi" example:"24.5"`
	BMICategory        string           `json:"bmi_category" example:"Normal"`
	BMR                int              `json:"bmr" example:"1699"`
	TDEE               int              `json:"tdee" example:"2633"`
	ActivityLevel      string           `json:"activity_level" example:"moderate"`
	CalorieTargets     map[string]int   `json:"calorie_targets"`
	MacroSuggestions   MacroSuggestions `json:"macro_suggestions"`
	HealthyWeightRange WeightRange      `json:"healthy_weight_range"`
}

// BodyMetrics computes BMI, basal metabolic rate via the Mifflin-St Jeor
// equation, total daily energy expenditure, calorie targets for common
// weight goals, and a maintenance macro split (protein at 1.8 g/kg, fat at
// 30% of calories, carbs filling the remainder).
func BodyMetrics(weightKg, heightCm float64, age int, gender, activityLevel string) (*BodyMetricsResult, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return nil, fmt.Errorf("%w: weight, height and age must be positive", domain.ErrInvalidInput)
	}
	gender = strings.ToLower(strings.TrimSpace(gender))
	if gender != "male" && gender != "female" {
		return nil, fmt.Errorf("%w: gender must be male or female", domain.ErrInvalidInput)
	}
	if activityLevel == "" {
		activityLevel = "moderate"
	}

	heightM := heightCm / 100
	bmi := round1(weightKg / (heightM * heightM))

	var category string
	switch {
	case bmi < 18.5:
		category = "Underweight"
	case bmi < 25:
		category = "Normal"
	case bmi < 30:
		category = "Overweight"
	default:
		category = "Obese"
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age) + 5
	if gender == "female" {
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(age) - 161
	}
	bmrRounded := int(math.Round(bmr))

	multiplier, ok := activityMultipliers[strings.ToLower(activityLevel)]
	if !ok {
		multiplier = activityMultipliers["moderate"]
	}
	tdee := int(math.Round(float64(bmrRounded) * multiplier))

	targets := map[string]int{
		"aggressive_loss": tdee - 750,
		"moderate_loss":   tdee - 500,
		"mild_loss":       tdee - 250,
		"maintenance":     tdee,
		"mild_gain":       tdee + 250,
		"moderate_gain":   tdee + 500,
	}

	proteinG := int(math.Round(weightKg * 1.8))
	fatG := int(math.Round(float64(tdee) * 0.30 / 9))
	carbG := int(math.Round(float64(tdee-proteinG*4-fatG*9) / 4))

	return &BodyMetricsResult{
		BMI:            bmi,
		BMICategory:    category,
		BMR:            bmrRounded,
		TDEE:           tdee,
		ActivityLevel:  activityLevel,
		CalorieTargets: targets,
		MacroSuggestions: MacroSuggestions{
			ProteinG:        proteinG,
			CarbsG:          carbG,
			FatG:            fatG,
			ProteinCalories: proteinG * 4,
			CarbCalories:    carbG * 4,
			FatCalories:     fatG * 9,
		},
		HealthyWeightRange: WeightRange{
			MinKg: round1(18.5 * heightM * heightM),
			MaxKg: round1(24.9 * heightM * heightM),
		},
	}, nil
}
