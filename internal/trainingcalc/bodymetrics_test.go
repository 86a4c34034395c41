package trainingcalc

import (
	"errors"
	"testing"

	"github.com/fitforge/fitforge-api/internal/domain"
)

func TestBodyMetrics(t *testing.T) {
	result, err := BodyMetrics(75, 175, 30, "male", "moderate")
	if err != nil {
		t.Fatalf("BodyMetrics() error = %v", err)
	}

	if result.BMI != 24.5 {
		t.Errorf("bmi = %v, want 24.5", result.BMI)
	}
	if result.BMICategory != "Normal" {
		t.Errorf("category = %q, want Normal", result.BMICategory)
	}
	if result.BMR != 1699 {
		t.Errorf("bmr = %d, want 1699", result.BMR)
	}
	if result.TDEE != 2633 {
		t.Errorf("tdee = %d, want 2633", result.TDEE)
	}
	if got := result.CalorieTargets["moderate_loss"]; got != 2133 {
		t.Errorf("moderate loss target = %d, want 2133", got)
	}
	if got := result.CalorieTargets["maintenance"]; got != result.TDEE {
		t.Errorf("maintenance target = %d, want tdee %d", got, result.TDEE)
	}
	if result.MacroSuggestions.ProteinG != 135 {
		t.Errorf("protein = %d, want 135 (1.8 g/kg)", result.MacroSuggestions.ProteinG)
	}
	if result.HealthyWeightRange.MinKg != 56.7 || result.HealthyWeightRange.MaxKg != 76.3 {
		t.Errorf("healthy range = %+v, want 56.7-76.3", result.HealthyWeightRange)
	}
}

func TestBodyMetricsFemaleOffset(t *testing.T) {
	male, err := BodyMetrics(75, 175, 30, "male", "moderate")
	if err != nil {
		t.Fatalf("BodyMetrics() error = %v", err)
	}
	female, err := BodyMetrics(75, 175, 30, "female", "moderate")
	if err != nil {
		t.Fatalf("BodyMetrics() error = %v", err)
	}
	if male.BMR-female.BMR != 166 {
		t.Errorf("bmr gap = %d, want the 166 kcal equation offset", male.BMR-female.BMR)
	}
	if female.TDEE >= male.TDEE {
		t.Errorf("female tdee %d not below male tdee %d", female.TDEE, male.TDEE)
	}
}

func TestBodyMetricsBMICategories(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		want     string
	}{
		{"underweight", 50, "Underweight"},
		{"normal", 70, "Normal"},
		{"overweight", 80, "Overweight"},
		{"obese", 95, "Obese"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := BodyMetrics(tt.weightKg, 175, 30, "male", "moderate")
			if err != nil {
				t.Fatalf("BodyMetrics() error = %v", err)
			}
			if result.BMICategory != tt.want {
				t.Errorf("category for %vkg = %q, want %q", tt.weightKg, result.BMICategory, tt.want)
			}
		})
	}
}

func TestBodyMetricsValidation(t *testing.T) {
	if _, err := BodyMetrics(0, 175, 30, "male", "moderate"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("zero weight: error = %v, want ErrInvalidInput", err)
	}
	if _, err := BodyMetrics(75, 175, 30, "other", "moderate"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("unsupported gender: error = %v, want ErrInvalidInput", err)
	}
}
