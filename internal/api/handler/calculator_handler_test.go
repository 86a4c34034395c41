package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitforge/fitforge-api/internal/trainingcalc"
)

func TestCalculatorHandler_OneRepMax(t *testing.T) {
	handler := NewCalculatorHandler()

	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{
			name:           "valid request",
			body:           `{"weight": 100, "reps": 5}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "explicit formula",
			body:           `{"weight": 100, "reps": 5, "formula": "brzycki", "unit": "lbs"}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing weight",
			body:           `{"reps": 5}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "reps above reliable range",
			body:           `{"weight": 100, "reps": 20}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown formula",
			body:           `{"weight": 100, "reps": 5, "formula": "magic"}`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/calculators/one-rep-max", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.OneRepMax(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("OneRepMax() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestCalculatorHandler_OneRepMaxValues(t *testing.T) {
	handler := NewCalculatorHandler()

	body := `{"weight": 100, "reps": 5, "formula": "epley"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/calculators/one-rep-max", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.OneRepMax(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var result trainingcalc.OneRepMaxResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.Estimated1RM != 116.7 {
		t.Errorf("estimated 1RM = %v, want 116.7", result.Estimated1RM)
	}
}

func TestCalculatorHandler_TrainingStress(t *testing.T) {
	handler := NewCalculatorHandler()

	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{
			name:           "valid request",
			body:           `{"duration_minutes": 60, "intensity": "moderate", "activity_type": "cycling"}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "with heart rate",
			body:           `{"duration_minutes": 60, "intensity": "moderate", "heart_rate_avg": 150, "heart_rate_max": 190}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing duration",
			body:           `{"intensity": "moderate"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown intensity",
			body:           `{"duration_minutes": 60, "intensity": "brutal"}`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/calculators/training-stress", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.TrainingStress(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("TrainingStress() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestCalculatorHandler_Calories(t *testing.T) {
	handler := NewCalculatorHandler()

	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{
			name:           "valid request",
			body:           `{"weight_kg": 75, "duration_minutes": 45, "activity_type": "running"}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing weight",
			body:           `{"duration_minutes": 45}`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/calculators/calories", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Calories(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Calories() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestCalculatorHandler_HeartRateZones(t *testing.T) {
	handler := NewCalculatorHandler()

	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{
			name:           "age based",
			body:           `{"age": 30}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "karvonen",
			body:           `{"max_heart_rate": 190, "resting_heart_rate": 55, "method": "karvonen"}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "neither age nor max HR",
			body:           `{"method": "percentage"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown method",
			body:           `{"age": 30, "method": "fancy"}`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/calculators/heart-rate-zones", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.HeartRateZones(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("HeartRateZones() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestCalculatorHandler_BodyMetrics(t *testing.T) {
	handler := NewCalculatorHandler()

	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{
			name:           "valid request",
			body:           `{"weight_kg": 75, "height_cm": 175, "age": 30, "gender": "male", "activity_level": "moderate"}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing gender",
			body:           `{"weight_kg": 75, "height_cm": 175, "age": 30}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid gender",
			body:           `{"weight_kg": 75, "height_cm": 175, "age": 30, "gender": "robot"}`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/calculators/body-metrics", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.BodyMetrics(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("BodyMetrics() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestCalculatorHandler_TrainingVolume(t *testing.T) {
	handler := NewCalculatorHandler()

	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{
			name:           "valid request",
			body:           `{"sets": 4, "reps": 8, "weight": 80, "exercises": 5}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing sets",
			body:           `{"reps": 8, "weight": 80}`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/calculators/training-volume", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.TrainingVolume(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("TrainingVolume() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestCalculatorHandler_Pace(t *testing.T) {
	handler := NewCalculatorHandler()

	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{
			name:           "pace to pace",
			body:           `{"value": 5.5, "from_unit": "min_per_km", "to_unit": "min_per_mi"}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "speed aliases",
			body:           `{"value": 10, "from_unit": "mph", "to_unit": "kph"}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing value",
			body:           `{"from_unit": "min_per_km", "to_unit": "min_per_mi"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing target unit",
			body:           `{"value": 5.5, "from_unit": "min_per_km"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown unit",
			body:           `{"value": 5.5, "from_unit": "min_per_km", "to_unit": "parsec_per_h"}`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/calculators/pace", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Pace(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Pace() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestCalculatorHandler_PaceValues(t *testing.T) {
	handler := NewCalculatorHandler()

	body := `{"value": 5.5, "from_unit": "min_per_km", "to_unit": "min_per_mi"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/calculators/pace", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Pace(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var result trainingcalc.PaceResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.ConvertedValue != 8.85 {
		t.Errorf("converted = %v, want 8.85", result.ConvertedValue)
	}
	if result.Formatted != "8:51 /mi" {
		t.Errorf("formatted = %q, want %q", result.Formatted, "8:51 /mi")
	}
	if len(result.AllConversions) != 5 {
		t.Errorf("got %d conversions, want 5", len(result.AllConversions))
	}
}
