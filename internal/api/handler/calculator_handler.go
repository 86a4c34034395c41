package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitforge/fitforge-api/internal/api/validation"
	"github.com/fitforge/fitforge-api/internal/domain"
	"github.com/fitforge/fitforge-api/internal/trainingcalc"
	"github.com/fitforge/fitforge-api/pkg/problem"
)

// CalculatorHandler exposes the stateless training calculators.
type CalculatorHandler struct{}

// NewCalculatorHandler creates a new CalculatorHandler.
func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

// OneRepMax handles POST /v1/calculators/one-rep-max
// @Summary Estimate one-rep max
// @Description Estimate 1RM from a submaximal set using Epley, Brzycki, Lander, Lombardi or O'Conner formulas, with training percentages and rep maxes.
// @Tags calculators
// @Accept json
// @Produce json
// @Param request body domain.OneRepMaxRequest true "Set data"
// @Success 200 {object} trainingcalc.OneRepMaxResult "1RM estimate"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Router /calculators/one-rep-max [post]
func (h *CalculatorHandler) OneRepMax(w http.ResponseWriter, r *http.Request) {
	var req domain.OneRepMaxRequest
	if !decodeCalculatorRequest(w, r, &req) {
		return
	}

	result, err := trainingcalc.OneRepMax(req.Weight, req.Reps, req.Formula, req.Unit)
	if err != nil {
		writeCalculatorError(w, err)
		return
	}
	writeJSON(w, result)
}

// TrainingStress handles POST /v1/calculators/training-stress
// @Summary Estimate training stress
// @Description Compute a TSS-like stress score from duration and intensity, optionally corrected by heart-rate data.
// @Tags calculators
// @Accept json
// @Produce json
// @Param request body domain.TrainingStressRequest true "Session data"
// @Success 200 {object} trainingcalc.TrainingStressResult "Training stress score"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Router /calculators/training-stress [post]
func (h *CalculatorHandler) TrainingStress(w http.ResponseWriter, r *http.Request) {
	var req domain.TrainingStressRequest
	if !decodeCalculatorRequest(w, r, &req) {
		return
	}

	result, err := trainingcalc.TrainingStress(req.DurationMinutes, req.Intensity, req.ActivityType, req.HeartRateAvg, req.HeartRateMax)
	if err != nil {
		writeCalculatorError(w, err)
		return
	}
	writeJSON(w, result)
}

// Calories handles POST /v1/calculators/calories
// @Summary Estimate calories burned
// @Description Estimate calories for an activity using MET values, with food equivalents.
// @Tags calculators
// @Accept json
// @Produce json
// @Param request body domain.CaloriesRequest true "Activity data"
// @Success 200 {object} trainingcalc.CaloriesResult "Calorie estimate"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Router /calculators/calories [post]
func (h *CalculatorHandler) Calories(w http.ResponseWriter, r *http.Request) {
	var req domain.CaloriesRequest
	if !decodeCalculatorRequest(w, r, &req) {
		return
	}

	result, err := trainingcalc.CaloriesBurned(req.WeightKg, req.DurationMinutes, req.ActivityType, req.Intensity)
	if err != nil {
		writeCalculatorError(w, err)
		return
	}
	writeJSON(w, result)
}

// HeartRateZones handles POST /v1/calculators/heart-rate-zones
// @Summary Compute heart-rate zones
// @Description Compute five training zones from age or measured max HR, using the percentage or Karvonen method.
// @Tags calculators
// @Accept json
// @Produce json
// @Param request body domain.HeartRateZonesRequest true "Heart-rate data"
// @Success 200 {object} trainingcalc.HeartRateZonesResult "Training zones"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Router /calculators/heart-rate-zones [post]
func (h *CalculatorHandler) HeartRateZones(w http.ResponseWriter, r *http.Request) {
	var req domain.HeartRateZonesRequest
	if !decodeCalculatorRequest(w, r, &req) {
		return
	}

	result, err := trainingcalc.HeartRateZones(req.Age, req.MaxHeartRate, req.RestingHeartRate, req.Method)
	if err != nil {
		writeCalculatorError(w, err)
		return
	}
	writeJSON(w, result)
}

// BodyMetrics handles POST /v1/calculators/body-metrics
// @Summary Compute body metrics
// @Description Compute BMI, BMR (Mifflin-St Jeor), TDEE, calorie targets and macro suggestions.
// @Tags calculators
// @Accept json
// @Produce json
// @Param request body domain.BodyMetricsRequest true "Body data"
// @Success 200 {object} trainingcalc.BodyMetricsResult "Body metrics"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Router /calculators/body-metrics [post]
func (h *CalculatorHandler) BodyMetrics(w http.ResponseWriter, r *http.Request) {
	var req domain.BodyMetricsRequest
	if !decodeCalculatorRequest(w, r, &req) {
		return
	}

	result, err := trainingcalc.BodyMetrics(req.WeightKg, req.HeightCm, req.Age, req.Gender, req.ActivityLevel)
	if err != nil {
		writeCalculatorError(w, err)
		return
	}
	writeJSON(w, result)
}

// TrainingVolume handles POST /v1/calculators/training-volume
// @Summary Compute training volume
// @Description Compute total tonnage for a resistance scheme with progression suggestions.
// @Tags calculators
// @Accept json
// @Produce json
// @Param request body domain.TrainingVolumeRequest true "Volume data"
// @Success 200 {object} trainingcalc.TrainingVolumeResult "Volume summary"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Router /calculators/training-volume [post]
func (h *CalculatorHandler) TrainingVolume(w http.ResponseWriter, r *http.Request) {
	var req domain.TrainingVolumeRequest
	if !decodeCalculatorRequest(w, r, &req) {
		return
	}

	result, err := trainingcalc.TrainingVolume(req.Sets, req.Reps, req.Weight, req.Exercises, req.Unit)
	if err != nil {
		writeCalculatorError(w, err)
		return
	}
	writeJSON(w, result)
}

// Pace handles POST /v1/calculators/pace
// @Summary Convert pace or speed
// @Description Convert between min/km, min/mile, km/h, mph and m/s, with the value echoed in every unit.
// @Tags calculators
// @Accept json
// @Produce json
// @Param request body domain.PaceRequest true "Pace value and units"
// @Success 200 {object} trainingcalc.PaceResult "Converted pace"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Router /calculators/pace [post]
func (h *CalculatorHandler) Pace(w http.ResponseWriter, r *http.Request) {
	var req domain.PaceRequest
	if !decodeCalculatorRequest(w, r, &req) {
		return
	}

	result, err := trainingcalc.ConvertPace(req.Value, req.FromUnit, req.ToUnit)
	if err != nil {
		writeCalculatorError(w, err)
		return
	}
	writeJSON(w, result)
}

// decodeCalculatorRequest decodes and validates a calculator body, writing the
// problem response itself and reporting whether the handler should proceed.
func decodeCalculatorRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return false
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return false
	}
	return true
}

func writeCalculatorError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		problem.BadRequest(err.Error()).Write(w)
		return
	}
	problem.InternalError("Calculator failed").Write(w)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
