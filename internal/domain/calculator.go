package domain

// OneRepMaxRequest is the request body for the 1RM calculator.
// @Description Estimate a one-rep max from a submaximal set.
type OneRepMaxRequest struct {
	// Weight lifted
	Weight float64 `json:"weight" validate:"required,gt=0" example:"100"`
	// Reps performed with that weight (1-15)
	Reps int `json:"reps" validate:"required,min=1,max=15" example:"5"`
	// Estimation formula: epley, brzycki, lander, lombardi, oconner or average
	Formula string `json:"formula" validate:"omitempty,oneof=epley brzycki lander lombardi oconner average" example:"epley"`
	// Weight unit, echoed back in the result
	Unit string `json:"unit" validate:"omitempty,oneof=kg lbs" example:"kg"`
}

// TrainingStressRequest is the request body for the training-stress calculator.
// @Description Estimate a TSS-like training stress score for a session.
type TrainingStressRequest struct {
	// Session length in minutes
	DurationMinutes float64 `json:"duration_minutes" validate:"required,gt=0,max=1440" example:"60"`
	// Effort level: easy, moderate, hard or very_hard
	Intensity string `json:"intensity" validate:"omitempty,oneof=easy moderate hard very_hard" example:"moderate"`
	// Activity label; strength work uses a flat base score
	ActivityType string `json:"activity_type" validate:"omitempty,max=64" example:"cycling"`
	// Average heart rate during the session; overrides the intensity factor
	// when max is also given
	HeartRateAvg *int `json:"heart_rate_avg,omitempty" validate:"omitempty,min=30,max=250" example:"152"`
	// Maximum heart rate
	HeartRateMax *int `json:"heart_rate_max,omitempty" validate:"omitempty,min=30,max=250" example:"190"`
}

// CaloriesRequest is the request body for the calorie calculator.
// @Description Estimate calories burned for an activity using MET values.
type CaloriesRequest struct {
	// Body weight in kilograms
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0,max=500" example:"75"`
	// Activity length in minutes
	DurationMinutes float64 `json:"duration_minutes" validate:"required,gt=0,max=1440" example:"45"`
	// Activity label, matched against the MET table
	ActivityType string `json:"activity_type" validate:"omitempty,max=64" example:"running"`
	// Optional intensity override: easy, moderate or hard
	Intensity string `json:"intensity" validate:"omitempty,max=32" example:"moderate"`
}

// HeartRateZonesRequest is the request body for the heart-rate-zone calculator.
// @Description Compute five training zones from age or a measured max HR.
type HeartRateZonesRequest struct {
	// Age in years; used to estimate max HR when none is given
	Age *int `json:"age,omitempty" validate:"omitempty,min=10,max=120" example:"30"`
	// Measured maximum heart rate; takes precedence over the age estimate
	MaxHeartRate *int `json:"max_heart_rate,omitempty" validate:"omitempty,min=100,max=220" example:"190"`
	// Resting heart rate; enables the karvonen method
	RestingHeartRate *int `json:"resting_heart_rate,omitempty" validate:"omitempty,min=25,max=120" example:"55"`
	// Zone method: percentage or karvonen
	Method string `json:"method" validate:"omitempty,oneof=percentage karvonen" example:"karvonen"`
}

// BodyMetricsRequest is the request body for the body-metrics calculator.
// @Description Compute BMI, BMR, TDEE, calorie targets and macros.
type BodyMetricsRequest struct {
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0,max=500" example:"75"`
	HeightCm float64 `json:"height_cm" validate:"required,gt=0,max=280" example:"175"`
	Age      int     `json:"age" validate:"required,min=10,max=120" example:"30"`
	// Biological sex used by the BMR formula: male or female
	Gender string `json:"gender" validate:"required,oneof=male female" example:"male"`
	// Activity level: sedentary, light, moderate, active or very_active
	ActivityLevel string `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active" example:"moderate"`
}

// TrainingVolumeRequest is the request body for the volume calculator.
// @Description Compute total tonnage for a resistance session.
type TrainingVolumeRequest struct {
	// Sets per exercise
	Sets int `json:"sets" validate:"required,min=1,max=100" example:"4"`
	// Reps per set
	Reps int `json:"reps" validate:"required,min=1,max=100" example:"8"`
	// Working weight per rep
	Weight float64 `json:"weight" validate:"required,gt=0" example:"80"`
	// Number of exercises at this scheme
	Exercises int `json:"exercises" validate:"omitempty,min=1,max=50" example:"5"`
	// Weight unit, echoed back in the result
	Unit string `json:"unit" validate:"omitempty,oneof=kg lbs" example:"kg"`
}

// PaceRequest is the request body for the pace converter.
// @Description Convert a pace or speed between units.
type PaceRequest struct {
	// Pace or speed value in the source unit
	Value float64 `json:"value" validate:"required,gt=0" example:"5.5"`
	// Source unit: min_per_km, min_per_mi, km_per_h, mi_per_h, m_per_s (aliases kph, mph, mps)
	FromUnit string `json:"from_unit" validate:"required,max=16" example:"min_per_km"`
	// Target unit, same options as from_unit
	ToUnit string `json:"to_unit" validate:"required,max=16" example:"min_per_mi"`
}
