package analyzer

// Config holds the tunable weights and thresholds of the readiness engine.
// It is passed by value into each computation and never mutated; callers that
// want different weights build a new value from DefaultConfig.
type Config struct {
	// DefaultWindowDays is the analysis window when the caller passes none.
	DefaultWindowDays int
	// MinSamplesForAverages gates the sleep/fatigue averages.
	MinSamplesForAverages int
	// TargetWorkoutsPerWeek is the session count a week needs to count as good.
	TargetWorkoutsPerWeek int
	// OptimalSleepHours is the sleep baseline; hours below it are penalized.
	OptimalSleepHours float64
	// FatigueWarningThreshold is the fatigue baseline; points above it are
	// penalized.
	FatigueWarningThreshold float64
	// RiskWeight scales the overtraining-risk penalty.
	RiskWeight float64
	// SleepWeight is the penalty per hour of sleep deficit.
	SleepWeight float64
	// FatigueWeight is the penalty per point of fatigue excess.
	FatigueWeight float64
	// ConsistencyBonus is the maximum bonus for perfect weekly consistency.
	ConsistencyBonus float64
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		DefaultWindowDays:       28,
		MinSamplesForAverages:   4,
		TargetWorkoutsPerWeek:   3,
		OptimalSleepHours:       7.5,
		FatigueWarningThreshold: 4,
		RiskWeight:              60,
		SleepWeight:             10,
		FatigueWeight:           9,
		ConsistencyBonus:        30,
	}
}
