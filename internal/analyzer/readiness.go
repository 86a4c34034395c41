package analyzer

import "math"

const (
	// MinReadiness is the score floor; the engine never reports below it to
	// avoid implying zero viability.
	MinReadiness = 5
	// MaxReadiness is the score ceiling.
	MaxReadiness = 100
)

// Readiness tiers, highest threshold first. REST NOW is the fallback tier;
// clamping guarantees every score lands in some tier.
var readinessLevels = []struct {
	min   int
	label string
	emoji string
}{
	{90, "PEAK", "🟢"},
	{75, "STRONG", "🟢"},
	{60, "MODERATE", "🟡"},
	{40, "RECOVER", "🟡"},
	{0, "REST NOW", "🔴"},
}

// ReadinessLevel maps a score to its tier label and emoji.
func ReadinessLevel(score int) (label, emoji string) {
	for _, tier := range readinessLevels {
		if score >= tier.min {
			return tier.label, tier.emoji
		}
	}
	return "REST NOW", "🔴"
}

// ReadinessScore combines overtraining risk, biometric averages and weekly
// consistency into a single 0-100 readiness score.
//
// Starting from 100, it subtracts risk*RiskWeight, the sleep deficit below
// OptimalSleepHours times SleepWeight, and the fatigue excess above
// FatigueWarningThreshold times FatigueWeight; it then adds the consistency
// bonus proportional to the consistency percent. The result is truncated
// toward zero and clamped to [MinReadiness, MaxReadiness].
//
// The score is non-increasing in risk for fixed sleep/fatigue/consistency.
func ReadinessScore(risk float64, avgSleep, avgFatigue *float64, consistencyPct int, cfg Config) (score int, label, emoji string) {
	readiness := 100.0

	readiness -= risk * cfg.RiskWeight

	if avgSleep != nil {
		deficit := math.Max(0, cfg.OptimalSleepHours-*avgSleep)
		readiness -= deficit * cfg.SleepWeight
	}

	if avgFatigue != nil {
		excess := math.Max(0, *avgFatigue-cfg.FatigueWarningThreshold)
		readiness -= excess * cfg.FatigueWeight
	}

	readiness += float64(consistencyPct) / 100 * cfg.ConsistencyBonus

	score = int(readiness)
	if score < MinReadiness {
		score = MinReadiness
	}
	if score > MaxReadiness {
		score = MaxReadiness
	}

	label, emoji = ReadinessLevel(score)
	return score, label, emoji
}

// Motivational quotes by readiness band [low, high).
var motivationalQuotes = []struct {
	low, high int
	quote     string
}{
	{90, 101, "You're not training — you're forging a legend. 🔥"},
	{75, 90, "Strong body, stronger mind. Keep stacking wins. 💪"},
	{60, 75, "Progress > perfection. You're still moving forward. 🚀"},
	{40, 60, "Rest is training too. The comeback is always stronger. 🌟"},
	{0, 40, "Recovery is where champions are made. Honor your body. 🧘"},
}

const defaultQuote = "Every champion was once tired. Keep going. 💫"

// MotivationalQuote picks the quote for a readiness score.
func MotivationalQuote(readiness int) string {
	for _, band := range motivationalQuotes {
		if readiness >= band.low && readiness < band.high {
			return band.quote
		}
	}
	return defaultQuote
}
