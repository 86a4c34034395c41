package analyzer

import "fmt"

// Primary guidance strings; exactly one is always emitted, first match wins.
const (
	recCriticalRest  = "🔴 CRITICAL: Full rest or active recovery only."
	recVeryHighRisk  = "⚠️ Overtraining risk very high → 48h rest recommended."
	recPeakReadiness = "🟢 PEAK READINESS → Perfect day for a hard session!"
	recModerateRisk  = "🟡 Moderate risk → Stick to Zone 2 cardio or technique work."
	recGoodToTrain   = "🟢 Good to train → Push intensity, but listen to your body."
	recLightTraining = "🟡 Light training day → Focus on movement quality."
)

// GenerateRecommendations produces the ordered recommendation list for an
// analysis snapshot. The first entry is always one of six mutually exclusive
// primary-guidance strings, so the list is never empty. After it, at most one
// sleep-tier, one fatigue-tier and one consistency-tier message are appended,
// each independent of the others.
func GenerateRecommendations(readiness int, risk float64, avgSleep, avgFatigue *float64, consistencyPct int) []string {
	recs := []string{primaryGuidance(readiness, risk, consistencyPct)}

	if avgSleep != nil {
		switch s := *avgSleep; {
		case s < 6.0:
			recs = append(recs, fmt.Sprintf("🚨 Sleep critical: %.1fh average → Prioritize 8+ hours tonight.", s))
		case s < 7.0:
			recs = append(recs, fmt.Sprintf("😴 Sleep alert: %.1fh average → Try going to bed earlier.", s))
		case s >= 8.0:
			recs = append(recs, "💤 Excellent sleep habits!")
		}
	}

	if avgFatigue != nil {
		switch f := *avgFatigue; {
		case f >= 8:
			recs = append(recs, "😰 Fatigue critically high → Consider a deload week.")
		case f >= 7:
			recs = append(recs, "😓 Fatigue elevated → Schedule a deload day soon.")
		case f <= 3:
			recs = append(recs, "⚡ Low fatigue → You have capacity for harder training.")
		}
	}

	// The 60-75% band is deliberately silent.
	switch {
	case consistencyPct >= 90:
		recs = append(recs, "🏆 Elite consistency! You're in the top tier.")
	case consistencyPct >= 75:
		recs = append(recs, "📈 Strong consistency → One more good week reaches elite.")
	case consistencyPct >= 60:
	case consistencyPct >= 30:
		recs = append(recs, "📊 Consistency building → Protect your scheduled sessions.")
	default:
		recs = append(recs, "📅 Start with 2-3 workouts/week to build the habit.")
	}

	return recs
}

func primaryGuidance(readiness int, risk float64, consistencyPct int) string {
	switch {
	case readiness < 45:
		return recCriticalRest
	case risk > 0.85:
		return recVeryHighRisk
	case readiness >= 88 && consistencyPct >= 80:
		return recPeakReadiness
	case risk > 0.6:
		return recModerateRisk
	case readiness >= 75:
		return recGoodToTrain
	default:
		return recLightTraining
	}
}
