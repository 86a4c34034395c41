package domain

// CoachContext is the deterministic snapshot sent to the LLM coach.
// @Description Context data for LLM coaching insights.
type CoachContext struct {
	Analysis    AnalysisResult    `json:"analysis"`
	Streaks     StreakInfo        `json:"streaks"`
	Consistency ConsistencyReport `json:"consistency"`
}

// CoachInsights contains the structured output from the LLM coach.
// @Description LLM-generated coaching insights.
type CoachInsights struct {
	// Summary of recent training (2-3 sentences)
	Summary string `json:"summary"`
	// Observations about training patterns (3-6 items)
	Observations []string `json:"observations"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance"`
}

// CoachInsightsResponse is the response for the coach insights endpoint.
// @Description Coaching insights with the analysis they were derived from.
type CoachInsightsResponse struct {
	Context  CoachContext  `json:"context"`
	Insights CoachInsights `json:"insights"`
	// Trace ID for feedback (present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty"`
}
