package planner

import (
	"strings"
	"testing"
	"time"

	"github.com/fitforge/fitforge-api/internal/domain"
)

var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestGeneratePlanGeneralFitness(t *testing.T) {
	plan := GeneratePlan(domain.GoalGeneralFitness, 7, monday)

	if plan.DaysPlanned != 7 || len(plan.WeeklyPlan) != 7 {
		t.Fatalf("got %d days planned / %d sessions, want 7/7", plan.DaysPlanned, len(plan.WeeklyPlan))
	}
	if plan.PlanName != "General Fitness - Week Plan" {
		t.Errorf("plan name = %q", plan.PlanName)
	}
	if !strings.HasPrefix(plan.PlanID, "tpl_") {
		t.Errorf("plan id = %q, want tpl_ prefix", plan.PlanID)
	}

	first := plan.WeeklyPlan[0]
	if first.Day != "Monday" || first.Date != "2025-03-10" || first.DayNumber != 1 {
		t.Errorf("first session = %+v", first)
	}
	if first.SessionType != "strength" || first.DurationMin != 45 {
		t.Errorf("first session = %s/%dmin, want strength/45min", first.SessionType, first.DurationMin)
	}

	if plan.Metrics.TotalDurationMin != 175 {
		t.Errorf("total duration = %d, want 175", plan.Metrics.TotalDurationMin)
	}
	if plan.Metrics.TrainingDays != 5 || plan.Metrics.RestDays != 2 {
		t.Errorf("day split = %d/%d, want 5 training / 2 rest", plan.Metrics.TrainingDays, plan.Metrics.RestDays)
	}
	if plan.Metrics.AvgSessionDuration != 35 {
		t.Errorf("avg session = %d, want 35", plan.Metrics.AvgSessionDuration)
	}
	if plan.CoachExplanation == "" || plan.Motivation == "" {
		t.Error("expected coach explanation and motivational message")
	}
}

func TestGeneratePlanPerGoal(t *testing.T) {
	tests := []struct {
		goal         domain.TrainingGoal
		wantFirst    string
		wantTraining int
		wantMaxRPE   int
		wantWarnings int
	}{
		{domain.GoalGeneralFitness, "strength", 5, 9, 1}, // HIIT day trips the RPE check
		{domain.GoalStrength, "strength", 4, 6, 0},
		{domain.GoalEndurance, "easy_run", 5, 6, 0},
		{domain.GoalFatLoss, "hiit", 5, 9, 1},
		{domain.GoalRacePrep, "easy_run", 4, 6, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			plan := GeneratePlan(tt.goal, 7, monday)
			if plan.Goal != tt.goal {
				t.Errorf("goal = %q, want %q", plan.Goal, tt.goal)
			}
			if got := plan.WeeklyPlan[0].SessionType; got != tt.wantFirst {
				t.Errorf("first session = %q, want %q", got, tt.wantFirst)
			}
			if plan.Metrics.TrainingDays != tt.wantTraining {
				t.Errorf("training days = %d, want %d", plan.Metrics.TrainingDays, tt.wantTraining)
			}
			if plan.Metrics.MaxIntensityRPE != tt.wantMaxRPE {
				t.Errorf("max rpe = %d, want %d", plan.Metrics.MaxIntensityRPE, tt.wantMaxRPE)
			}
			if len(plan.Warnings) != tt.wantWarnings {
				t.Errorf("warnings = %v, want %d", plan.Warnings, tt.wantWarnings)
			}
		})
	}
}

func TestGeneratePlanUnknownGoalFallsBack(t *testing.T) {
	plan := GeneratePlan(domain.TrainingGoal("bodybuilding"), 7, monday)
	if plan.Goal != domain.GoalGeneralFitness {
		t.Errorf("goal = %q, want general_fitness fallback", plan.Goal)
	}
}

func TestGeneratePlanRepeatsPattern(t *testing.T) {
	plan := GeneratePlan(domain.GoalStrength, 14, monday)
	if len(plan.WeeklyPlan) != 14 {
		t.Fatalf("got %d sessions, want 14", len(plan.WeeklyPlan))
	}
	for i := 0; i < 7; i++ {
		if plan.WeeklyPlan[i].SessionType != plan.WeeklyPlan[i+7].SessionType {
			t.Errorf("day %d type %q differs from day %d type %q",
				i+1, plan.WeeklyPlan[i].SessionType, i+8, plan.WeeklyPlan[i+7].SessionType)
		}
	}
	if plan.WeeklyPlan[7].Date != "2025-03-17" {
		t.Errorf("second week start = %q, want 2025-03-17", plan.WeeklyPlan[7].Date)
	}
}

func TestGeneratePlanClampsDays(t *testing.T) {
	for _, days := range []int{0, -5, 29} {
		plan := GeneratePlan(domain.GoalEndurance, days, monday)
		if plan.DaysPlanned != DefaultPlanDays {
			t.Errorf("days=%d: planned %d, want %d", days, plan.DaysPlanned, DefaultPlanDays)
		}
	}
}

func TestSafetyWarnings(t *testing.T) {
	tests := []struct {
		name    string
		metrics domain.PlanMetrics
		want    int
	}{
		{
			name:    "calm week",
			metrics: domain.PlanMetrics{TotalDurationMin: 200, TrainingDays: 4, RestDays: 3, MaxIntensityRPE: 6},
			want:    0,
		},
		{
			name:    "high intensity",
			metrics: domain.PlanMetrics{TotalDurationMin: 200, TrainingDays: 4, RestDays: 3, MaxIntensityRPE: 9},
			want:    1,
		},
		{
			name:    "no rest days and daily training",
			metrics: domain.PlanMetrics{TotalDurationMin: 300, TrainingDays: 7, RestDays: 0, MaxIntensityRPE: 6},
			want:    2,
		},
		{
			name:    "excessive volume",
			metrics: domain.PlanMetrics{TotalDurationMin: 450, TrainingDays: 5, RestDays: 2, MaxIntensityRPE: 6},
			want:    1,
		},
		{
			name:    "everything at once",
			metrics: domain.PlanMetrics{TotalDurationMin: 500, TrainingDays: 7, RestDays: 0, MaxIntensityRPE: 9},
			want:    4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafetyWarnings(tt.metrics); len(got) != tt.want {
				t.Errorf("got %d warnings %v, want %d", len(got), got, tt.want)
			}
		})
	}
}

func TestCalculateMetricsEmpty(t *testing.T) {
	m := CalculateMetrics(nil)
	if m.TotalDurationMin != 0 || m.TrainingDays != 0 || m.AvgSessionDuration != 0 {
		t.Errorf("metrics = %+v, want zeroes", m)
	}
}
