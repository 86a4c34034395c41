package analyzer

import (
	"testing"
	"time"

	"github.com/fitforge/fitforge-api/internal/domain"
)

func TestEstimateRisk(t *testing.T) {
	now := time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)

	hard := func(day string) domain.WorkoutRecord {
		w := workoutOn(day)
		w.Intensity = domain.IntensityHigh
		return w
	}
	tired := func(day string, fatigue float64) domain.WorkoutRecord {
		w := workoutOn(day)
		w.FatigueLevel = &fatigue
		return w
	}

	tests := []struct {
		name     string
		workouts []domain.WorkoutRecord
		want     float64
	}{
		{
			name: "empty history carries no risk",
		},
		{
			name: "moderate training on sparse days",
			workouts: []domain.WorkoutRecord{
				workoutOn("2025-03-10"),
				workoutOn("2025-03-12"),
				workoutOn("2025-03-14"),
			},
			want: 0.0,
		},
		{
			name: "three high-intensity in last seven",
			workouts: []domain.WorkoutRecord{
				hard("2025-03-01"),
				hard("2025-03-03"),
				hard("2025-03-05"),
			},
			want: 0.2,
		},
		{
			name: "five high-intensity in last seven",
			workouts: []domain.WorkoutRecord{
				hard("2025-03-01"),
				hard("2025-03-02"),
				hard("2025-03-03"),
				hard("2025-03-04"),
				hard("2025-03-05"),
			},
			want: 0.4,
		},
		{
			name: "high intensity outside positional window ignored",
			workouts: []domain.WorkoutRecord{
				hard("2025-02-01"),
				hard("2025-02-02"),
				hard("2025-02-03"),
				workoutOn("2025-03-01"),
				workoutOn("2025-03-02"),
				workoutOn("2025-03-03"),
				workoutOn("2025-03-04"),
				workoutOn("2025-03-05"),
				workoutOn("2025-03-06"),
				workoutOn("2025-03-07"),
			},
			want: 0.0,
		},
		{
			name: "six distinct days in trailing week",
			workouts: []domain.WorkoutRecord{
				workoutOn("2025-03-10"),
				workoutOn("2025-03-11"),
				workoutOn("2025-03-12"),
				workoutOn("2025-03-13"),
				workoutOn("2025-03-14"),
				workoutOn("2025-03-15"),
			},
			want: 0.15,
		},
		{
			name: "seven distinct days in trailing week",
			workouts: []domain.WorkoutRecord{
				workoutOn("2025-03-10"),
				workoutOn("2025-03-11"),
				workoutOn("2025-03-12"),
				workoutOn("2025-03-13"),
				workoutOn("2025-03-14"),
				workoutOn("2025-03-15"),
				workoutOn("2025-03-16"),
			},
			want: 0.3,
		},
		{
			name: "duplicate days counted once",
			workouts: []domain.WorkoutRecord{
				workoutOn("2025-03-14"),
				workoutOn("2025-03-14"),
				workoutOn("2025-03-15"),
				workoutOn("2025-03-15"),
				workoutOn("2025-03-16"),
				workoutOn("2025-03-16"),
			},
			want: 0.0,
		},
		{
			name: "elevated recent fatigue",
			workouts: []domain.WorkoutRecord{
				tired("2025-03-01", 6),
				tired("2025-03-03", 7),
			},
			want: 0.15,
		},
		{
			name: "severe recent fatigue",
			workouts: []domain.WorkoutRecord{
				tired("2025-03-01", 8),
				tired("2025-03-03", 9),
			},
			want: 0.3,
		},
		{
			name: "fatigue without reports adds nothing",
			workouts: []domain.WorkoutRecord{
				workoutOn("2025-03-01"),
				workoutOn("2025-03-03"),
			},
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateRisk(tt.workouts, now)
			if got != tt.want {
				t.Errorf("EstimateRisk() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEstimateRiskCapsAtOne(t *testing.T) {
	// Seven consecutive daily high-intensity workouts with severe fatigue
	// trip every factor at its maximum; the sum must still clamp to 1.0.
	now := time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)

	var workouts []domain.WorkoutRecord
	for d := 10; d <= 16; d++ {
		w := workoutOn(time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02"))
		w.Intensity = domain.IntensityHigh
		fatigue := 9.0
		w.FatigueLevel = &fatigue
		workouts = append(workouts, w)
	}

	if got := EstimateRisk(workouts, now); got != 1.0 {
		t.Errorf("EstimateRisk() = %v, want capped 1.0", got)
	}
}
