package analyzer

import "testing"

func TestReadinessScore(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name           string
		risk           float64
		avgSleep       *float64
		avgFatigue     *float64
		consistencyPct int
		wantScore      int
		wantLabel      string
		wantEmoji      string
	}{
		{
			name:      "baseline with no signals",
			wantScore: 100,
			wantLabel: "PEAK",
			wantEmoji: "🟢",
		},
		{
			name:      "risk alone",
			risk:      0.5,
			wantScore: 70,
			wantLabel: "MODERATE",
			wantEmoji: "🟡",
		},
		{
			name:      "sleep deficit of one hour",
			avgSleep:  f64(6.5),
			wantScore: 90,
			wantLabel: "PEAK",
			wantEmoji: "🟢",
		},
		{
			name:      "sleep surplus does not add",
			avgSleep:  f64(9),
			wantScore: 100,
			wantLabel: "PEAK",
			wantEmoji: "🟢",
		},
		{
			name:       "fatigue excess above threshold",
			avgFatigue: f64(6),
			wantScore:  82,
			wantLabel:  "STRONG",
			wantEmoji:  "🟢",
		},
		{
			name:           "consistency bonus clamps at ceiling",
			consistencyPct: 100,
			wantScore:      100,
			wantLabel:      "PEAK",
			wantEmoji:      "🟢",
		},
		{
			name:           "fractional result truncates toward zero",
			risk:           0.5,
			consistencyPct: 33,
			wantScore:      79, // 100 - 30 + 9.9 = 79.9
			wantLabel:      "STRONG",
			wantEmoji:      "🟢",
		},
		{
			name:       "worst case clamps at floor",
			risk:       1.0,
			avgSleep:   f64(5),
			avgFatigue: f64(10),
			wantScore:  MinReadiness,
			wantLabel:  "REST NOW",
			wantEmoji:  "🔴",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, label, emoji := ReadinessScore(tt.risk, tt.avgSleep, tt.avgFatigue, tt.consistencyPct, cfg)
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
			if label != tt.wantLabel {
				t.Errorf("label = %q, want %q", label, tt.wantLabel)
			}
			if emoji != tt.wantEmoji {
				t.Errorf("emoji = %q, want %q", emoji, tt.wantEmoji)
			}
		})
	}
}

func TestReadinessScoreMonotonicInRisk(t *testing.T) {
	cfg := DefaultConfig()
	sleep := 7.0
	fatigue := 5.0

	prev := MaxReadiness + 1
	for risk := 0.0; risk <= 1.0; risk += 0.05 {
		score, _, _ := ReadinessScore(risk, &sleep, &fatigue, 50, cfg)
		if score > prev {
			t.Fatalf("score increased from %d to %d as risk rose to %v", prev, score, risk)
		}
		if score < MinReadiness || score > MaxReadiness {
			t.Fatalf("score %d out of bounds at risk %v", score, risk)
		}
		prev = score
	}
}

func TestReadinessLevelBoundaries(t *testing.T) {
	tests := []struct {
		score     int
		wantLabel string
	}{
		{100, "PEAK"},
		{90, "PEAK"},
		{89, "STRONG"},
		{75, "STRONG"},
		{74, "MODERATE"},
		{60, "MODERATE"},
		{59, "RECOVER"},
		{40, "RECOVER"},
		{39, "REST NOW"},
		{5, "REST NOW"},
	}

	for _, tt := range tests {
		if label, _ := ReadinessLevel(tt.score); label != tt.wantLabel {
			t.Errorf("ReadinessLevel(%d) = %q, want %q", tt.score, label, tt.wantLabel)
		}
	}
}

func TestMotivationalQuote(t *testing.T) {
	for _, score := range []int{5, 39, 40, 59, 60, 74, 75, 89, 90, 100} {
		if MotivationalQuote(score) == "" {
			t.Errorf("no quote for score %d", score)
		}
	}
	if MotivationalQuote(95) == MotivationalQuote(45) {
		t.Error("expected different quotes across bands")
	}
}
