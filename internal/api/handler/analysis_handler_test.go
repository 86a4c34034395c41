package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitforge/fitforge-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// newAnalysisRequest builds a GET request with the chi userId param attached.
func newAnalysisRequest(t *testing.T, path, userID string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", userID)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	return req, httptest.NewRecorder()
}

func TestAnalysisHandler_GetAnalysis(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		queryParams    string
		mockService    *MockAnalysisService
		wantStatusCode int
	}{
		{
			name:           "default window",
			userID:         userID.String(),
			mockService:    &MockAnalysisService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "explicit window",
			userID:      userID.String(),
			queryParams: "?window_days=14",
			mockService: &MockAnalysisService{
				analyzeFunc: func(ctx context.Context, uid uuid.UUID, windowDays int) (*domain.AnalysisResult, error) {
					if windowDays != 14 {
						t.Errorf("windowDays = %d, want 14", windowDays)
					}
					return &domain.AnalysisResult{Status: domain.AnalysisStatusSuccess}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "window too large",
			userID:         userID.String(),
			queryParams:    "?window_days=500",
			mockService:    &MockAnalysisService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid user ID",
			userID:         "not-a-uuid",
			mockService:    &MockAnalysisService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "user not found",
			userID: uuid.New().String(),
			mockService: &MockAnalysisService{
				analyzeFunc: func(ctx context.Context, uid uuid.UUID, windowDays int) (*domain.AnalysisResult, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAnalysisHandler(tt.mockService)
			req, rec := newAnalysisRequest(t, "/v1/users/"+tt.userID+"/analysis"+tt.queryParams, tt.userID)

			handler.GetAnalysis(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetAnalysis() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestAnalysisHandler_GetQuickStatus(t *testing.T) {
	userID := uuid.New()
	handler := NewAnalysisHandler(&MockAnalysisService{
		quickFunc: func(ctx context.Context, uid uuid.UUID) (*domain.QuickStatus, error) {
			return &domain.QuickStatus{
				Status:         "cached",
				ReadinessScore: 82,
				ReadinessLabel: "STRONG",
				CacheAgeHours:  1.5,
			}, nil
		},
	})

	req, rec := newAnalysisRequest(t, "/v1/users/"+userID.String()+"/analysis/quick", userID.String())
	handler.GetQuickStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GetQuickStatus() status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var response domain.QuickStatus
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Status != "cached" {
		t.Errorf("status = %q, want cached", response.Status)
	}
	if response.ReadinessScore != 82 {
		t.Errorf("readiness = %d, want 82", response.ReadinessScore)
	}
}

func TestAnalysisHandler_GetConsistency(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		queryParams    string
		mockService    *MockAnalysisService
		wantStatusCode int
	}{
		{
			name: "default weeks",
			mockService: &MockAnalysisService{
				consistencyFunc: func(ctx context.Context, uid uuid.UUID, weeks int) (*domain.ConsistencyReport, error) {
					if weeks != 4 {
						t.Errorf("weeks = %d, want default 4", weeks)
					}
					return &domain.ConsistencyReport{Status: domain.AnalysisStatusSuccess}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "weeks out of range",
			queryParams:    "?weeks=99",
			mockService:    &MockAnalysisService{},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAnalysisHandler(tt.mockService)
			req, rec := newAnalysisRequest(t, "/v1/users/"+userID.String()+"/analysis/consistency"+tt.queryParams, userID.String())

			handler.GetConsistency(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetConsistency() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestAnalysisHandler_GetStreaks(t *testing.T) {
	userID := uuid.New()
	handler := NewAnalysisHandler(&MockAnalysisService{})

	req, rec := newAnalysisRequest(t, "/v1/users/"+userID.String()+"/analysis/streaks", userID.String())
	handler.GetStreaks(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GetStreaks() status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var response domain.StreakInfo
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.BestStreak != 5 {
		t.Errorf("best streak = %d, want 5", response.BestStreak)
	}
}

func TestAnalysisHandler_GetRecommendations(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		queryParams    string
		wantFocus      domain.TrainingFocus
		wantStatusCode int
	}{
		{
			name:           "no focus",
			wantFocus:      domain.FocusNone,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "strength focus",
			queryParams:    "?focus=strength",
			wantFocus:      domain.FocusStrength,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "rest maps to recovery",
			queryParams:    "?focus=rest",
			wantFocus:      domain.FocusRecovery,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "unknown focus rejected",
			queryParams:    "?focus=swimming",
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockAnalysisService{
				recommendationsFunc: func(ctx context.Context, uid uuid.UUID, focus domain.TrainingFocus) (*domain.TrainingRecommendations, error) {
					if focus != tt.wantFocus {
						t.Errorf("focus = %q, want %q", focus, tt.wantFocus)
					}
					return &domain.TrainingRecommendations{Status: "success"}, nil
				},
			}
			handler := NewAnalysisHandler(mockService)
			req, rec := newAnalysisRequest(t, "/v1/users/"+userID.String()+"/recommendations"+tt.queryParams, userID.String())

			handler.GetRecommendations(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetRecommendations() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestAnalysisHandler_GetProfileStats(t *testing.T) {
	userID := uuid.New()
	handler := NewAnalysisHandler(&MockAnalysisService{
		profileStatsFunc: func(ctx context.Context, uid uuid.UUID) (*domain.ProfileStats, error) {
			return &domain.ProfileStats{
				TotalWorkouts:        42,
				TotalDurationMinutes: 1890,
				Streaks:              domain.StreakInfo{CurrentStreak: 3, BestStreak: 9},
				AvgWorkoutsPerWeek:   3.5,
			}, nil
		},
	})

	req, rec := newAnalysisRequest(t, "/v1/users/"+userID.String()+"/profile/stats", userID.String())
	handler.GetProfileStats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GetProfileStats() status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var response domain.ProfileStats
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.TotalWorkouts != 42 {
		t.Errorf("total workouts = %d, want 42", response.TotalWorkouts)
	}
}
