package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/fitforge/fitforge-api/docs"
	"github.com/fitforge/fitforge-api/internal/api/handler"
	"github.com/fitforge/fitforge-api/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler       *handler.UserHandler
	workoutHandler    *handler.WorkoutHandler
	analysisHandler   *handler.AnalysisHandler
	planHandler       *handler.PlanHandler
	coachHandler      *handler.CoachHandler
	calculatorHandler *handler.CalculatorHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	workoutHandler *handler.WorkoutHandler,
	analysisHandler *handler.AnalysisHandler,
	planHandler *handler.PlanHandler,
	coachHandler *handler.CoachHandler,
	calculatorHandler *handler.CalculatorHandler,
) *Router {
	return &Router{
		userHandler:       userHandler,
		workoutHandler:    workoutHandler,
		analysisHandler:   analysisHandler,
		planHandler:       planHandler,
		coachHandler:      coachHandler,
		calculatorHandler: calculatorHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			// Workouts (nested under users)
			r.Route("/{userId}/workouts", func(r chi.Router) {
				r.Post("/", rt.workoutHandler.Create)
				r.Get("/", rt.workoutHandler.List)
			})

			// Readiness analysis
			r.Route("/{userId}/analysis", func(r chi.Router) {
				r.Get("/", rt.analysisHandler.GetAnalysis)
				r.Get("/quick", rt.analysisHandler.GetQuickStatus)
				r.Get("/consistency", rt.analysisHandler.GetConsistency)
				r.Get("/streaks", rt.analysisHandler.GetStreaks)
			})
			r.Get("/{userId}/recommendations", rt.analysisHandler.GetRecommendations)
			r.Get("/{userId}/profile/stats", rt.analysisHandler.GetProfileStats)

			// Training plan
			r.Route("/{userId}/plan", func(r chi.Router) {
				r.Post("/", rt.planHandler.Generate)
				r.Get("/", rt.planHandler.GetCurrent)
				r.Get("/today", rt.planHandler.GetToday)
			})

			// AI coach
			r.Route("/{userId}/coach/insights", func(r chi.Router) {
				r.Get("/", rt.coachHandler.GetInsights)
				r.Post("/feedback", rt.coachHandler.PostFeedback)
			})
		})

		// Stateless calculators
		r.Route("/calculators", func(r chi.Router) {
			r.Post("/one-rep-max", rt.calculatorHandler.OneRepMax)
			r.Post("/training-stress", rt.calculatorHandler.TrainingStress)
			r.Post("/calories", rt.calculatorHandler.Calories)
			r.Post("/heart-rate-zones", rt.calculatorHandler.HeartRateZones)
			r.Post("/body-metrics", rt.calculatorHandler.BodyMetrics)
			r.Post("/training-volume", rt.calculatorHandler.TrainingVolume)
			r.Post("/pace", rt.calculatorHandler.Pace)
		})
	})

	return r
}
