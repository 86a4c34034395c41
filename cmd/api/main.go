// FitForge API
//
// REST API for workout tracking, readiness analysis and AI coaching.
//
//	@title			FitForge API
//	@version		1.0
//	@description	Log workouts, analyze training readiness and overtraining risk, generate plans, and get AI coaching insights.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			workouts
//	@tag.description	Workout logging endpoints
//
//	@tag.name			analysis
//	@tag.description	Readiness and consistency analysis endpoints
//
//	@tag.name			plans
//	@tag.description	Training plan generation endpoints
//
//	@tag.name			coach
//	@tag.description	LLM coaching endpoints
//
//	@tag.name			calculators
//	@tag.description	Stateless training calculators
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/fitforge/fitforge-api/internal/analyzer"
	"github.com/fitforge/fitforge-api/internal/api"
	"github.com/fitforge/fitforge-api/internal/api/handler"
	"github.com/fitforge/fitforge-api/internal/config"
	"github.com/fitforge/fitforge-api/internal/domain"
	"github.com/fitforge/fitforge-api/internal/langfuse"
	"github.com/fitforge/fitforge-api/internal/llm"
	"github.com/fitforge/fitforge-api/internal/repository"
	"github.com/fitforge/fitforge-api/internal/seed"
	"github.com/fitforge/fitforge-api/internal/service"
	"github.com/fitforge/fitforge-api/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op exporter when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg, "fitforge-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown error: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.WorkoutRecord{}, &domain.StoredPlan{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	planRepo := repository.NewPlanRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	analysisService := service.NewAnalysisService(workoutRepo, userRepo, analyzer.DefaultConfig())
	workoutService := service.NewWorkoutService(workoutRepo, userRepo, analysisService)
	planService := service.NewPlanService(planRepo, userRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAICoachModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, coach endpoint will be unavailable")
	} else if cfg.LangfuseCoachPrompt != "" {
		prompt, err := langfuse.LoadPrompt(context.Background(), langfuse.PromptConfig{
			BaseURL:   cfg.LangfuseBaseURL,
			PublicKey: cfg.LangfusePublicKey,
			SecretKey: cfg.LangfuseSecretKey,
			Name:      cfg.LangfuseCoachPrompt,
			Label:     "production",
		})
		if err != nil {
			log.Printf("Falling back to built-in coach prompt: %v", err)
		} else {
			openaiClient.SetSystemPrompt(prompt)
			log.Printf("Loaded coach prompt %q from Langfuse", cfg.LangfuseCoachPrompt)
		}
	}

	coachService := service.NewCoachService(analysisService, openaiClient, userRepo)

	// Initialize Langfuse client for feedback scores
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	workoutHandler := handler.NewWorkoutHandler(workoutService)
	analysisHandler := handler.NewAnalysisHandler(analysisService)
	planHandler := handler.NewPlanHandler(planService)
	coachHandler := handler.NewCoachHandler(coachService, langfuseClient)
	calculatorHandler := handler.NewCalculatorHandler()

	// Setup router
	router := api.NewRouter(userHandler, workoutHandler, analysisHandler, planHandler, coachHandler, calculatorHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
