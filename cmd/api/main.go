// Jet Lag Optimizer API
//
// REST API for circadian jet lag adjustment planning.
//
//	@title			Jet Lag Optimizer API
//	@version		1.0
//	@description	Assess traveler chronotypes and generate day-by-day circadian adjustment protocols for trips across time zones.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	Traveler management endpoints
//
//	@tag.name			assessments
//	@tag.description	Chronotype assessment endpoints
//
//	@tag.name			protocols
//	@tag.description	Adjustment protocol endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/api"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/api/handler"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/config"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/langfuse"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/llm"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/repository"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/seed"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/service"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op unless Langfuse is configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "jetlag-optimizer-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.Assessment{}, &domain.ProtocolRecord{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Langfuse client for advice feedback scoring
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	protocolRepo := repository.NewProtocolRepository(db)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIAdviceModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, advice endpoint will be unavailable")
	} else if cfg.LangfuseAdvicePromptName != "" || cfg.LangfuseAdvicePromptFile != "" {
		prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:    cfg.LangfuseBaseURL,
			PublicKey:  cfg.LangfusePublicKey,
			SecretKey:  cfg.LangfuseSecretKey,
			PromptName: cfg.LangfuseAdvicePromptName,
			SavePath:   cfg.LangfuseAdvicePromptFile,
		})
		if err != nil {
			log.Printf("Advice prompt load failed, using built-in prompt: %v", err)
		} else {
			openaiClient = openaiClient.WithSystemPrompt(prompt)
			log.Println("Advice prompt loaded")
		}
	}
	var adviceLLM llm.AdviceLLM
	if openaiClient != nil {
		adviceLLM = openaiClient
	}

	// Initialize services
	userService := service.NewUserService(userRepo)
	assessmentService := service.NewAssessmentService(assessmentRepo, userRepo)
	protocolService := service.NewProtocolService(protocolRepo, assessmentRepo, userRepo, nil)
	adviceService := service.NewAdviceService(protocolRepo, assessmentRepo, adviceLLM)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	assessmentHandler := handler.NewAssessmentHandler(assessmentService)
	protocolHandler := handler.NewProtocolHandler(protocolService, adviceService, langfuseClient)

	// Setup router
	router := api.NewRouter(userHandler, assessmentHandler, protocolHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
