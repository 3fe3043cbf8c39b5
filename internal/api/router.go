package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/CavalPinarello/JetLagOptimizer-sub000/docs"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/api/handler"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler       *handler.UserHandler
	assessmentHandler *handler.AssessmentHandler
	protocolHandler   *handler.ProtocolHandler
}

func NewRouter(userHandler *handler.UserHandler, assessmentHandler *handler.AssessmentHandler, protocolHandler *handler.ProtocolHandler) *Router {
	return &Router{
		userHandler:       userHandler,
		assessmentHandler: assessmentHandler,
		protocolHandler:   protocolHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)
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

			// Assessments (nested under users)
			r.Route("/{userId}/assessments", func(r chi.Router) {
				r.Post("/", rt.assessmentHandler.Create)
				r.Get("/latest", rt.assessmentHandler.GetLatest)
			})

			// Protocols (nested under users)
			r.Route("/{userId}/protocols", func(r chi.Router) {
				r.Post("/", rt.protocolHandler.Generate)
				r.Get("/", rt.protocolHandler.List)
				r.Get("/{protocolId}", rt.protocolHandler.GetByID)
				r.Patch("/{protocolId}/days/{dayNumber}/interventions/{index}", rt.protocolHandler.UpdateInterventionStatus)
				r.Post("/{protocolId}/advice", rt.protocolHandler.Advice)
				r.Post("/{protocolId}/advice/feedback", rt.protocolHandler.AdviceFeedback)
			})
		})
	})

	return r
}
