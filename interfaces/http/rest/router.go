// Package rest wires the HTTP surface: the tool invocation endpoint and
// the read-side views of the board and the dependency graph.
package rest

import (
	"net/http"

	"flowdeck/application/services"
	"flowdeck/application/tools"
	"flowdeck/infrastructure/config"
	"flowdeck/interfaces/http/rest/handlers"
	"flowdeck/interfaces/http/rest/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	registry *tools.Registry
	flows    *services.FlowService
	graphs   *services.GraphService
	cfg      *config.Config
	logger   *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	registry *tools.Registry,
	flows *services.FlowService,
	graphs *services.GraphService,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		registry: registry,
		flows:    flows,
		graphs:   graphs,
		cfg:      cfg,
		logger:   logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	router.Route("/api/agent", func(r chi.Router) {
		if rt.cfg.EnableAuth {
			r.Use(middleware.Authenticate(rt.cfg, rt.logger))
		}

		toolHandler := handlers.NewToolHandler(rt.registry, rt.logger)
		r.Post("/tool", toolHandler.Invoke)

		flowHandler := handlers.NewFlowHandler(rt.flows, rt.logger)
		r.Get("/flow", flowHandler.GetFlow)
		r.Get("/flow/view", flowHandler.GetView)

		graphHandler := handlers.NewGraphHandler(rt.graphs, rt.logger)
		r.Get("/graph", graphHandler.GetGraph)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
