package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health check (no auth required)
		r.Get("/health", s.handleHealth)

		// Auth endpoints (no auth required)
		r.Post("/auth/login", s.handleLogin)

		// Spec lookups are read-only and open.
		r.Route("/specs", func(r chi.Router) {
			r.Get("/", s.handleListSpecs)
			r.Get("/search", s.handleSearchSpecs)
			r.Get("/stats", s.handleStats)
			r.Get("/categories", s.handleCategories)
			r.Get("/manufacturers", s.handleManufacturers)
			r.Get("/complete", s.handleCompleteSpecs)
			r.Get("/resolve", s.handleResolve)
			r.Get("/category/{category}", s.handleSpecsByCategory)
			r.Get("/mode/{mode}", s.handleSpecsByMode)

			// Spec IDs are <namespace>/<name>, so they span two URL segments.
			r.Route("/{namespace}/{name}", func(r chi.Router) {
				r.Get("/", s.handleGetSpec)
				r.Get("/classify", s.handleClassifySpec)
				r.Get("/plan", s.handlePlanSpec)
				r.Get("/recommendations", s.handleRecommendations)
				r.Post("/validate-config", s.handleValidateConfig)
			})
		})

		// Mutating routes require authentication.
		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			r.Post("/specs", s.handleRegisterSpec)
			r.Delete("/specs/{namespace}/{name}", s.handleDeleteSpec)
			r.Post("/discovery/run", s.handleRunDiscovery)
		})
	})

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
		"specs":   s.store.Len(),
	})
}
