package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires the HTTP surface. The health handler is supplied by
// the caller since it reports process-level state.
func NewRouter(h *Handlers, health http.HandlerFunc) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "https://localhost:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	methodNotAllowed := func(w http.ResponseWriter, r *http.Request) {
		h.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/health", health)

	r.Route("/api/v1", func(r chi.Router) {
		// Set explicitly so 405s inside the group render JSON too.
		r.MethodNotAllowed(methodNotAllowed)

		r.Post("/footprint/analyze", h.AnalyzeProduct)
		r.Post("/footprint/calculate", h.CalculateFootprint)
		r.Get("/analyses", h.ListAnalyses)
	})

	return r
}
