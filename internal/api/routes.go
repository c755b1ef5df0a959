// Package api wires the HTTP routes of mdchat.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ersonp/mdchat/internal/api/handlers"
	"github.com/ersonp/mdchat/internal/api/middleware"
	"github.com/ersonp/mdchat/internal/domain/ports"
)

// Deps holds what the router needs to serve requests.
type Deps struct {
	Evaluator     ports.SchemaEvaluator
	Verifier      ports.TokenVerifier
	ResolveAPIKey handlers.APIKeyResolver
	Logger        *slog.Logger
}

// NewRouter creates and configures a new chi router with all routes.
func NewRouter(d Deps) *chi.Mux {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)

	// Health check, unauthenticated.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck
	})

	evaluateHandler := handlers.NewEvaluateHandler(d.Evaluator, d.ResolveAPIKey, logger)

	r.Route("/api", func(r chi.Router) {
		r.Options("/evaluate", middleware.Preflight)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(d.Verifier))
			r.Post("/evaluate", evaluateHandler.Evaluate)
		})
	})

	return r
}
