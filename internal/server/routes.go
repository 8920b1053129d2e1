package server

import (
	"log/slog"
	"net/http"
)

// Config contains server configuration options.
type Config struct {
	// AllowedOrigins is the list of allowed CORS origins.
	AllowedOrigins []string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		AllowedOrigins: []string{"*"},
	}
}

// NewRouter creates a new HTTP router with all routes configured.
// It uses Go 1.22+ ServeMux with method-based routing.
func NewRouter(h *Handlers, logger *slog.Logger, cfg Config) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("GET /api/joboffers", h.ListJobOffers)
	mux.HandleFunc("GET /api/joboffers/{id}", h.GetJobOffer)
	mux.HandleFunc("POST /api/joboffers", h.CreateJobOffer)
	mux.HandleFunc("PUT /api/joboffers/{id}", h.UpdateJobOffer)
	mux.HandleFunc("DELETE /api/joboffers/{id}", h.DeleteJobOffer)
	mux.HandleFunc("GET /api/joboffers/{id}/applications", h.ListOfferApplications)

	mux.HandleFunc("GET /api/jobapplications", h.ListJobApplications)
	mux.HandleFunc("GET /api/jobapplications/{id}", h.GetJobApplication)
	mux.HandleFunc("POST /api/jobapplications", h.CreateJobApplication)
	mux.HandleFunc("DELETE /api/jobapplications/{id}", h.DeleteJobApplication)

	// Apply middleware chain
	chain := ChainMiddleware(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(cfg.AllowedOrigins),
	)

	return chain(mux)
}
