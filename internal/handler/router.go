package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/vigovia/itinerary-pdf/internal/middleware"
)

// RouterConfig carries the delivery settings applied around the routes.
type RouterConfig struct {
	// CORSOrigins is passed to middleware.NewCORSHandler. ["*"] allows any origin.
	CORSOrigins []string

	// MaxBodyBytes caps request bodies; larger bodies get 413.
	MaxBodyBytes int64

	// RateLimiter, when non-nil, guards POST /api/generate-pdf.
	RateLimiter *middleware.RateLimiter
}

// NewRouter builds the chi router for the whole API.
//
// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer → CORS → body cap.
// RequestID generates a unique trace ID per request.
// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP.
// SlogLogger writes one structured JSON log line per request.
// Recoverer turns panics into a JSON 500 instead of crashing.
func NewRouter(s *Server, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(s.log))
	r.Use(middleware.NewRecoverer(s.log))
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.NotFound(s.NotFound)
	r.MethodNotAllowed(s.NotFound)

	r.Get("/api/health", s.GetHealth)
	r.Get("/api/openapi.yaml", s.GetOpenAPI)

	if cfg.RateLimiter != nil {
		r.With(cfg.RateLimiter.Limit).Post("/api/generate-pdf", s.GeneratePDF)
	} else {
		r.Post("/api/generate-pdf", s.GeneratePDF)
	}

	return r
}
