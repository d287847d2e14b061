// Package handler implements the HTTP handlers for the itinerary PDF API.
// All handlers are methods on Server. Methods are split into files by route
// (health.go, generate.go) but share the same Server struct so they can reach
// its dependencies.
package handler

import (
	"context"
	"log/slog"

	"github.com/vigovia/itinerary-pdf/internal/domain"
)

// ItineraryServicer defines the business operation the generate handler depends on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the renderer.
type ItineraryServicer interface {
	Generate(ctx context.Context, doc *domain.Itinerary) (domain.GeneratedPDF, error)
}

// Server holds the dependencies shared by every handler.
// Wire it in main.go via NewRouter.
type Server struct {
	itineraries ItineraryServicer
	log         *slog.Logger
}

// NewServer constructs the Server. A nil logger falls back to slog.Default().
func NewServer(itineraries ItineraryServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{itineraries: itineraries, log: log}
}
