// Package service contains the business logic of the itinerary PDF API.
// Services validate inputs and orchestrate the renderer; they know nothing
// about HTTP.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vigovia/itinerary-pdf/internal/domain"
)

// Renderer lays an itinerary out as PDF bytes. *render.Renderer satisfies it.
type Renderer interface {
	Render(ctx context.Context, doc *domain.Itinerary) ([]byte, error)
}

// ItineraryService turns validated itineraries into downloadable PDFs.
type ItineraryService struct {
	renderer Renderer
	log      *slog.Logger
}

// NewItineraryService constructs an ItineraryService. A nil logger falls back to slog.Default().
func NewItineraryService(r Renderer, log *slog.Logger) *ItineraryService {
	if log == nil {
		log = slog.Default()
	}
	return &ItineraryService{renderer: r, log: log}
}

// Generate validates doc and renders it.
// Returns domain.ErrValidation, without rendering, when trip details are missing.
// Returns an error wrapping domain.ErrRender when layout or output fails.
func (s *ItineraryService) Generate(ctx context.Context, doc *domain.Itinerary) (domain.GeneratedPDF, error) {
	if err := doc.Validate(); err != nil {
		return domain.GeneratedPDF{}, fmt.Errorf("service.ItineraryService.Generate: %w", err)
	}

	content, err := s.renderer.Render(ctx, doc)
	if err != nil {
		s.log.ErrorContext(ctx, "pdf generation failed",
			"destination", doc.TripDetails.Destination,
			"error", err,
		)
		return domain.GeneratedPDF{}, fmt.Errorf("service.ItineraryService.Generate: %w", err)
	}

	out := domain.GeneratedPDF{
		Content:   content,
		Filename:  doc.Filename(),
		Reference: doc.Reference(),
	}
	s.log.InfoContext(ctx, "pdf generated",
		"destination", doc.TripDetails.Destination,
		"days", len(doc.DailyItinerary),
		"bytes", len(content),
		"reference", out.Reference.String(),
	)
	return out, nil
}
