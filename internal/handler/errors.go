package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vigovia/itinerary-pdf/internal/domain"
)

// Error titles used in the "error" field of JSON error bodies.
const (
	titleInvalid    = "Invalid data"
	titleTooLarge   = "Payload Too Large"
	titleGeneration = "PDF generation failed"
	titleNotFound   = "Not Found"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NotFound answers unknown paths and unsupported methods.
func (s *Server) NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, titleNotFound, domain.ErrNotFound.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, title, message string) {
	writeJSON(w, status, ErrorResponse{Error: title, Message: message})
}

// unwrapMessage extracts the human-readable part from a wrapped service error.
// e.g. "service.ItineraryService.Generate: validation error: Trip details are required" → "Trip details are required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"service.ItineraryService.Generate: ",
		"validation error: ",
	} {
		msg = strings.TrimPrefix(msg, prefix)
	}
	return msg
}
