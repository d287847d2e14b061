package handler

import (
	"net/http"

	"github.com/vigovia/itinerary-pdf/spec"
)

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// GetHealth handles GET /api/health.
// It returns HTTP 200 with a fixed status body when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "OK", Message: "Vigovia PDF API is running"})
}

// GetOpenAPI handles GET /api/openapi.yaml by serving the embedded API description.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
