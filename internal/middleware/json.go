package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody mirrors the JSON error envelope written by the handler package.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// writeError writes a JSON error envelope with the given status.
// Middleware short-circuits before any handler runs, so it cannot reuse the
// handler package's helpers without an import cycle.
func writeError(w http.ResponseWriter, status int, title, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: title, Message: message})
}
