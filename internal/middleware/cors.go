// Package middleware provides reusable HTTP middleware for the itinerary PDF API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler returns a middleware that applies CORS headers based on allowedOrigins.
// A single "*" entry allows any origin. Other entries must be full origins
// (scheme + host, no trailing slash).
// Content-Disposition and X-Itinerary-Ref are exposed so browser clients can
// read the download filename and document reference.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept"},
		ExposedHeaders: []string{"Content-Disposition", "X-Itinerary-Ref"},
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
