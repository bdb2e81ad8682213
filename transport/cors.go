package transport

import (
	"net/http"

	"github.com/rs/cors"
)

// CORSOptions builds the cross-origin policy for the configured frontend
// origins. Browsers refuse credentialed requests under a wildcard origin,
// so "*" stays uncredentialed and the cookie strategy only works
// same-origin; listing the frontend origin explicitly turns credentials
// on and lets the session cookie travel cross-origin.
func CORSOptions(origins []string) cors.Options {
	credentials := len(origins) > 0
	for _, o := range origins {
		if o == "*" {
			credentials = false
		}
	}

	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: credentials,
	}
}
