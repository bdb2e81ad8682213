package transport_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mduval/wedding-rsvp/transport"
	"github.com/rs/cors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORSOptionsCredentials(t *testing.T) {
	tests := []struct {
		name            string
		origins         []string
		wantCredentials bool
	}{
		{name: "wildcard stays uncredentialed", origins: []string{"*"}, wantCredentials: false},
		{name: "explicit origin gets credentials", origins: []string{"https://rsvp.example.com"}, wantCredentials: true},
		{name: "wildcard among explicit origins disables credentials", origins: []string{"https://rsvp.example.com", "*"}, wantCredentials: false},
		{name: "no origins", origins: nil, wantCredentials: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := transport.CORSOptions(tt.origins)
			assert.Equal(t, tt.origins, opts.AllowedOrigins)
			assert.Equal(t, tt.wantCredentials, opts.AllowCredentials)
		})
	}
}

// A configured frontend origin must be echoed back with credentials
// allowed, otherwise the browser drops the session cookie on admin calls.
func TestCORSEchoesConfiguredOriginWithCredentials(t *testing.T) {
	const origin = "https://rsvp.example.com"

	handler := cors.New(transport.CORSOptions([]string{origin})).Handler(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/rsvps", nil)
	req.Header.Set("Origin", origin)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, origin, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}
