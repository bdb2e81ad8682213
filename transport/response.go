package transport

import (
	"encoding/json"
	"net/http"

	"github.com/mduval/wedding-rsvp/utils/errors"
)

type errorBody struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps CustomError onto its HTTP status and a structured body.
// Anything else collapses to a generic 500, internals never leak.
func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	if cerr, ok := err.(errors.CustomError); ok {
		w.WriteHeader(cerr.ErrorHTTPCode())
		_ = json.NewEncoder(w).Encode(errorBody{
			OK:      false,
			Message: cerr.Error(),
			Code:    cerr.ErrorCode(),
		})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(errorBody{OK: false, Message: "error internal"})
}
