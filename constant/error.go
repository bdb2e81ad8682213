package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidCode
	ErrMissingIdentity
	ErrBadCredentials
	ErrServerConfig
	ErrStorage
)

// Authorization failures share one opaque message so callers cannot tell an
// expired token from a forged one.
var ErrorTypeMessage = map[ErrorType]string{
	Successful:         "success",
	ErrInternal:        "error internal",
	ErrInvalidRequest:  "invalid request",
	ErrUnauthorize:     "unauthorize request",
	ErrInvalidCode:     "invalid invite code",
	ErrMissingIdentity: "email or phone is required",
	ErrBadCredentials:  "bad credentials",
	ErrServerConfig:    "server configuration missing",
	ErrStorage:         "storage unavailable",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:         http.StatusOK,
	ErrInternal:        http.StatusInternalServerError,
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrUnauthorize:     http.StatusUnauthorized,
	ErrInvalidCode:     http.StatusUnauthorized,
	ErrMissingIdentity: http.StatusBadRequest,
	ErrBadCredentials:  http.StatusUnauthorized,
	ErrServerConfig:    http.StatusInternalServerError,
	ErrStorage:         http.StatusInternalServerError,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:         "0000",
	ErrInternal:        "0001",
	ErrInvalidRequest:  "0002",
	ErrUnauthorize:     "0003",
	ErrInvalidCode:     "0004",
	ErrMissingIdentity: "0005",
	ErrBadCredentials:  "0006",
	ErrServerConfig:    "0007",
	ErrStorage:         "0008",
}
