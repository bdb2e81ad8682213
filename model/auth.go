package model

// LoginRequest for admin login (cookie strategy only).
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}
