// ABOUTME: Auth request/response models for the bearer-token flow
// ABOUTME: Defines login contract and the request-scoped identity shape

package models

// LoginRequest represents credentials for authentication
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    Profile `json:"user"`
}

// Identity is the verified subject attached to a request by the auth gate.
// It lives only in the request context, never in any server-side table.
type Identity struct {
	UserID   string
	Username string
}
