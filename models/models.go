// ABOUTME: Shared API response models
// ABOUTME: Defines the JSON error envelope used by handlers and middleware

package models

// ErrorResponse is the JSON body returned for failed requests
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}
