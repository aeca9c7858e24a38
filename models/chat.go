// ABOUTME: Chat message request/response models
// ABOUTME: Mirrors the assistant API wire format

package models

// ChatRequest is a message sent to the assistant
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the assistant's reply
type ChatResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"` // RFC3339
}
