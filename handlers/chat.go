// ABOUTME: Chat message handler
// ABOUTME: Returns the assistant's reply with a server-side timestamp

package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rimki/rimki/models"
)

// ChatMessage answers a chat message from the authenticated user
func (h *Handler) ChatMessage(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Message == "" {
		writeError(w, "Message is required", http.StatusBadRequest)
		return
	}

	reply := h.chat.Reply(r.Context(), req.Message)

	h.writeJSON(w, http.StatusOK, models.ChatResponse{
		Message:   reply,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
