// ABOUTME: Health check endpoint
// ABOUTME: Reports service liveness and which optional backends are configured

package handlers

import "net/http"

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"status":  "OK",
		"message": "RIMKI backend API is running",
		"chat":    "stub",
		"store":   "memory",
	}

	if h.cfg != nil {
		if h.cfg.ChatConfigured() {
			resp["chat"] = "model"
		}
		if h.cfg.DBPath != "" {
			resp["store"] = "sqlite"
		}
	}

	h.writeJSON(w, http.StatusOK, resp)
}
