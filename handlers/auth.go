// ABOUTME: Auth handlers: login (token issuing) and profile lookup
// ABOUTME: Login never reveals whether the username or the password was wrong

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rimki/rimki/middleware"
	"github.com/rimki/rimki/models"
	"github.com/rimki/rimki/services"
	"github.com/rimki/rimki/store"
)

// Login validates credentials and returns a signed bearer token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err == services.ErrInvalidCredentials {
		slog.Warn("Authentication failed", "username", req.Username)
		writeError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		slog.Error("Login failed", "error", err)
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, models.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    user.Profile(),
	})
}

// Profile returns the authenticated user's public profile
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)
	if identity == nil {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.store.Users().FindByID(r.Context(), identity.UserID)
	if err == store.ErrNotFound {
		writeError(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("Profile lookup failed", "error", err, "user_id", identity.UserID)
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, user.Profile())
}
