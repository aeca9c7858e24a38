// ABOUTME: HTTP handlers for the RIMKI assistant API
// ABOUTME: Holds shared dependencies and JSON response helpers

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rimki/rimki/cache"
	"github.com/rimki/rimki/config"
	"github.com/rimki/rimki/models"
	"github.com/rimki/rimki/services"
	"github.com/rimki/rimki/store"
)

type Handler struct {
	cfg   *config.Config
	cache *cache.Cache
	store store.Store
	auth  *services.AuthService
	chat  *services.ChatService

	// quizGen is nil unless an external quiz builder is configured
	quizGen *services.QuizGenClient
}

func NewHandler(cfg *config.Config, c *cache.Cache, s store.Store, auth *services.AuthService, chat *services.ChatService) *Handler {
	h := &Handler{
		cfg:   cfg,
		cache: c,
		store: s,
		auth:  auth,
		chat:  chat,
	}

	if cfg != nil && cfg.QuizAPIConfigured() {
		h.quizGen = services.NewQuizGenClient(cfg.QuizAPIUrl, cfg.QuizAPIKey)
	}

	return h
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
