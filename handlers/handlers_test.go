// ABOUTME: Shared test fixtures for the handlers package
// ABOUTME: Builds a handler wired to an in-memory store with a seeded admin user

package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rimki/rimki/cache"
	"github.com/rimki/rimki/config"
	"github.com/rimki/rimki/models"
	"github.com/rimki/rimki/services"
	"github.com/rimki/rimki/store"

	"golang.org/x/crypto/bcrypt"
)

// testFixture bundles the handler with the dependencies tests need to reach into.
type testFixture struct {
	handler *Handler
	store   *store.MemoryStore
	tokens  *services.TokenService
	cache   *cache.Cache
	cfg     *config.Config
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:    "test-secret",
		TokenTTL:     24 * time.Hour,
		UploadDir:    t.TempDir(),
		MaxUploadMB:  10,
		QuizLinkBase: "https://rimki-quiz.com",
	}

	s := store.NewMemoryStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := s.Users().Insert(context.Background(), &models.User{
		ID:           "1",
		Username:     "admin",
		PasswordHash: string(hash),
		Email:        "admin@rimki.com",
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	tokens := services.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	auth := services.NewAuthService(s.Users(), tokens, cfg.DemoFallbackPassword())
	chat := services.NewChatService("", "")
	c := cache.New(time.Minute)

	return &testFixture{
		handler: NewHandler(cfg, c, s, auth, chat),
		store:   s,
		tokens:  tokens,
		cache:   c,
		cfg:     cfg,
	}
}

// decodeBody unmarshals a recorder body into v, failing the test on bad JSON.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response body %q: %v", rec.Body.String(), err)
	}
}
