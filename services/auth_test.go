// ABOUTME: Tests for credential validation and token issuing
// ABOUTME: Verifies the collapsed failure mode and the demo-mode fallback

package services

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rimki/rimki/models"
	"github.com/rimki/rimki/store"
)

func newTestAuth(t *testing.T, demoPassword string) (*AuthService, *TokenService) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	st := store.NewMemoryStore()
	err = st.Users().Insert(context.Background(), &models.User{
		ID:           "1",
		Username:     "admin",
		PasswordHash: string(hash),
		Email:        "admin@rimki.com",
	})
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}

	tokens := NewTokenService([]byte("test-secret"), 24*time.Hour)
	return NewAuthService(st.Users(), tokens, demoPassword), tokens
}

func TestAuthService_ValidCredentials(t *testing.T) {
	auth, tokens := newTestAuth(t, "")

	user, token, err := auth.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.Username != "admin" {
		t.Errorf("Username = %q, want admin", user.Username)
	}

	identity, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if identity.UserID != user.ID {
		t.Errorf("token subject = %q, want %q", identity.UserID, user.ID)
	}
}

func TestAuthService_InvalidCredentials(t *testing.T) {
	auth, _ := newTestAuth(t, "")

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"unknown user", "nobody", "admin123"},
		{"unknown user and password", "nobody", "wrong"},
		{"empty password", "admin", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := auth.Login(context.Background(), tt.username, tt.password)
			if err != ErrInvalidCredentials {
				t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestAuthService_DemoFallback(t *testing.T) {
	// Demo mode on: the fallback password works even though the stored
	// hash doesn't match it
	auth, _ := newTestAuth(t, "letmein")

	if _, _, err := auth.Login(context.Background(), "admin", "letmein"); err != nil {
		t.Errorf("Login() with demo password: error = %v", err)
	}

	// The real password still works
	if _, _, err := auth.Login(context.Background(), "admin", "admin123"); err != nil {
		t.Errorf("Login() with real password: error = %v", err)
	}

	// The fallback never rescues an unknown username
	if _, _, err := auth.Login(context.Background(), "nobody", "letmein"); err != ErrInvalidCredentials {
		t.Errorf("Login() unknown user with demo password: error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_DemoFallbackDisabled(t *testing.T) {
	auth, _ := newTestAuth(t, "")

	if _, _, err := auth.Login(context.Background(), "admin", "letmein"); err != ErrInvalidCredentials {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials when demo mode is off", err)
	}
}
