// ABOUTME: Tests for bearer token issuing and verification
// ABOUTME: Covers round-trip, expiry with a fake clock, and tampering

package services

import (
	"strings"
	"testing"
	"time"

	"github.com/rimki/rimki/models"
)

var testUser = &models.User{
	ID:       "1",
	Username: "admin",
	Email:    "admin@rimki.com",
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), 24*time.Hour)

	token, err := svc.Issue(testUser)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	identity, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if identity.UserID != testUser.ID {
		t.Errorf("UserID = %q, want %q", identity.UserID, testUser.ID)
	}
	if identity.Username != testUser.Username {
		t.Errorf("Username = %q, want %q", identity.Username, testUser.Username)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	now := time.Now()
	clock := now
	svc := NewTokenService([]byte("test-secret"), 24*time.Hour).
		WithClock(func() time.Time { return clock })

	token, err := svc.Issue(testUser)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Valid immediately after issuance
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("Verify() immediately after issue: error = %v", err)
	}

	// Still valid just before expiry
	clock = now.Add(24*time.Hour - time.Minute)
	if _, err := svc.Verify(token); err != nil {
		t.Errorf("Verify() before expiry: error = %v", err)
	}

	// Invalid once the clock passes expiry
	clock = now.Add(24*time.Hour + time.Minute)
	if _, err := svc.Verify(token); err != ErrInvalidToken {
		t.Errorf("Verify() after expiry: error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), 24*time.Hour)

	token, err := svc.Issue(testUser)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d parts, want 3", len(parts))
	}

	// Flip a character in the signature
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.Verify(tampered); err != ErrInvalidToken {
		t.Errorf("Verify(tampered) error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenService_WrongKey(t *testing.T) {
	issuer := NewTokenService([]byte("key-one"), 24*time.Hour)
	verifier := NewTokenService([]byte("key-two"), 24*time.Hour)

	token, err := issuer.Issue(testUser)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Verify(token); err != ErrInvalidToken {
		t.Errorf("Verify() with wrong key: error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), 24*time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "plaintext-token"},
		{"two parts", "header.payload"},
		{"unsigned", "eyJhbGciOiJub25lIn0.e30."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Verify(tt.token); err != ErrInvalidToken {
				t.Errorf("Verify(%q) error = %v, want ErrInvalidToken", tt.token, err)
			}
		})
	}
}
