// ABOUTME: Tests for the login and profile handlers
// ABOUTME: Covers token issuing, credential rejection, and stale-subject lookups

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rimki/rimki/middleware"
	"github.com/rimki/rimki/models"
)

func TestLogin_ValidCredentials(t *testing.T) {
	f := newTestFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"admin123"}`))
	rec := httptest.NewRecorder()
	f.handler.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp models.LoginResponse
	decodeBody(t, rec, &resp)

	if resp.Message != "Login successful" {
		t.Errorf("message = %q, want %q", resp.Message, "Login successful")
	}
	if resp.Token == "" {
		t.Error("token is empty")
	}
	if resp.User.Username != "admin" {
		t.Errorf("user.username = %q, want %q", resp.User.Username, "admin")
	}
	if resp.User.Email != "admin@rimki.com" {
		t.Errorf("user.email = %q, want %q", resp.User.Email, "admin@rimki.com")
	}

	// The issued token must be accepted by the verifier it was minted with.
	identity, err := f.tokens.Verify(resp.Token)
	if err != nil {
		t.Fatalf("Verify(issued token) error: %v", err)
	}
	if identity.UserID != "1" || identity.Username != "admin" {
		t.Errorf("identity = %+v, want UserID=1 Username=admin", identity)
	}
}

func TestLogin_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantMsg  string
	}{
		{"wrong password", `{"username":"admin","password":"wrong"}`, http.StatusUnauthorized, "Invalid credentials"},
		{"unknown user", `{"username":"ghost","password":"admin123"}`, http.StatusUnauthorized, "Invalid credentials"},
		{"missing password", `{"username":"admin"}`, http.StatusBadRequest, "Username and password are required"},
		{"missing username", `{"password":"admin123"}`, http.StatusBadRequest, "Username and password are required"},
		{"malformed json", `{"username":`, http.StatusBadRequest, "Invalid request body"},
	}

	f := newTestFixture(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			f.handler.Login(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}

			var errResp models.ErrorResponse
			decodeBody(t, rec, &errResp)
			if errResp.Error != tt.wantMsg {
				t.Errorf("error = %q, want %q", errResp.Error, tt.wantMsg)
			}
		})
	}
}

func TestLogin_ResponseOmitsPasswordHash(t *testing.T) {
	f := newTestFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"admin123"}`))
	rec := httptest.NewRecorder()
	f.handler.Login(rec, req)

	if strings.Contains(rec.Body.String(), "$2a$") {
		t.Errorf("response body leaks password hash: %s", rec.Body.String())
	}
}

// profileRequest runs the profile handler behind the auth gate, the way the router wires it.
func profileRequest(f *testFixture, token string) *httptest.ResponseRecorder {
	protected := middleware.Auth(f.tokens)(f.handler.Profile)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	protected(rec, req)
	return rec
}

func TestProfile_ValidToken(t *testing.T) {
	f := newTestFixture(t)

	token, err := f.tokens.Issue(&models.User{ID: "1", Username: "admin"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	rec := profileRequest(f, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var profile models.Profile
	decodeBody(t, rec, &profile)
	if profile.ID != "1" || profile.Username != "admin" {
		t.Errorf("profile = %+v, want ID=1 Username=admin", profile)
	}
}

func TestProfile_NoToken(t *testing.T) {
	f := newTestFixture(t)

	rec := profileRequest(f, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestProfile_StaleSubject(t *testing.T) {
	f := newTestFixture(t)

	// A valid token whose subject no longer exists in the store.
	token, err := f.tokens.Issue(&models.User{ID: "999", Username: "gone"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	rec := profileRequest(f, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var errResp models.ErrorResponse
	decodeBody(t, rec, &errResp)
	if errResp.Error != "User not found" {
		t.Errorf("error = %q, want %q", errResp.Error, "User not found")
	}
}
