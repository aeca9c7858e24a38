// ABOUTME: Tests for the backend API client
// ABOUTME: Uses httptest servers to verify auth headers and error mapping

package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" || r.Method != http.MethodPost {
			t.Errorf("request = %s %s, want POST /api/auth/login", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Login successful","token":"tok-123","user":{"id":"1","username":"admin"}}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token != "tok-123" {
		t.Errorf("token = %q, want tok-123", resp.Token)
	}
	if resp.User.Username != "admin" {
		t.Errorf("user.username = %q, want admin", resp.User.Username)
	}
}

func TestClient_Login_BadCredentialsIsPlainError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid credentials","code":401}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Login(context.Background(), "admin", "wrong")
	if err == nil {
		t.Fatal("Login returned nil error on 401")
	}
	// Bad credentials are not a stale session: the caller must not clear it.
	if errors.Is(err, ErrUnauthorized) {
		t.Error("Login 401 mapped to ErrUnauthorized, want plain error")
	}
	if !strings.Contains(err.Error(), "Invalid credentials") {
		t.Errorf("error = %q, want the server message", err)
	}
}

func TestClient_Profile_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q, want Bearer tok-123", got)
		}
		w.Write([]byte(`{"id":"1","username":"admin","email":"admin@rimki.com"}`))
	}))
	defer srv.Close()

	profile, err := New(srv.URL).WithToken("tok-123").Profile(context.Background())
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile.Username != "admin" {
		t.Errorf("username = %q, want admin", profile.Username)
	}
}

func TestClient_Profile_401IsErrUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Unauthorized","code":401}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).WithToken("stale").Profile(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestClient_SendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat/message" {
			t.Errorf("path = %q, want /api/chat/message", r.URL.Path)
		}
		w.Write([]byte(`{"message":"A canned answer","timestamp":"2026-08-30T10:00:00Z"}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).WithToken("tok").SendMessage(context.Background(), "Bonjour")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if resp.Message != "A canned answer" {
		t.Errorf("message = %q, want the server reply", resp.Message)
	}
}

func TestClient_UploadDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("document")
		if err != nil {
			t.Errorf("FormFile: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		if header.Filename != "notes.txt" {
			t.Errorf("filename = %q, want notes.txt", header.Filename)
		}
		w.Write([]byte(`{"message":"Document uploaded successfully","document":{"id":"d-1","filename":"notes.txt","size":5}}`))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	resp, err := New(srv.URL).WithToken("tok").UploadDocument(context.Background(), path)
	if err != nil {
		t.Fatalf("UploadDocument: %v", err)
	}
	if resp.Document.Filename != "notes.txt" {
		t.Errorf("document filename = %q, want notes.txt", resp.Document.Filename)
	}
}

func TestClient_UploadDocument_MissingFile(t *testing.T) {
	if _, err := New("http://unused").UploadDocument(context.Background(), "/does/not/exist"); err == nil {
		t.Error("UploadDocument returned nil error for a missing file")
	}
}

func TestClient_ServerErrorMessageSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Quiz title is required","code":400}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).WithToken("tok").CreateQuiz(context.Background(), "")
	if err == nil {
		t.Fatal("CreateQuiz returned nil error on 400")
	}
	if !strings.Contains(err.Error(), "Quiz title is required") {
		t.Errorf("error = %q, want the server message", err)
	}
}
