// ABOUTME: HTTP client for the RIMKI backend API
// ABOUTME: Attaches the bearer token and maps 401s to ErrUnauthorized

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// ErrUnauthorized is returned when the server rejects the bearer token.
// Callers should clear the cached session and ask the user to log in again.
var ErrUnauthorized = errors.New("unauthorized")

// Client is the API client for the RIMKI backend
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithToken returns the client configured to send the bearer token
func (c *Client) WithToken(token string) *Client {
	c.token = token
	return c
}

// UserProfile represents a user profile in API responses
type UserProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// LoginResponse represents the /api/auth/login response
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserProfile `json:"user"`
}

// ChatResponse represents the /api/chat/message response
type ChatResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// DocumentSummary represents an uploaded document in API responses
type DocumentSummary struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	Size       int64  `json:"size"`
	UploadedAt string `json:"uploadedAt"`
}

// UploadResponse represents the /api/quiz/upload response
type UploadResponse struct {
	Message  string          `json:"message"`
	Document DocumentSummary `json:"document"`
}

// QuizSummary represents a quiz in API responses
type QuizSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Link      string `json:"link"`
	CreatedAt string `json:"createdAt"`
}

// CreateQuizResponse represents the /api/quiz/create response
type CreateQuizResponse struct {
	Message string      `json:"message"`
	Quiz    QuizSummary `json:"quiz"`
}

// QuizListResponse represents the /api/quiz/list response
type QuizListResponse struct {
	Quizzes []QuizSummary `json:"quizzes"`
}

// HealthResponse represents the /api/health response
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Chat    string `json:"chat"`
	Store   string `json:"store"`
}

// errorResponse represents an API error body
type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// Login authenticates and returns the issued token with the user profile.
// A 401 here means bad credentials, not an expired session, so it is
// reported as a plain error rather than ErrUnauthorized.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var loginResp LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return nil, fmt.Errorf("failed to parse login response: %w", err)
	}
	return &loginResp, nil
}

// Profile calls GET /api/auth/profile
func (c *Client) Profile(ctx context.Context) (*UserProfile, error) {
	var profile UserProfile
	if err := c.getJSON(ctx, "/api/auth/profile", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SendMessage calls POST /api/chat/message
func (c *Client) SendMessage(ctx context.Context, message string) (*ChatResponse, error) {
	var chatResp ChatResponse
	if err := c.postJSON(ctx, "/api/chat/message", map[string]string{"message": message}, &chatResp); err != nil {
		return nil, err
	}
	return &chatResp, nil
}

// CreateQuiz calls POST /api/quiz/create
func (c *Client) CreateQuiz(ctx context.Context, title string) (*CreateQuizResponse, error) {
	var createResp CreateQuizResponse
	if err := c.postJSON(ctx, "/api/quiz/create", map[string]interface{}{"title": title}, &createResp); err != nil {
		return nil, err
	}
	return &createResp, nil
}

// ListQuizzes calls GET /api/quiz/list
func (c *Client) ListQuizzes(ctx context.Context) (*QuizListResponse, error) {
	var listResp QuizListResponse
	if err := c.getJSON(ctx, "/api/quiz/list", &listResp); err != nil {
		return nil, err
	}
	return &listResp, nil
}

// Health calls GET /api/health
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var healthResp HealthResponse
	if err := c.getJSON(ctx, "/api/health", &healthResp); err != nil {
		return nil, err
	}
	return &healthResp, nil
}

// UploadDocument posts the file at path as multipart form data
func (c *Client) UploadDocument(ctx context.Context, path string) (*UploadResponse, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("document", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/quiz/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var uploadResp UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return nil, fmt.Errorf("failed to parse upload response: %w", err)
	}
	return &uploadResp, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setAuth(req)
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuth(req)
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (c *Client) setAuth(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// apiError extracts the error message from a non-200 response
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("%s (status %d)", errResp.Error, resp.StatusCode)
	}
	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
}
