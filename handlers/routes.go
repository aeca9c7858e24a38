// ABOUTME: Declarative route table and router assembly for API endpoints
// ABOUTME: Protected routes pass through the auth gate before their handler

package handlers

import (
	"net/http"

	"github.com/rimki/rimki/middleware"
)

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method    string           // HTTP method (GET, POST, etc.)
	Path      string           // URL path (e.g., "/api/health")
	Handler   http.HandlerFunc // Handler function
	Protected bool             // Requires a valid bearer token
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health
		{Method: http.MethodGet, Path: "/api/health", Handler: h.Health},

		// Auth
		{Method: http.MethodPost, Path: "/api/auth/login", Handler: h.Login},
		{Method: http.MethodGet, Path: "/api/auth/profile", Handler: h.Profile, Protected: true},

		// Chat
		{Method: http.MethodPost, Path: "/api/chat/message", Handler: h.ChatMessage, Protected: true},

		// Quiz builder
		{Method: http.MethodPost, Path: "/api/quiz/upload", Handler: h.UploadDocument, Protected: true},
		{Method: http.MethodPost, Path: "/api/quiz/create", Handler: h.CreateQuiz, Protected: true},
		{Method: http.MethodGet, Path: "/api/quiz/list", Handler: h.ListQuizzes, Protected: true},
	}
}

// NewRouter assembles the full HTTP handler: routes, auth gate, request
// logging, CORS, and login rate limiting. loginLimiter may be nil to disable
// rate limiting.
func NewRouter(h *Handler, verifier middleware.TokenVerifier, loginLimiter *middleware.RateLimiter) http.Handler {
	mux := http.NewServeMux()
	gate := middleware.Auth(verifier)

	for _, route := range h.Routes() {
		handler := route.Handler
		if route.Protected {
			handler = gate(handler)
		}
		if route.Path == "/api/auth/login" {
			handler = middleware.Chain(handler,
				middleware.RateLimit(loginLimiter, middleware.ClientIP))
		}
		handler = middleware.Chain(handler, middleware.LogRequest, middleware.CORS)

		mux.HandleFunc(route.Method+" "+route.Path, handler)
		// Preflight requests carry no bearer token; CORS answers them
		mux.HandleFunc("OPTIONS "+route.Path, middleware.CORS(func(http.ResponseWriter, *http.Request) {}))
	}

	// Serve uploaded files (the original exposed its upload directory)
	if h.cfg != nil {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/",
			http.FileServer(http.Dir(h.cfg.UploadDir))))
	}

	return mux
}
