// ABOUTME: Bearer-token authentication gate for protected endpoints
// ABOUTME: Every token defect produces the same 401; identity goes into context

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rimki/rimki/models"
)

// TokenVerifier validates a bearer token and returns the identity it encodes
type TokenVerifier interface {
	Verify(token string) (*models.Identity, error)
}

// contextKey is a private type for context keys to avoid collisions
type contextKey string

const identityKey contextKey = "identity"

// unauthorizedMessage is the single body for every gate rejection. Absent,
// malformed, expired, and forged tokens are indistinguishable to the caller.
const unauthorizedMessage = "Unauthorized"

// Auth returns middleware that rejects requests without a valid bearer token.
// On success the decoded identity is attached to the request context for the
// remainder of that request's processing.
func Auth(verifier TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				slog.Debug("Auth rejected: no authorization header", "path", r.URL.Path)
				writeJSONError(w, unauthorizedMessage, http.StatusUnauthorized)
				return
			}

			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				slog.Debug("Auth rejected: invalid authorization format", "path", r.URL.Path)
				writeJSONError(w, unauthorizedMessage, http.StatusUnauthorized)
				return
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				slog.Debug("Auth rejected: token verification failed", "path", r.URL.Path, "error", err.Error())
				writeJSONError(w, unauthorizedMessage, http.StatusUnauthorized)
				return
			}

			slog.Debug("Auth: valid bearer token", "path", r.URL.Path, "user", identity.Username)
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next(w, r.WithContext(ctx))
		}
	}
}

// GetIdentity extracts the verified identity from the request context.
// Returns nil if the request did not pass through the auth gate.
func GetIdentity(r *http.Request) *models.Identity {
	identity, ok := r.Context().Value(identityKey).(*models.Identity)
	if !ok {
		return nil
	}
	return identity
}
