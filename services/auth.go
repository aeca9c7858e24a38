// ABOUTME: Credential validation and token issuing for the login endpoint
// ABOUTME: Collapses unknown-user and wrong-password into one failure

package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rimki/rimki/models"
	"github.com/rimki/rimki/store"
)

// ErrInvalidCredentials is returned for unknown usernames and wrong passwords
// alike, so responses never reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash is compared against when the username is unknown, keeping the
// bcrypt work (and therefore response timing) the same on both paths.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService validates credentials and mints bearer tokens
type AuthService struct {
	users        store.UserRepository
	tokens       *TokenService
	demoPassword string // accepted for any account when non-empty (demo mode)
}

// NewAuthService creates an auth service. demoPassword should be "" outside
// demo deployments; when set, it is accepted for every account regardless of
// the stored hash.
func NewAuthService(users store.UserRepository, tokens *TokenService, demoPassword string) *AuthService {
	return &AuthService{
		users:        users,
		tokens:       tokens,
		demoPassword: demoPassword,
	}
}

// Login validates the username/password pair and returns the user with a
// freshly minted token. Fails with ErrInvalidCredentials on any mismatch.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err == store.ErrNotFound {
		// Burn the same bcrypt cost as the known-user path
		bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}

	hashErr := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if hashErr != nil && !s.demoPasswordMatches(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

func (s *AuthService) demoPasswordMatches(password string) bool {
	if s.demoPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.demoPassword)) == 1
}
