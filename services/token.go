// ABOUTME: Signed bearer token issuing and verification (HS256 JWT)
// ABOUTME: Tokens are stateless; validity is signature plus expiry, nothing else

package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rimki/rimki/models"
)

// ErrInvalidToken covers every token defect: malformed, bad signature, wrong
// algorithm, expired. Callers must not distinguish between them.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT payload: subject id plus the username
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// TokenService mints and verifies bearer tokens with a shared HMAC key
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time // injectable clock for expiry tests
}

// NewTokenService creates a token service with the given signing key and lifetime
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock overrides the service clock. Test hook.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue mints a signed token for the user, expiring ttl from now
func (s *TokenService) Issue(user *models.User) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Username: user.Username,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded identity.
// Every failure collapses to ErrInvalidToken so callers respond uniformly.
func (s *TokenService) Verify(tokenString string) (*models.Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &models.Identity{
		UserID:   claims.Subject,
		Username: claims.Username,
	}, nil
}
