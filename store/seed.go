// ABOUTME: Bootstrap seeding for the credential store
// ABOUTME: Creates the initial account when the user table is empty

package store

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/rimki/rimki/models"
)

// Seed inserts the bootstrap account unless a user with the same username
// already exists. The account id is stable ("1") so demo tokens survive
// restarts of the in-memory store.
func Seed(ctx context.Context, s Store, username, password, email string) error {
	users := s.Users()

	if _, err := users.FindByUsername(ctx, username); err == nil {
		return nil
	} else if err != ErrNotFound {
		return fmt.Errorf("check seed user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	user := &models.User{
		ID:           "1",
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
	}
	if err := users.Insert(ctx, user); err != nil {
		return fmt.Errorf("insert seed user: %w", err)
	}

	slog.Info("Seeded bootstrap account", "username", username)
	return nil
}
