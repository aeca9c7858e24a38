// ABOUTME: Repository interfaces for users, documents, and quizzes
// ABOUTME: Lets the in-memory demo store be swapped for a persistent one

package store

import (
	"context"
	"errors"

	"github.com/rimki/rimki/models"
)

// ErrNotFound is returned when a record does not exist.
// Callers decide whether absence is an error at their level.
var ErrNotFound = errors.New("record not found")

// UserRepository is the credential store. Read-mostly: Insert exists only for
// bootstrap seeding, there is no registration flow.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
}

// DocumentRepository stores uploaded document metadata
type DocumentRepository interface {
	Insert(ctx context.Context, doc *models.Document) error
	List(ctx context.Context) ([]models.Document, error)
}

// QuizRepository stores created quizzes
type QuizRepository interface {
	Insert(ctx context.Context, quiz *models.Quiz) error
	List(ctx context.Context) ([]models.Quiz, error)
}

// Store bundles the three repositories behind one backend
type Store interface {
	Users() UserRepository
	Documents() DocumentRepository
	Quizzes() QuizRepository
	Close() error
}
