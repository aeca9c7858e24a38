// ABOUTME: In-memory store implementation for demo deployments
// ABOUTME: Guards flat slices with a RWMutex; nothing survives a restart

package store

import (
	"context"
	"sync"

	"github.com/rimki/rimki/models"
)

// MemoryStore holds all records in process memory. It is the default backend
// and matches the original deployment's flat in-memory tables.
type MemoryStore struct {
	mu        sync.RWMutex
	users     []models.User
	documents []models.Document
	quizzes   []models.Quiz
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Users() UserRepository         { return (*memoryUsers)(s) }
func (s *MemoryStore) Documents() DocumentRepository { return (*memoryDocuments)(s) }
func (s *MemoryStore) Quizzes() QuizRepository       { return (*memoryQuizzes)(s) }

func (s *MemoryStore) Close() error { return nil }

type memoryUsers MemoryStore

func (r *memoryUsers) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUsers) Insert(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, *user)
	return nil
}

func (r *memoryUsers) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

type memoryDocuments MemoryStore

func (r *memoryDocuments) Insert(ctx context.Context, doc *models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.documents = append(r.documents, *doc)
	return nil
}

func (r *memoryDocuments) List(ctx context.Context) ([]models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Document, len(r.documents))
	copy(out, r.documents)
	return out, nil
}

type memoryQuizzes MemoryStore

func (r *memoryQuizzes) Insert(ctx context.Context, quiz *models.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.quizzes = append(r.quizzes, *quiz)
	return nil
}

func (r *memoryQuizzes) List(ctx context.Context) ([]models.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Quiz, len(r.quizzes))
	copy(out, r.quizzes)
	return out, nil
}
