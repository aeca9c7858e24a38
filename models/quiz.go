// ABOUTME: Quiz domain model and create/list API contracts
// ABOUTME: Questions are opaque JSON payloads passed through to the builder

package models

import (
	"encoding/json"
	"time"
)

// Quiz is a created quiz with its shareable link
type Quiz struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Questions []json.RawMessage `json:"questions"`
	Link      string            `json:"link"`
	CreatedAt time.Time         `json:"createdAt"`
}

// QuizSummary is the public view of a quiz
type QuizSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary returns the public fields of the quiz
func (q *Quiz) Summary() QuizSummary {
	return QuizSummary{
		ID:        q.ID,
		Title:     q.Title,
		Link:      q.Link,
		CreatedAt: q.CreatedAt,
	}
}

// CreateQuizRequest is the body of POST /api/quiz/create
type CreateQuizRequest struct {
	Title     string            `json:"title"`
	Questions []json.RawMessage `json:"questions"`
}

// CreateQuizResponse is returned after a successful quiz creation
type CreateQuizResponse struct {
	Message string      `json:"message"`
	Quiz    QuizSummary `json:"quiz"`
}

// QuizListResponse is the body of GET /api/quiz/list
type QuizListResponse struct {
	Quizzes []QuizSummary `json:"quizzes"`
}
