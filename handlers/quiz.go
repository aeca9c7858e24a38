// ABOUTME: Quiz builder handlers: document upload, quiz creation, quiz listing
// ABOUTME: Uploads land on disk; metadata and quizzes go through the store

package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/rimki/rimki/models"
)

const quizListCacheKey = "quiz:list"

// UploadDocument accepts a multipart "document" file and stores it
func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(h.cfg.MaxUploadMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	file, header, err := r.FormFile("document")
	if err != nil {
		writeError(w, "No file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// Never trust the client-supplied name for the on-disk path
	storedName := uuid.NewString() + filepath.Ext(header.Filename)
	dstPath := filepath.Join(h.cfg.UploadDir, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		slog.Error("Failed to create upload file", "error", err, "path", dstPath)
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer dst.Close()

	size, err := io.Copy(dst, file)
	if err != nil {
		slog.Error("Failed to write upload file", "error", err, "path", dstPath)
		os.Remove(dstPath)
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	doc := &models.Document{
		ID:           uuid.NewString(),
		Filename:     storedName,
		OriginalName: header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		Size:         size,
		Path:         dstPath,
		UploadedAt:   time.Now().UTC(),
	}

	if err := h.store.Documents().Insert(r.Context(), doc); err != nil {
		slog.Error("Failed to store document metadata", "error", err)
		os.Remove(dstPath)
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	slog.Info("Document uploaded", "id", doc.ID, "name", doc.OriginalName, "size", size)

	h.writeJSON(w, http.StatusOK, models.UploadResponse{
		Message:  "Document uploaded successfully",
		Document: doc.Summary(),
	})
}

// CreateQuiz creates a quiz and returns its shareable link
func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Title == "" {
		writeError(w, "Quiz title is required", http.StatusBadRequest)
		return
	}

	quiz := &models.Quiz{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Questions: req.Questions,
		CreatedAt: time.Now().UTC(),
	}
	quiz.Link = h.cfg.QuizLinkBase + "/quiz/" + quiz.ID

	// Prefer the hosted builder's link when one is configured; a builder
	// outage degrades to the local link instead of failing the request.
	if h.quizGen != nil {
		link, err := h.quizGen.BuildLink(r.Context(), quiz)
		if err != nil {
			slog.Warn("Quiz builder unavailable, using local link", "error", err)
		} else {
			quiz.Link = link
		}
	}

	if err := h.store.Quizzes().Insert(r.Context(), quiz); err != nil {
		slog.Error("Failed to store quiz", "error", err)
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.cache.Clear(quizListCacheKey)
	slog.Info("Quiz created", "id", quiz.ID, "title", quiz.Title)

	h.writeJSON(w, http.StatusOK, models.CreateQuizResponse{
		Message: "Quiz created successfully",
		Quiz:    quiz.Summary(),
	})
}

// ListQuizzes returns summaries of all created quizzes
func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	if cached, found := h.cache.Get(quizListCacheKey); found {
		h.writeJSON(w, http.StatusOK, cached)
		return
	}

	quizzes, err := h.store.Quizzes().List(r.Context())
	if err != nil {
		slog.Error("Failed to list quizzes", "error", err)
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	resp := models.QuizListResponse{
		Quizzes: make([]models.QuizSummary, 0, len(quizzes)),
	}
	for i := range quizzes {
		resp.Quizzes = append(resp.Quizzes, quizzes[i].Summary())
	}

	h.cache.Set(quizListCacheKey, resp)
	h.writeJSON(w, http.StatusOK, resp)
}
