// ABOUTME: SQLite-backed store implementation using modernc.org/sqlite
// ABOUTME: Single writer connection with WAL mode; schema applied on open

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rimki/rimki/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	email         TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS documents (
	id            TEXT PRIMARY KEY,
	filename      TEXT NOT NULL,
	original_name TEXT NOT NULL,
	mime_type     TEXT NOT NULL,
	size          INTEGER NOT NULL,
	path          TEXT NOT NULL,
	uploaded_at   TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS quizzes (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	questions  TEXT NOT NULL DEFAULT '[]',
	link       TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`

// SQLiteStore persists records in a SQLite file. The writer pool is limited to
// one connection to avoid "database is locked" errors under WAL.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and applies the schema
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)",
		path,
	)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Users() UserRepository         { return &sqliteUsers{db: s.db} }
func (s *SQLiteStore) Documents() DocumentRepository { return &sqliteDocuments{db: s.db} }
func (s *SQLiteStore) Quizzes() QuizRepository       { return &sqliteQuizzes{db: s.db} }

func (s *SQLiteStore) Close() error { return s.db.Close() }

type sqliteUsers struct {
	db *sql.DB
}

func (r *sqliteUsers) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, email FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *sqliteUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, email FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *sqliteUsers) Insert(ctx context.Context, user *models.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, email) VALUES (?, ?, ?, ?)`,
		user.ID, user.Username, user.PasswordHash, user.Email)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *sqliteUsers) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, password_hash, email FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

type sqliteDocuments struct {
	db *sql.DB
}

func (r *sqliteDocuments) Insert(ctx context.Context, doc *models.Document) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (id, filename, original_name, mime_type, size, path, uploaded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		doc.ID, doc.Filename, doc.OriginalName, doc.MimeType, doc.Size, doc.Path,
		doc.UploadedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (r *sqliteDocuments) List(ctx context.Context) ([]models.Document, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, filename, original_name, mime_type, size, path, uploaded_at
		 FROM documents ORDER BY uploaded_at`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var d models.Document
		var uploadedAt string
		if err := rows.Scan(&d.ID, &d.Filename, &d.OriginalName, &d.MimeType, &d.Size, &d.Path, &uploadedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		d.UploadedAt, err = time.Parse(time.RFC3339Nano, uploadedAt)
		if err != nil {
			return nil, fmt.Errorf("parse uploaded_at: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

type sqliteQuizzes struct {
	db *sql.DB
}

func (r *sqliteQuizzes) Insert(ctx context.Context, quiz *models.Quiz) error {
	questions, err := json.Marshal(quiz.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO quizzes (id, title, questions, link, created_at) VALUES (?, ?, ?, ?, ?)`,
		quiz.ID, quiz.Title, string(questions), quiz.Link,
		quiz.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert quiz: %w", err)
	}
	return nil
}

func (r *sqliteQuizzes) List(ctx context.Context) ([]models.Quiz, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, questions, link, created_at FROM quizzes ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	defer rows.Close()

	var quizzes []models.Quiz
	for rows.Next() {
		var q models.Quiz
		var questions, createdAt string
		if err := rows.Scan(&q.ID, &q.Title, &questions, &q.Link, &createdAt); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		if err := json.Unmarshal([]byte(questions), &q.Questions); err != nil {
			return nil, fmt.Errorf("unmarshal questions: %w", err)
		}
		q.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}
