package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"examforge/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS documents (
	id UUID PRIMARY KEY,
	filename TEXT NOT NULL,
	file_size BIGINT NOT NULL,
	text_content TEXT NOT NULL,
	word_count INT NOT NULL,
	page_count INT NOT NULL,
	uploaded_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS question_sets (
	id UUID PRIMARY KEY,
	document_id UUID NOT NULL REFERENCES documents(id),
	question_count INT NOT NULL,
	difficulty TEXT NOT NULL,
	question_type TEXT NOT NULL,
	questions JSONB NOT NULL,
	generated_at TIMESTAMPTZ NOT NULL
);
`

// PostgresStore is a durable Store backed by a pgx connection pool.
// Question records are held as a jsonb column on the owning set.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the database and applies the table DDL.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to apply store schema: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// CreateDocument assigns a fresh id and upload timestamp.
func (s *PostgresStore) CreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	doc.ID = uuid.New()
	doc.UploadedAt = time.Now().UTC()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO documents (id, filename, file_size, text_content, word_count, page_count, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		doc.ID, doc.Filename, doc.FileSize, doc.TextContent, doc.WordCount, doc.PageCount, doc.UploadedAt)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to insert document: %w", err)
	}
	return doc, nil
}

// GetDocument returns ErrNotFound for unknown ids.
func (s *PostgresStore) GetDocument(ctx context.Context, id uuid.UUID) (models.Document, error) {
	var doc models.Document
	err := s.pool.QueryRow(ctx,
		`SELECT id, filename, file_size, text_content, word_count, page_count, uploaded_at
		 FROM documents WHERE id = $1`, id).
		Scan(&doc.ID, &doc.Filename, &doc.FileSize, &doc.TextContent, &doc.WordCount, &doc.PageCount, &doc.UploadedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Document{}, ErrNotFound
	}
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to read document: %w", err)
	}
	return doc, nil
}

// CreateQuestionSet assigns a fresh id and generation timestamp. A foreign
// key violation on document_id maps to ErrNotFound.
func (s *PostgresStore) CreateQuestionSet(ctx context.Context, set models.QuestionSet) (models.QuestionSet, error) {
	set.ID = uuid.New()
	set.GeneratedAt = time.Now().UTC()

	questions, err := json.Marshal(set.Questions)
	if err != nil {
		return models.QuestionSet{}, fmt.Errorf("failed to encode questions: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO question_sets (id, document_id, question_count, difficulty, question_type, questions, generated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		set.ID, set.DocumentID, set.QuestionCount, set.Difficulty, set.QuestionType, questions, set.GeneratedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return models.QuestionSet{}, ErrNotFound
		}
		return models.QuestionSet{}, fmt.Errorf("failed to insert question set: %w", err)
	}
	return set, nil
}

// GetQuestionSet returns ErrNotFound for unknown ids.
func (s *PostgresStore) GetQuestionSet(ctx context.Context, id uuid.UUID) (models.QuestionSet, error) {
	var set models.QuestionSet
	var questions []byte
	err := s.pool.QueryRow(ctx,
		`SELECT id, document_id, question_count, difficulty, question_type, questions, generated_at
		 FROM question_sets WHERE id = $1`, id).
		Scan(&set.ID, &set.DocumentID, &set.QuestionCount, &set.Difficulty, &set.QuestionType, &questions, &set.GeneratedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.QuestionSet{}, ErrNotFound
	}
	if err != nil {
		return models.QuestionSet{}, fmt.Errorf("failed to read question set: %w", err)
	}

	if err := json.Unmarshal(questions, &set.Questions); err != nil {
		return models.QuestionSet{}, fmt.Errorf("failed to decode questions: %w", err)
	}
	return set, nil
}
