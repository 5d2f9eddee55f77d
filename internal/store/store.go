// Package store owns the document and question-set collections. Entities
// are write-once: create and read are the only operations exposed.
package store

import (
	"context"
	"errors"

	"examforge/internal/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned for reads of unknown ids and for question-set
// creates that reference a document the store has never seen.
var ErrNotFound = errors.New("record not found")

// Store holds uploaded-document and question-set records keyed by generated
// identifiers. Implementations must be safe for concurrent use by multiple
// in-flight requests.
type Store interface {
	// CreateDocument assigns a fresh id and upload timestamp and persists
	// the record.
	CreateDocument(ctx context.Context, doc models.Document) (models.Document, error)
	// GetDocument returns ErrNotFound for unknown ids.
	GetDocument(ctx context.Context, id uuid.UUID) (models.Document, error)
	// CreateQuestionSet assigns a fresh id and generation timestamp. The
	// owning document must exist.
	CreateQuestionSet(ctx context.Context, set models.QuestionSet) (models.QuestionSet, error)
	// GetQuestionSet returns ErrNotFound for unknown ids.
	GetQuestionSet(ctx context.Context, id uuid.UUID) (models.QuestionSet, error)
}
