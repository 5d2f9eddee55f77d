package store

import (
	"context"
	"sync"
	"time"

	"examforge/internal/models"

	"github.com/google/uuid"
)

// MemoryStore keeps all records in process memory. Retention is
// process-lifetime only; losing records on restart is acceptable.
type MemoryStore struct {
	mu           sync.RWMutex
	documents    map[uuid.UUID]models.Document
	questionSets map[uuid.UUID]models.QuestionSet
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		documents:    make(map[uuid.UUID]models.Document),
		questionSets: make(map[uuid.UUID]models.QuestionSet),
	}
}

// CreateDocument assigns a fresh id and upload timestamp.
func (s *MemoryStore) CreateDocument(_ context.Context, doc models.Document) (models.Document, error) {
	doc.ID = uuid.New()
	doc.UploadedAt = time.Now().UTC()

	s.mu.Lock()
	s.documents[doc.ID] = doc
	s.mu.Unlock()

	return doc, nil
}

// GetDocument returns ErrNotFound for unknown ids.
func (s *MemoryStore) GetDocument(_ context.Context, id uuid.UUID) (models.Document, error) {
	s.mu.RLock()
	doc, ok := s.documents[id]
	s.mu.RUnlock()

	if !ok {
		return models.Document{}, ErrNotFound
	}
	return doc, nil
}

// CreateQuestionSet assigns a fresh id and generation timestamp after
// checking the owning document exists.
func (s *MemoryStore) CreateQuestionSet(_ context.Context, set models.QuestionSet) (models.QuestionSet, error) {
	set.ID = uuid.New()
	set.GeneratedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[set.DocumentID]; !ok {
		return models.QuestionSet{}, ErrNotFound
	}
	s.questionSets[set.ID] = set
	return set, nil
}

// GetQuestionSet returns ErrNotFound for unknown ids.
func (s *MemoryStore) GetQuestionSet(_ context.Context, id uuid.UUID) (models.QuestionSet, error) {
	s.mu.RLock()
	set, ok := s.questionSets[id]
	s.mu.RUnlock()

	if !ok {
		return models.QuestionSet{}, ErrNotFound
	}
	return set, nil
}
