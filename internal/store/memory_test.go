package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"examforge/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreDocumentLifecycle(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.CreateDocument(ctx, models.Document{
		Filename:    "notes.pdf",
		FileSize:    2048,
		TextContent: "some text",
		WordCount:   600,
		PageCount:   3,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.UploadedAt.IsZero())

	got, err := s.GetDocument(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestMemoryStoreGetUnknownDocument(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.GetDocument(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreQuestionSetRequiresDocument(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.CreateQuestionSet(context.Background(), models.QuestionSet{
		DocumentID: uuid.New(),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreQuestionSetLifecycle(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	doc, err := s.CreateDocument(ctx, models.Document{Filename: "a.pdf", WordCount: 600})
	require.NoError(t, err)

	set, err := s.CreateQuestionSet(ctx, models.QuestionSet{
		DocumentID:    doc.ID,
		QuestionCount: 5,
		Difficulty:    models.DifficultyEasy,
		QuestionType:  models.TypeMCQ,
		Questions: []models.QuestionRecord{
			{ID: "q1", Question: "Q?", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "A", Explanation: "e", Difficulty: "easy"},
		},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, set.ID)
	assert.False(t, set.GeneratedAt.IsZero())

	got, err := s.GetQuestionSet(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, set, got)

	_, err = s.GetQuestionSet(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

// Creates for different ids never conflict; the store must stay consistent
// under concurrent readers and writers.
func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	const n = 50
	ids := make([]uuid.UUID, n)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			doc, err := s.CreateDocument(ctx, models.Document{Filename: fmt.Sprintf("doc-%d.pdf", i)})
			assert.NoError(t, err)
			ids[i] = doc.ID

			_, err = s.GetDocument(ctx, doc.ID)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	seen := make(map[uuid.UUID]struct{}, n)
	for _, id := range ids {
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}

		_, err := s.GetDocument(ctx, id)
		assert.NoError(t, err)
	}
}
