package handlers

import (
	"context"
	"log"
	"net/http"

	"examforge/internal/archive"
	"examforge/internal/models"
	"examforge/internal/store"

	"github.com/gin-gonic/gin"
)

// QuestionGenerator is the slice of the AI client the handlers need. It is
// an interface so tests can substitute a fake for the remote model.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, text string, req models.GenerateQuestionsRequest) ([]models.QuestionRecord, error)
	ExtractKeywords(ctx context.Context, text string) ([]string, error)
}

// Handler contains the API handlers' dependencies.
type Handler struct {
	Store     store.Store
	Generator QuestionGenerator
	Archive   *archive.Client
}

// NewHandler creates a Handler with its dependencies injected.
func NewHandler(st store.Store, generator QuestionGenerator, arch *archive.Client) *Handler {
	return &Handler{
		Store:     st,
		Generator: generator,
		Archive:   arch,
	}
}

// respondError writes a JSON error body with a message field. Server-side
// failures are logged; client errors (4xx) are not treated as faults.
func (h *Handler) respondError(c *gin.Context, status int, message string, err error) {
	if status >= http.StatusInternalServerError && err != nil {
		log.Printf("ERROR: %s: %v", message, err)
	}
	c.JSON(status, gin.H{"message": message})
}

// HandleHealth reports process liveness.
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
