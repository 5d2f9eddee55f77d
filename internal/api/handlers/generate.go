package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"examforge/internal/models"
	"examforge/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HandleGenerateQuestions generates a question set for a previously
// uploaded document.
func (h *Handler) HandleGenerateQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid generation parameters: "+err.Error(), nil)
		return
	}

	documentID, err := uuid.Parse(req.DocumentID)
	if err != nil {
		h.respondError(c, http.StatusNotFound, "Document not found", nil)
		return
	}

	document, err := h.Store.GetDocument(ctx, documentID)
	if errors.Is(err, store.ErrNotFound) {
		h.respondError(c, http.StatusNotFound, "Document not found", nil)
		return
	}
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Failed to load document", err)
		return
	}

	log.Printf("INFO: generating %d %s %s questions for document %s",
		req.QuestionCount, req.Difficulty, req.QuestionType, document.ID)

	questions, err := h.Generator.GenerateQuestions(ctx, document.TextContent, req)
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error(), err)
		return
	}

	questionSet, err := h.Store.CreateQuestionSet(ctx, models.QuestionSet{
		DocumentID:    document.ID,
		QuestionCount: req.QuestionCount,
		Difficulty:    req.Difficulty,
		QuestionType:  req.QuestionType,
		Questions:     questions,
	})
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Failed to store question set", err)
		return
	}

	c.JSON(http.StatusOK, models.GenerateQuestionsResponse{
		QuestionSetID: questionSet.ID,
		Questions:     questions,
		Metadata: models.PaperMetadata{
			QuestionCount: req.QuestionCount,
			Difficulty:    req.Difficulty,
			QuestionType:  req.QuestionType,
			GeneratedAt:   questionSet.GeneratedAt.Format(time.RFC3339),
		},
	})
}

// HandleGetQuestionSet returns the full question-set record.
func (h *Handler) HandleGetQuestionSet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.respondError(c, http.StatusNotFound, "Question set not found", nil)
		return
	}

	questionSet, err := h.Store.GetQuestionSet(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		h.respondError(c, http.StatusNotFound, "Question set not found", nil)
		return
	}
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Failed to load question set", err)
		return
	}

	c.JSON(http.StatusOK, questionSet)
}
