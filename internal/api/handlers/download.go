package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"examforge/internal/docgen"
	"examforge/internal/models"
	"examforge/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HandleDownloadQuestions renders a question paper (questions and choices
// only) in the requested format.
func (h *Handler) HandleDownloadQuestions(c *gin.Context) {
	h.handleDownload(c, docgen.VariantQuestionPaper)
}

// HandleDownloadAnswers renders an answer key (correct answers and
// explanations) in the requested format.
func (h *Handler) HandleDownloadAnswers(c *gin.Context) {
	h.handleDownload(c, docgen.VariantAnswerKey)
}

func (h *Handler) handleDownload(c *gin.Context, variant docgen.Variant) {
	format, err := docgen.ParseFormat(c.Param("format"))
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid format. Use 'pdf' or 'docx'", nil)
		return
	}

	setID := c.Param("questionSetId")
	questionSet, document, ok := h.loadSetWithDocument(c, setID)
	if !ok {
		return
	}

	paper := buildPaper(questionSet, document, variant)

	data, err := docgen.Render(paper, variant, format)
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Failed to generate document", err)
		return
	}

	prefix := "questions"
	if variant == docgen.VariantAnswerKey {
		prefix = "answers"
	}
	filename := fmt.Sprintf("%s-%s.%s", prefix, questionSet.ID, format)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, format.ContentType(), data)
}

// loadSetWithDocument resolves the question set and its owning document,
// writing the 404 response itself when either is missing.
func (h *Handler) loadSetWithDocument(c *gin.Context, rawID string) (models.QuestionSet, models.Document, bool) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(rawID)
	if err != nil {
		h.respondError(c, http.StatusNotFound, "Question set not found", nil)
		return models.QuestionSet{}, models.Document{}, false
	}

	questionSet, err := h.Store.GetQuestionSet(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		h.respondError(c, http.StatusNotFound, "Question set not found", nil)
		return models.QuestionSet{}, models.Document{}, false
	}
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Failed to load question set", err)
		return models.QuestionSet{}, models.Document{}, false
	}

	document, err := h.Store.GetDocument(ctx, questionSet.DocumentID)
	if errors.Is(err, store.ErrNotFound) {
		h.respondError(c, http.StatusNotFound, "Document not found", nil)
		return models.QuestionSet{}, models.Document{}, false
	}
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Failed to load document", err)
		return models.QuestionSet{}, models.Document{}, false
	}

	return questionSet, document, true
}

// buildPaper assembles the rendering request for a stored question set.
func buildPaper(set models.QuestionSet, doc models.Document, variant docgen.Variant) models.QuestionPaper {
	paper := models.QuestionPaper{
		Questions: set.Questions,
		Metadata: models.PaperMetadata{
			QuestionCount: set.QuestionCount,
			Difficulty:    set.Difficulty,
			QuestionType:  set.QuestionType,
			GeneratedAt:   set.GeneratedAt.Format(time.DateOnly),
		},
	}

	if variant == docgen.VariantAnswerKey {
		paper.Title = "Answer Key - " + doc.Filename
		paper.Instructions = "This is the answer key for the question paper. It contains correct answers and explanations."
	} else {
		paper.Title = "Question Paper - " + doc.Filename
		paper.Instructions = fmt.Sprintf("Instructions: Answer all questions. Each question carries equal marks. Total questions: %d", set.QuestionCount)
	}

	return paper
}
