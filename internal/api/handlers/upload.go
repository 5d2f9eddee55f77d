package handlers

import (
	"io"
	"log"
	"net/http"
	"strings"

	"examforge/internal/models"
	"examforge/internal/pdfextract"

	"github.com/gin-gonic/gin"
)

// HandleUpload accepts a multipart PDF upload, extracts and validates its
// text, stores the document record, and returns a keyword preview.
func (h *Handler) HandleUpload(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "No PDF file uploaded", err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "application/pdf") {
		h.respondError(c, http.StatusBadRequest, "Only PDF files are allowed", nil)
		return
	}

	// Reject oversized uploads before buffering the file into memory.
	if fileHeader.Size > pdfextract.MaxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "PDF validation failed",
			"errors":  []string{"File size exceeds 10MB limit"},
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Failed to open uploaded file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Failed to read uploaded file", err)
		return
	}

	log.Printf("INFO: processing upload %s (%d bytes)", fileHeader.Filename, len(data))

	result := pdfextract.Extract(data)
	if !result.Valid {
		// A document that fails validation yields no record at all.
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "PDF validation failed",
			"errors":  result.Errors,
		})
		return
	}

	document, err := h.Store.CreateDocument(ctx, models.Document{
		Filename:    fileHeader.Filename,
		FileSize:    result.FileSize,
		TextContent: result.Text,
		WordCount:   result.WordCount,
		PageCount:   result.PageCount,
	})
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Failed to store document", err)
		return
	}

	if err := h.Archive.StoreUpload(ctx, document.ID, document.Filename, data); err != nil {
		// Archival is best-effort; the upload already succeeded.
		log.Printf("WARN: failed to archive upload %s: %v", document.ID, err)
	}

	keywords, err := h.Generator.ExtractKeywords(ctx, result.Text)
	if err != nil {
		log.Printf("WARN: AI keyword extraction failed, using local fallback: %v", err)
		keywords = pdfextract.ExtractKeyPhrases(result.Text)
	}
	if keywords == nil {
		keywords = []string{}
	}

	c.JSON(http.StatusOK, models.UploadResponse{
		Document: models.DocumentSummary{
			ID:        document.ID,
			Filename:  document.Filename,
			FileSize:  document.FileSize,
			WordCount: document.WordCount,
			PageCount: document.PageCount,
		},
		Keywords: keywords,
	})
}
