package pdfextract

import (
	"testing"

	"examforge/internal/pdfextract/pdftest"

	"github.com/stretchr/testify/assert"
)

func TestExtractValidDocument(t *testing.T) {
	data := pdftest.MakeTextPDF(pdftest.Words(600))
	result := Extract(data)

	assert.True(t, result.Valid, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 600, result.WordCount)
	assert.Equal(t, 1, result.PageCount)
	assert.Equal(t, int64(len(data)), result.FileSize)
	assert.Contains(t, result.Text, "w1 w2")
}

func TestExtractBoundaryWordCount(t *testing.T) {
	// Exactly the floor passes; one below fails.
	assert.True(t, Extract(pdftest.MakeTextPDF(pdftest.Words(500))).Valid)

	result := Extract(pdftest.MakeTextPDF(pdftest.Words(499)))
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "too few words")
}

func TestExtractThinDocument(t *testing.T) {
	result := Extract(pdftest.MakeTextPDF("one two three"))

	assert.False(t, result.Valid)
	assert.Equal(t, 3, result.WordCount)
	assert.Equal(t, 1, result.PageCount)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "minimum 500 words")
}
