package pdfextract

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"only whitespace", " \t\n  ", 0},
		{"single word", "hello", 1},
		{"simple sentence", "the quick brown fox", 4},
		{"mixed whitespace runs", "a\tb\n\nc   d", 4},
		{"leading and trailing", "  word1 word2  ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWords(tt.text))
		})
	}
}

func TestWhitespaceRatio(t *testing.T) {
	assert.Equal(t, 0.0, WhitespaceRatio(""))
	assert.Equal(t, 0.0, WhitespaceRatio("abcd"))
	assert.Equal(t, 1.0, WhitespaceRatio("    "))
	assert.InDelta(t, 0.5, WhitespaceRatio("a b "), 0.01)
}

func TestIsPDF(t *testing.T) {
	assert.True(t, IsPDF([]byte("%PDF-1.7 rest")))
	assert.False(t, IsPDF([]byte("PK\x03\x04")))
	assert.False(t, IsPDF([]byte("%PD")))
	assert.False(t, IsPDF(nil))
}

func TestExtractRejectsNonPDF(t *testing.T) {
	result := Extract([]byte("definitely not a pdf"))

	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Failed to extract text")
	assert.Equal(t, int64(20), result.FileSize)
}

func TestExtractReportsAllViolations(t *testing.T) {
	// An oversized buffer that is also unparseable must list both the
	// extraction failure and the size violation.
	big := bytes.Repeat([]byte("x"), MaxFileSize+1)
	result := Extract(big)

	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "Failed to extract text")
	assert.Contains(t, result.Errors[1], "File size exceeds 10MB limit")
}

func TestValidateRules(t *testing.T) {
	longText := strings.Repeat("word ", 600)

	tests := []struct {
		name      string
		text      string
		fileSize  int64
		wantErrs  int
		wantFirst string
	}{
		{"valid document", longText, 1024, 0, ""},
		{"empty text", "", 1024, 2, "No text content"},
		{"too few words", "only three words", 1024, 1, "too few words"},
		{"oversized", longText, MaxFileSize + 1, 1, "File size exceeds"},
		{"mostly whitespace", "a" + strings.Repeat(" \n\t", 400) + strings.Repeat("b ", 500), 1024, 1, "formatting characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validate(tt.text, CountWords(tt.text), tt.fileSize)
			assert.Len(t, errs, tt.wantErrs)
			if tt.wantFirst != "" {
				assert.Contains(t, errs[0], tt.wantFirst)
			}
		})
	}
}

func TestExtractKeyPhrases(t *testing.T) {
	text := "Photosynthesis converts sunlight. Photosynthesis requires chlorophyll. " +
		"Chlorophyll absorbs sunlight, and sunlight drives photosynthesis."
	keywords := ExtractKeyPhrases(text)

	assert.NotEmpty(t, keywords)
	assert.Equal(t, "photosynthesis", keywords[0])
	assert.Contains(t, keywords, "sunlight")
	assert.Contains(t, keywords, "chlorophyll")
	// Short words and punctuation never survive.
	assert.NotContains(t, keywords, "and")
}

func TestExtractKeyPhrasesDropsStopWords(t *testing.T) {
	keywords := ExtractKeyPhrases("this that with have this that with have biology")
	assert.Equal(t, []string{"biology"}, keywords)
}

func TestExtractKeyPhrasesCapsAtTwenty(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		sb.WriteString(strings.Repeat(string(rune('a'+i%26))+"term ", 2))
	}
	keywords := ExtractKeyPhrases(sb.String())
	assert.LessOrEqual(t, len(keywords), 20)
}
