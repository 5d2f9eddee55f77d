// Package docgen renders question papers and answer keys as PDF or DOCX
// byte buffers. Both variants and both formats share one document-tree
// builder; the encoders only translate blocks into format-specific styling.
package docgen

import (
	"fmt"
	"strings"

	"examforge/internal/models"
)

// Variant selects what a rendered document reveals.
type Variant string

const (
	// VariantQuestionPaper renders questions and choices only.
	VariantQuestionPaper Variant = "questionPaper"
	// VariantAnswerKey renders questions with correct answers and
	// explanations, never the choice lists.
	VariantAnswerKey Variant = "answerKey"
)

// Format selects the output file format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// ParseFormat validates a format path segment from the download routes.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPDF, FormatDOCX:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid format %q: use 'pdf' or 'docx'", s)
	}
}

// ContentType returns the MIME type for download responses.
func (f Format) ContentType() string {
	if f == FormatDOCX {
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/pdf"
}

// Style classifies a block for the format encoders.
type Style int

const (
	StyleTitle Style = iota
	StyleBody
	StyleMeta
	StyleQuestion
	StyleOption
	StyleAnswer
	StyleExplanation
)

// Block is one line of the document tree.
type Block struct {
	Text  string
	Style Style
}

// optionLetter returns the label for the nth choice: A, B, C, ...
func optionLetter(n int) string {
	return string(rune('A' + n))
}

// buildBlocks constructs the shared document tree for a rendering request.
// The variant decides whether choices or answers appear; nothing else
// differs between the two documents.
func buildBlocks(paper models.QuestionPaper, variant Variant) []Block {
	blocks := []Block{{Text: paper.Title, Style: StyleTitle}}

	if variant == VariantQuestionPaper && paper.Instructions != "" {
		blocks = append(blocks, Block{Text: paper.Instructions, Style: StyleBody})
	}

	m := paper.Metadata
	blocks = append(blocks, Block{
		Text: fmt.Sprintf("Questions: %d | Difficulty: %s | Type: %s | Generated: %s",
			m.QuestionCount, m.Difficulty, m.QuestionType, m.GeneratedAt),
		Style: StyleMeta,
	})

	for i, q := range paper.Questions {
		blocks = append(blocks, Block{
			Text:  fmt.Sprintf("Q%d. %s", i+1, q.Question),
			Style: StyleQuestion,
		})

		if variant == VariantAnswerKey {
			blocks = append(blocks,
				Block{Text: "Correct Answer: " + q.CorrectAnswer, Style: StyleAnswer},
				Block{Text: "Explanation: " + q.Explanation, Style: StyleExplanation},
			)
			continue
		}

		options := q.Options
		if len(options) == 0 {
			// True/false questions carry no options field.
			options = []string{"True", "False"}
		}
		for n, opt := range options {
			blocks = append(blocks, Block{
				Text:  fmt.Sprintf("%s. %s", optionLetter(n), opt),
				Style: StyleOption,
			})
		}
	}

	return blocks
}

// Render produces the document bytes for a variant and format.
func Render(paper models.QuestionPaper, variant Variant, format Format) ([]byte, error) {
	blocks := buildBlocks(paper, variant)
	switch format {
	case FormatDOCX:
		return encodeDOCX(blocks)
	default:
		return encodePDF(blocks)
	}
}

// RenderedText returns the plain text content of a rendering request, one
// block per line. Useful for asserting on document content independently of
// format encoding.
func RenderedText(paper models.QuestionPaper, variant Variant) string {
	blocks := buildBlocks(paper, variant)
	lines := make([]string, len(blocks))
	for i, b := range blocks {
		lines[i] = b.Text
	}
	return strings.Join(lines, "\n")
}
