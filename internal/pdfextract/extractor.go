package pdfextract

import (
	"bytes"
	"fmt"
	"log"
	"sort"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

const (
	// MaxFileSize is the upload size cap (10 MiB).
	MaxFileSize = 10 * 1024 * 1024
	// MinWordCount is the floor below which a document is too thin to
	// generate quality questions from.
	MinWordCount = 500
	// MaxWhitespaceRatio guards against documents that are mostly layout
	// artifacts rather than readable text.
	MaxWhitespaceRatio = 0.7
)

// Result holds the outcome of extracting and validating one PDF upload.
// Extract never fails the caller: unparseable input yields Valid=false and a
// human-readable message in Errors.
type Result struct {
	Text      string
	WordCount int
	PageCount int
	FileSize  int64
	Valid     bool
	Errors    []string
}

// IsPDF reports whether the buffer starts with the PDF magic bytes.
func IsPDF(data []byte) bool {
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}

// Extract parses the PDF bytes into plain text and validates the result
// against the quality rules. All violated rules are reported together.
func Extract(data []byte) Result {
	result := Result{FileSize: int64(len(data))}

	text, pageCount, err := extractText(data)
	if err != nil {
		log.Printf("WARN: PDF text extraction failed: %v", err)
		result.Errors = append(result.Errors,
			"Failed to extract text from PDF. Please ensure the PDF contains selectable text, not scanned images.")
		if result.FileSize > MaxFileSize {
			result.Errors = append(result.Errors, "File size exceeds 10MB limit")
		}
		return result
	}

	result.Text = text
	result.WordCount = CountWords(text)
	result.PageCount = pageCount
	result.Errors = validate(text, result.WordCount, result.FileSize)
	result.Valid = len(result.Errors) == 0
	return result
}

// extractText walks every page and concatenates its plain text. The pdf
// library panics on some malformed inputs, so the recover converts those
// into ordinary errors.
func extractText(data []byte) (text string, pageCount int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	if !IsPDF(data) {
		return "", 0, fmt.Errorf("missing %%PDF header")
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("failed to open PDF: %w", err)
	}

	pageCount = reader.NumPage()
	var sb strings.Builder
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Image-only pages are common; skip rather than fail.
			log.Printf("WARN: failed to extract text from page %d: %v", i, err)
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(pageText)
	}

	return sb.String(), pageCount, nil
}

func validate(text string, wordCount int, fileSize int64) []string {
	var errs []string

	if fileSize > MaxFileSize {
		errs = append(errs, "File size exceeds 10MB limit")
	}

	if strings.TrimSpace(text) == "" {
		errs = append(errs, "No text content found in PDF. Please ensure the PDF contains selectable text.")
	}

	if wordCount < MinWordCount {
		errs = append(errs, "Document contains too few words (minimum 500 words required for quality question generation)")
	}

	if WhitespaceRatio(text) > MaxWhitespaceRatio {
		errs = append(errs, "Document appears to contain mostly formatting characters. Please ensure it contains readable educational content.")
	}

	return errs
}

// CountWords counts maximal runs of non-whitespace characters.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// WhitespaceRatio returns the fraction of characters that are whitespace.
// Empty text has ratio 0.
func WhitespaceRatio(text string) float64 {
	if len(text) == 0 {
		return 0
	}
	total := 0
	spaces := 0
	for _, r := range text {
		total++
		if unicode.IsSpace(r) {
			spaces++
		}
	}
	return float64(spaces) / float64(total)
}

// stopWords are common English words excluded from the fallback key-phrase
// extraction.
var stopWords = map[string]struct{}{
	"this": {}, "that": {}, "with": {}, "have": {}, "will": {}, "from": {},
	"they": {}, "know": {}, "want": {}, "been": {}, "good": {}, "much": {},
	"some": {}, "time": {}, "very": {}, "when": {}, "come": {}, "here": {},
	"just": {}, "like": {}, "long": {}, "make": {}, "many": {}, "over": {},
	"such": {}, "take": {}, "than": {}, "them": {}, "well": {}, "were": {},
}

// ExtractKeyPhrases is a local, frequency-based keyword extractor used as a
// fallback when the AI keyword call fails. It lowercases the text, strips
// punctuation, drops short and stop words, and returns the top 20 words by
// frequency.
func ExtractKeyPhrases(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	freq := make(map[string]int)
	var order []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 3 {
			continue
		}
		if _, skip := stopWords[word]; skip {
			continue
		}
		if _, seen := freq[word]; !seen {
			order = append(order, word)
		}
		freq[word]++
	}

	// Stable sort keeps first-occurrence order among equal frequencies.
	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	if len(order) > 20 {
		order = order[:20]
	}
	return order
}
