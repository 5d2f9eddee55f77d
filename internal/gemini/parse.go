package gemini

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"examforge/internal/models"
)

// questionsPayload is the untrusted shape of a question generation reply.
type questionsPayload struct {
	Questions []models.QuestionRecord `json:"questions"`
}

// keywordsPayload is the untrusted shape of a keyword extraction reply.
type keywordsPayload struct {
	Keywords []string `json:"keywords"`
}

// normalizeResponse strips the formatting the model sometimes wraps around
// its JSON despite being asked for raw JSON: markdown code fences and any
// prose before the first brace or after the last.
func normalizeResponse(raw string) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```") {
		// Drop the opening fence line ("```" or "```json") and a trailing fence.
		if idx := strings.IndexByte(text, '\n'); idx >= 0 {
			text = text[idx+1:]
		} else {
			text = strings.TrimPrefix(text, "```")
		}
		text = strings.TrimSpace(text)
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start >= 0 && end > start {
		text = text[start : end+1]
	}
	return text
}

// parseQuestions decodes a raw model reply into question records and applies
// the post-parse invariants. Records that fail validation are dropped; an
// empty surviving batch is an error.
func parseQuestions(raw, questionType, difficulty string) ([]models.QuestionRecord, error) {
	text := normalizeResponse(raw)
	if text == "" {
		return nil, fmt.Errorf("empty response")
	}

	var payload questionsPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON in response: %w", err)
	}
	if len(payload.Questions) == 0 {
		return nil, fmt.Errorf("response contained no questions")
	}

	kept := make([]models.QuestionRecord, 0, len(payload.Questions))
	for i, q := range payload.Questions {
		record, err := validateRecord(q, questionType, difficulty, i+1)
		if err != nil {
			log.Printf("WARN: dropping non-conforming question record %d: %v", i+1, err)
			continue
		}
		kept = append(kept, record)
	}

	if len(kept) == 0 {
		return nil, fmt.Errorf("all %d returned questions failed validation", len(payload.Questions))
	}
	return kept, nil
}

// validateRecord enforces the data-model invariant that the correct answer
// is a member of the available choices, normalizing minor model sloppiness
// (missing ids, missing difficulty labels, True/False casing).
func validateRecord(q models.QuestionRecord, questionType, difficulty string, position int) (models.QuestionRecord, error) {
	if strings.TrimSpace(q.Question) == "" {
		return q, fmt.Errorf("empty question text")
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return q, fmt.Errorf("empty correctAnswer")
	}

	switch questionType {
	case models.TypeMCQ:
		if len(q.Options) != 4 {
			return q, fmt.Errorf("expected 4 options, got %d", len(q.Options))
		}
		found := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return q, fmt.Errorf("correctAnswer %q is not one of the options", q.CorrectAnswer)
		}
	case models.TypeTrueFalse:
		switch strings.ToLower(strings.TrimSpace(q.CorrectAnswer)) {
		case "true":
			q.CorrectAnswer = "True"
		case "false":
			q.CorrectAnswer = "False"
		default:
			return q, fmt.Errorf("correctAnswer %q is neither True nor False", q.CorrectAnswer)
		}
		// The implicit choice set is {"True","False"}; any options the
		// model invented are discarded.
		q.Options = nil
	default:
		return q, fmt.Errorf("unknown question type %q", questionType)
	}

	if strings.TrimSpace(q.ID) == "" {
		q.ID = fmt.Sprintf("q%d", position)
	}
	if strings.TrimSpace(q.Difficulty) == "" {
		q.Difficulty = difficulty
	}

	return q, nil
}

// parseKeywords decodes a raw model reply into a keyword list.
func parseKeywords(raw string) ([]string, error) {
	text := normalizeResponse(raw)
	if text == "" {
		return nil, fmt.Errorf("empty response")
	}

	var payload keywordsPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON in response: %w", err)
	}
	if len(payload.Keywords) == 0 {
		return nil, fmt.Errorf("response contained no keywords")
	}
	return payload.Keywords, nil
}
