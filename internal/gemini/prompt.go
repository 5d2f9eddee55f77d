package gemini

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"examforge/internal/models"
)

// Character budgets applied to source text before it is embedded in a
// prompt, to bound request size and cost.
const (
	GenerationPromptBudget = 8000
	KeywordPromptBudget    = 5000
)

// truncationMarker is appended whenever source text is cut to budget.
const truncationMarker = "..."

// TruncateContent cuts text to the given byte budget, appending an
// ellipsis marker when anything was dropped. The cut never splits a
// multi-byte rune; the request encoding rejects invalid UTF-8.
func TruncateContent(text string, budget int) string {
	if len(text) <= budget {
		return text
	}
	for budget > 0 && !utf8.RuneStart(text[budget]) {
		budget--
	}
	return text[:budget] + truncationMarker
}

// BuildGenerationPrompt produces the instruction string for a question
// generation call. It is deterministic and performs no I/O.
func BuildGenerationPrompt(text string, count int, difficulty, questionType string) string {
	content := TruncateContent(text, GenerationPromptBudget)

	var typeRules string
	var optionsField string
	if questionType == models.TypeMCQ {
		typeRules = `For MCQ: exactly 4 options each, exactly one correct. Do not use "all of the above" or "none of the above" as options.`
		optionsField = "- options: array of exactly 4 choices"
	} else {
		typeRules = `For True/False: correctAnswer must be exactly "True" or "False". Do not include an options field.`
		optionsField = "- (no options field for true/false)"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Create %d %s-level %s questions from this text. Only use information from the provided content.\n\n", count, difficulty, questionType)
	sb.WriteString("Difficulty semantics: easy questions test recall of stated facts, medium questions require application or analysis of concepts, hard questions require synthesis or evaluation across the content.\n\n")
	sb.WriteString(typeRules)
	sb.WriteString("\n\nTEXT CONTENT:\n")
	sb.WriteString(content)
	sb.WriteString("\n\nReturn a single JSON object with a \"questions\" array and nothing else. Each question needs:\n")
	sb.WriteString("- id: \"q1\", \"q2\", etc.\n")
	sb.WriteString("- question: clear question text\n")
	sb.WriteString(optionsField)
	sb.WriteString("\n- correctAnswer: the correct choice\n")
	sb.WriteString("- explanation: why the answer is correct (reference the source text)\n")
	fmt.Fprintf(&sb, "- difficulty: %q", difficulty)

	return sb.String()
}

// BuildKeywordPrompt produces the instruction string for a keyword
// extraction call.
func BuildKeywordPrompt(text string) string {
	content := TruncateContent(text, KeywordPromptBudget)

	var sb strings.Builder
	sb.WriteString("Analyze the following text and extract the most important keywords and key phrases that would be relevant for educational assessment.\n\n")
	sb.WriteString("REQUIREMENTS:\n")
	sb.WriteString("- Focus on concepts, terminology, processes, and important facts\n")
	sb.WriteString("- Exclude common words, articles, prepositions, and filler words\n")
	sb.WriteString("- Return 15-25 most significant keywords/phrases\n")
	sb.WriteString("- Prioritize educational and subject-specific terms\n\n")
	sb.WriteString("TEXT CONTENT:\n")
	sb.WriteString(content)
	sb.WriteString("\n\nReturn a single JSON object shaped {\"keywords\": [...]} where keywords is an array of strings.")

	return sb.String()
}
