// Package gemini wraps the Google generative AI client for question
// generation and keyword extraction.
package gemini

import (
	"context"
	"fmt"
	"log"
	"time"

	"examforge/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	// ModelName is the Gemini model to use.
	ModelName = "gemini-2.0-flash"
	// requestTimeout bounds a single model call so a slow upstream cannot
	// hang a request indefinitely.
	requestTimeout = 60 * time.Second
)

// Client wraps the Gemini client.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewClient creates a new Gemini client. A missing API key is an error so
// the caller can fail process start rather than every request.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(ModelName)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.2)
	model.SetTopK(40)
	model.SetTopP(0.95)

	return &Client{client: client, model: model}, nil
}

// Close closes the Gemini client.
func (c *Client) Close() {
	c.client.Close()
}

// GenerateQuestions builds the generation prompt, invokes the model once,
// and parses/validates the reply into question records. Any failure in the
// chain surfaces as a single categorized error; there is no retry and no
// partial result.
func (c *Client) GenerateQuestions(ctx context.Context, text string, req models.GenerateQuestionsRequest) ([]models.QuestionRecord, error) {
	prompt := BuildGenerationPrompt(text, req.QuestionCount, req.Difficulty, req.QuestionType)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	questions, err := parseQuestions(raw, req.QuestionType, req.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	log.Printf("INFO: generated %d valid questions (requested %d)", len(questions), req.QuestionCount)
	return questions, nil
}

// ExtractKeywords asks the model for the most assessment-relevant keywords
// in the text.
func (c *Client) ExtractKeywords(ctx context.Context, text string) ([]string, error) {
	prompt := BuildKeywordPrompt(text)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("keyword extraction failed: %w", err)
	}

	keywords, err := parseKeywords(raw)
	if err != nil {
		return nil, fmt.Errorf("keyword extraction failed: %w", err)
	}
	return keywords, nil
}

// generate performs one model call and returns the concatenated text parts
// of the first candidate.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no content")
	}

	var raw string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			raw += string(text)
		}
	}
	if raw == "" {
		return "", fmt.Errorf("model returned empty text")
	}
	return raw, nil
}
