package models

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty levels accepted by the generation endpoint.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question types accepted by the generation endpoint.
const (
	TypeMCQ       = "mcq"
	TypeTrueFalse = "truefalse"
)

// Document represents an uploaded PDF after successful text extraction.
// Documents are write-once: they are created on upload and never mutated.
type Document struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	FileSize    int64     `json:"fileSize"`
	TextContent string    `json:"textContent"`
	WordCount   int       `json:"wordCount"`
	PageCount   int       `json:"pageCount"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// QuestionRecord is one generated quiz item. Options is present only for MCQ
// questions; true/false questions carry the implicit {"True","False"} pair.
type QuestionRecord struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
}

// QuestionSet is a generated batch of questions tied to one source document
// and one generation configuration.
type QuestionSet struct {
	ID            uuid.UUID        `json:"id"`
	DocumentID    uuid.UUID        `json:"documentId"`
	QuestionCount int              `json:"questionCount"`
	Difficulty    string           `json:"difficulty"`
	QuestionType  string           `json:"questionType"`
	Questions     []QuestionRecord `json:"questions"`
	GeneratedAt   time.Time        `json:"generatedAt"`
}

// GenerateQuestionsRequest is the body of POST /api/generate-questions.
// The binding tags mirror the accepted parameter ranges exactly.
type GenerateQuestionsRequest struct {
	DocumentID    string `json:"documentId" binding:"required,uuid"`
	QuestionCount int    `json:"questionCount" binding:"required,min=5,max=30"`
	Difficulty    string `json:"difficulty" binding:"required,oneof=easy medium hard"`
	QuestionType  string `json:"questionType" binding:"required,oneof=mcq truefalse"`
}

// PaperMetadata is the summary line printed on rendered documents and echoed
// in the generation response.
type PaperMetadata struct {
	QuestionCount int    `json:"questionCount"`
	Difficulty    string `json:"difficulty"`
	QuestionType  string `json:"questionType"`
	GeneratedAt   string `json:"generatedAt"`
}

// QuestionPaper is the rendering request handed to the document renderer.
type QuestionPaper struct {
	Title        string           `json:"title"`
	Instructions string           `json:"instructions"`
	Questions    []QuestionRecord `json:"questions"`
	Metadata     PaperMetadata    `json:"metadata"`
}

// DocumentSummary is the document portion of the upload response. It omits
// the extracted text, which is never sent back to the client.
type DocumentSummary struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	FileSize  int64     `json:"fileSize"`
	WordCount int       `json:"wordCount"`
	PageCount int       `json:"pageCount"`
}

// UploadResponse is the body returned by POST /api/upload.
type UploadResponse struct {
	Document DocumentSummary `json:"document"`
	Keywords []string        `json:"keywords"`
}

// GenerateQuestionsResponse is the body returned by POST /api/generate-questions.
type GenerateQuestionsResponse struct {
	QuestionSetID uuid.UUID        `json:"questionSetId"`
	Questions     []QuestionRecord `json:"questions"`
	Metadata      PaperMetadata    `json:"metadata"`
}
