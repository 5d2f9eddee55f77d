package gemini

import (
	"testing"

	"examforge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMCQReply = `{"questions":[
	{"id":"q1","question":"What color is the sky?","options":["Blue","Red","Green","Yellow"],"correctAnswer":"Blue","explanation":"Rayleigh scattering.","difficulty":"easy"},
	{"id":"q2","question":"How many legs does a spider have?","options":["Six","Eight","Four","Ten"],"correctAnswer":"Eight","explanation":"Arachnids have eight legs.","difficulty":"easy"}
]}`

func TestNormalizeResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"raw json passes through", `{"questions":[]}`, `{"questions":[]}`},
		{"json fence", "```json\n{\"questions\":[]}\n```", `{"questions":[]}`},
		{"bare fence", "```\n{\"questions\":[]}\n```", `{"questions":[]}`},
		{"surrounding prose", "Here you go:\n{\"questions\":[]}\nHope that helps!", `{"questions":[]}`},
		{"leading whitespace", "  \n\t{\"a\":1}", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeResponse(tt.raw))
		})
	}
}

func TestParseQuestionsValidMCQ(t *testing.T) {
	questions, err := parseQuestions(validMCQReply, models.TypeMCQ, "easy")
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, "Blue", questions[0].CorrectAnswer)
	assert.Len(t, questions[0].Options, 4)
}

func TestParseQuestionsFencedReply(t *testing.T) {
	questions, err := parseQuestions("```json\n"+validMCQReply+"\n```", models.TypeMCQ, "easy")
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestParseQuestionsDropsCorruptRecords(t *testing.T) {
	// Second record's correctAnswer is not among its options; it must be
	// dropped rather than propagated.
	raw := `{"questions":[
		{"id":"q1","question":"Q?","options":["A","B","C","D"],"correctAnswer":"A","explanation":"e","difficulty":"easy"},
		{"id":"q2","question":"Q?","options":["A","B","C","D"],"correctAnswer":"E","explanation":"e","difficulty":"easy"}
	]}`

	questions, err := parseQuestions(raw, models.TypeMCQ, "easy")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "q1", questions[0].ID)
}

func TestParseQuestionsFailsWhenNothingSurvives(t *testing.T) {
	raw := `{"questions":[
		{"id":"q1","question":"Q?","options":["A","B"],"correctAnswer":"A","explanation":"e","difficulty":"easy"}
	]}`

	_, err := parseQuestions(raw, models.TypeMCQ, "easy")
	assert.ErrorContains(t, err, "failed validation")
}

func TestParseQuestionsErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty reply", "", "empty response"},
		{"not json", "sorry, I cannot do that", "invalid JSON"},
		{"missing questions key", `{"items":[]}`, "no questions"},
		{"empty questions array", `{"questions":[]}`, "no questions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseQuestions(tt.raw, models.TypeMCQ, "easy")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestValidateRecordTrueFalse(t *testing.T) {
	record, err := validateRecord(models.QuestionRecord{
		Question:      "The sun is a star.",
		CorrectAnswer: "true",
		Explanation:   "It is.",
		// Models sometimes invent an options pair despite instructions.
		Options: []string{"True", "False"},
	}, models.TypeTrueFalse, "easy", 1)

	require.NoError(t, err)
	assert.Equal(t, "True", record.CorrectAnswer)
	assert.Nil(t, record.Options)
	assert.Equal(t, "q1", record.ID)
	assert.Equal(t, "easy", record.Difficulty)
}

func TestValidateRecordTrueFalseRejectsOtherAnswers(t *testing.T) {
	_, err := validateRecord(models.QuestionRecord{
		Question:      "Q?",
		CorrectAnswer: "Maybe",
	}, models.TypeTrueFalse, "easy", 1)
	assert.ErrorContains(t, err, "neither True nor False")
}

func TestValidateRecordFillsMissingFields(t *testing.T) {
	record, err := validateRecord(models.QuestionRecord{
		Question:      "Q?",
		Options:       []string{"A", "B", "C", "D"},
		CorrectAnswer: "C",
		Explanation:   "e",
	}, models.TypeMCQ, "hard", 3)

	require.NoError(t, err)
	assert.Equal(t, "q3", record.ID)
	assert.Equal(t, "hard", record.Difficulty)
}

func TestParseKeywords(t *testing.T) {
	keywords, err := parseKeywords("```json\n{\"keywords\":[\"osmosis\",\"diffusion\"]}\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"osmosis", "diffusion"}, keywords)

	_, err = parseKeywords(`{"keywords":[]}`)
	assert.ErrorContains(t, err, "no keywords")

	_, err = parseKeywords("")
	assert.ErrorContains(t, err, "empty response")
}
