package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OJ217/music-lab-api/models"
)

func validPayload() models.SubmitSessionPayload {
	return models.SubmitSessionPayload{
		Type:     models.ChordIdentification,
		Duration: 300,
		Result: models.SessionResult{
			Score:         80,
			Correct:       8,
			Incorrect:     2,
			QuestionCount: 10,
		},
		Statistics: []models.QuestionStatistic{
			{Score: 100, Correct: 5, Incorrect: 0, QuestionCount: 5, QuestionType: "major-triad"},
			{Score: 60, Correct: 3, Incorrect: 2, QuestionCount: 5, QuestionType: "minor-triad"},
		},
	}
}

func TestValidateSubmissionAccepts(t *testing.T) {
	assert.Nil(t, validateSubmission(validPayload()))
}

func TestValidateSubmissionResultIdentity(t *testing.T) {
	payload := validPayload()
	payload.Result.Correct = 7 // 7 + 2 != 10

	err := validateSubmission(payload)
	assert.NotNil(t, err)
	assert.Equal(t, 400, err.Status)
}

func TestValidateSubmissionStatisticsIdentity(t *testing.T) {
	payload := validPayload()
	payload.Statistics[1].Incorrect = 3 // 3 + 3 != 5

	err := validateSubmission(payload)
	assert.NotNil(t, err)
	assert.Equal(t, 400, err.Status)
}

func TestValidateSubmissionRequiresTwoStatistics(t *testing.T) {
	payload := validPayload()
	payload.Statistics = payload.Statistics[:1]

	assert.NotNil(t, validateSubmission(payload))
}

func TestValidateSubmissionRejectsUnknownType(t *testing.T) {
	payload := validPayload()
	payload.Type = "rhythm-identification"

	assert.NotNil(t, validateSubmission(payload))
}

func TestValidateSubmissionRejectsSmallQuestionCount(t *testing.T) {
	payload := validPayload()
	payload.Result = models.SessionResult{Score: 100, Correct: 4, Incorrect: 0, QuestionCount: 4}

	assert.NotNil(t, validateSubmission(payload))
}

func TestNewPagination(t *testing.T) {
	meta := newPagination(42, 2, 10)

	assert.Equal(t, int64(42), meta.TotalDocs)
	assert.Equal(t, 5, meta.TotalPages)
	assert.True(t, meta.HasPrevPage)
	assert.True(t, meta.HasNextPage)

	last := newPagination(42, 5, 10)
	assert.False(t, last.HasNextPage)
	assert.True(t, last.HasPrevPage)

	empty := newPagination(0, 1, 10)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasPrevPage)
	assert.False(t, empty.HasNextPage)
}
