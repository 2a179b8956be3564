package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worksignals/internal/model"
)

func discResult(answers []model.Answer) model.TestResult {
	return model.TestResult{
		TestType:    model.TestTypeDISC,
		TestVersion: "1.0",
		Answers:     answers,
	}
}

// answerAll answers every question of the definition with the same value.
func answerAll(def *model.TestDefinition, value string) []model.Answer {
	answers := make([]model.Answer, 0, len(def.Questions))
	for _, q := range def.Questions {
		answers = append(answers, model.Answer{QuestionID: q.ID, Value: model.AnswerValue(value)})
	}
	return answers
}

func TestScoreTestTooFewAnswers(t *testing.T) {
	def, ok := DefinitionFor(model.TestTypeDISC)
	require.True(t, ok)

	result := discResult([]model.Answer{
		{QuestionID: "d01", Value: "1"},
		{QuestionID: "d02", Value: "2"},
	})

	sr := ScoreTest(result, def)
	assert.False(t, sr.Success)
	assert.Equal(t, "Not enough answers: 2/12", sr.Error)
}

func TestScoreTestFullCompletion(t *testing.T) {
	def, ok := DefinitionFor(model.TestTypeDISC)
	require.True(t, ok)

	sr := ScoreTest(discResult(answerAll(def, "1")), def)
	require.True(t, sr.Success)
	assert.Equal(t, 20, sr.AnsweredCount)
	assert.Equal(t, 1.0, sr.Confidence)

	// Answering "1" everywhere always credits the first-listed dimension,
	// and D is first-listed on every question it appears in.
	assert.InDelta(t, 1.0, sr.Normalized[DimD], 1e-9)
	for _, d := range def.Dimensions {
		v := sr.Normalized[d.ID]
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestScoreTestUnknownQuestionsSkipped(t *testing.T) {
	def, ok := DefinitionFor(model.TestTypeDISC)
	require.True(t, ok)

	answers := answerAll(def, "1")[:12]
	answers = append(answers, model.Answer{QuestionID: "zz99", Value: "1"})

	sr := ScoreTest(discResult(answers), def)
	require.True(t, sr.Success)
	assert.Equal(t, 12, sr.AnsweredCount)
}

func TestScoreTestRapidAnswerPenalty(t *testing.T) {
	def, ok := DefinitionFor(model.TestTypeDISC)
	require.True(t, ok)

	answers := answerAll(def, "1")[:12]
	for i := range answers {
		answers[i].ResponseTimeMs = 500
	}

	sr := ScoreTest(discResult(answers), def)
	require.True(t, sr.Success)
	assert.InDelta(t, 12.0/20.0*0.7, sr.Confidence, 1e-9)
}

func TestScoreTestHollandLikert(t *testing.T) {
	def, ok := DefinitionFor(model.TestTypeHolland)
	require.True(t, ok)

	// Max every Realistic question, min everything else.
	answers := make([]model.Answer, 0, len(def.Questions))
	for _, q := range def.Questions {
		value := model.AnswerValue("1")
		if _, ok := q.Weights[DimRealistic]; ok {
			value = "5"
		}
		answers = append(answers, model.Answer{QuestionID: q.ID, Value: value})
	}

	sr := ScoreTest(model.TestResult{TestType: model.TestTypeHolland, Answers: answers}, def)
	require.True(t, sr.Success, fmt.Sprintf("unexpected error: %s", sr.Error))
	assert.InDelta(t, 1.0, sr.Normalized[DimRealistic], 1e-9)
	assert.InDelta(t, 0.0, sr.Normalized[DimInvestigative], 1e-9)
	assert.InDelta(t, 0.0, sr.Normalized[DimConventional], 1e-9)
}
