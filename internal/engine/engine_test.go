package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worksignals/internal/model"
)

// dominantAnswers is a 15-answer DISC submission: every D-contrast
// question answered toward D, plus four filler answers.
func dominantAnswers() []model.Answer {
	answers := []model.Answer{}
	for _, id := range []string{"d01", "d03", "d05", "d07", "d09", "d11", "d13", "d15", "d17", "d19", "d20"} {
		answers = append(answers, model.Answer{QuestionID: id, Value: "1"})
	}
	answers = append(answers,
		model.Answer{QuestionID: "d02", Value: "2"},
		model.Answer{QuestionID: "d04", Value: "2"},
		model.Answer{QuestionID: "d06", Value: "2"},
		model.Answer{QuestionID: "d08", Value: "1"},
	)
	return answers
}

func validInput() model.AnalysisInput {
	return model.AnalysisInput{
		SessionID: "session-1",
		TestResults: []model.TestResult{
			{TestType: model.TestTypeDISC, TestVersion: "1.0", Answers: dominantAnswers()},
		},
	}
}

func issueCodes(issues []model.Issue) []model.IssueCode {
	codes := make([]model.IssueCode, 0, len(issues))
	for _, i := range issues {
		codes = append(codes, i.Code)
	}
	return codes
}

func TestAnalyzeRejectsMissingSessionID(t *testing.T) {
	input := validInput()
	input.SessionID = ""

	out := Analyze(input)
	assert.Equal(t, model.StatusError, out.Status)
	assert.Empty(t, out.Signals)
	require.Len(t, out.Issues, 1)
	assert.Equal(t, model.IssueInvalidInput, out.Issues[0].Code)
	assert.Equal(t, model.SeverityError, out.Issues[0].Severity)
}

func TestAnalyzeRejectsEmptyTestResults(t *testing.T) {
	out := Analyze(model.AnalysisInput{SessionID: "session-1"})
	assert.Equal(t, model.StatusError, out.Status)
	require.Len(t, out.Issues, 1)
	assert.Equal(t, model.IssueInvalidInput, out.Issues[0].Code)
}

func TestAnalyzeRejectsResultWithoutAnswers(t *testing.T) {
	input := model.AnalysisInput{
		SessionID:   "session-1",
		TestResults: []model.TestResult{{TestType: model.TestTypeDISC}},
	}

	out := Analyze(input)
	assert.Equal(t, model.StatusError, out.Status)
	require.Len(t, out.Issues, 1)
	assert.Equal(t, model.IssueInvalidInput, out.Issues[0].Code)
}

func TestAnalyzeDominantProfile(t *testing.T) {
	out := Analyze(validInput())

	assert.Equal(t, model.StatusSuccess, out.Status)
	assert.Empty(t, out.Issues)
	require.Len(t, out.Signals, len(model.AllSignalIDs()))
	assert.Len(t, out.SignalGroups, 6)
	assert.Greater(t, out.OverallConfidence, 0.0)

	byID := make(map[model.SignalID]model.Signal)
	for _, s := range out.Signals {
		byID[s.ID] = s
	}
	assert.Greater(t, byID[model.SignalLeadershipTendency].Value, 0.0)
	assert.Greater(t, byID[model.SignalCommunicationDirectness].Value, 0.0)

	require.Len(t, out.Metadata.TestSummaries, 1)
	summary := out.Metadata.TestSummaries[0]
	assert.Equal(t, model.TestTypeDISC, summary.TestType)
	assert.Equal(t, 15, summary.AnsweredCount)
	assert.False(t, summary.Skipped)

	assert.NotEmpty(t, out.Metadata.AnalysisID)
	assert.Equal(t, "session-1", out.Metadata.SessionID)
	assert.Equal(t, Version, out.Metadata.EngineVersion)
	assert.False(t, out.Metadata.GeneratedAt.IsZero())
}

func TestAnalyzeIdempotentExceptMetadata(t *testing.T) {
	first := Analyze(validInput())
	second := Analyze(validInput())

	assert.Equal(t, first.Signals, second.Signals)
	assert.Equal(t, first.SignalGroups, second.SignalGroups)
	assert.Equal(t, first.Status, second.Status)
	assert.NotEqual(t, first.Metadata.AnalysisID, second.Metadata.AnalysisID)
}

func TestAnalyzeUnknownTestTypeAlone(t *testing.T) {
	input := model.AnalysisInput{
		SessionID: "session-1",
		TestResults: []model.TestResult{
			{TestType: "mbti", Answers: []model.Answer{{QuestionID: "q1", Value: "1"}}},
		},
	}

	out := Analyze(input)
	assert.Equal(t, model.StatusError, out.Status)
	assert.Empty(t, out.Signals)
	codes := issueCodes(out.Issues)
	assert.Contains(t, codes, model.IssueUnknownTestType)
	assert.Contains(t, codes, model.IssueTooFewAnswers)

	require.Len(t, out.Metadata.TestSummaries, 1)
	assert.True(t, out.Metadata.TestSummaries[0].Skipped)
}

func TestAnalyzeUnknownTestTypeAlongsideValid(t *testing.T) {
	input := validInput()
	input.TestResults = append(input.TestResults, model.TestResult{
		TestType: "mbti",
		Answers:  []model.Answer{{QuestionID: "q1", Value: "1"}},
	})

	out := Analyze(input)
	assert.Equal(t, model.StatusPartial, out.Status)
	require.Len(t, out.Signals, len(model.AllSignalIDs()))
	assert.Contains(t, issueCodes(out.Issues), model.IssueUnknownTestType)
}

func TestAnalyzeScoringFailureAlone(t *testing.T) {
	input := model.AnalysisInput{
		SessionID: "session-1",
		TestResults: []model.TestResult{
			{TestType: model.TestTypeDISC, Answers: []model.Answer{{QuestionID: "d01", Value: "1"}}},
		},
	}

	out := Analyze(input)
	assert.Equal(t, model.StatusError, out.Status)
	assert.Empty(t, out.Signals)
	codes := issueCodes(out.Issues)
	assert.Contains(t, codes, model.IssueScoringError)
	assert.Contains(t, codes, model.IssueTooFewAnswers)
}

func TestAnalyzeLowConfidenceWarning(t *testing.T) {
	answers := dominantAnswers()[:12]
	for i := range answers {
		answers[i].ResponseTimeMs = 400
	}
	input := model.AnalysisInput{
		SessionID: "session-1",
		TestResults: []model.TestResult{
			{TestType: model.TestTypeDISC, Answers: answers},
		},
	}

	out := Analyze(input)
	assert.Equal(t, model.StatusPartial, out.Status)
	assert.NotEmpty(t, out.Signals)
	assert.Contains(t, issueCodes(out.Issues), model.IssueLowConfidence)
}

func TestAnalyzePurposeReordersSignals(t *testing.T) {
	input := validInput()
	input.Context = &model.AnalysisContext{Purpose: model.PurposeTeamFit}

	out := Analyze(input)
	require.NotEmpty(t, out.Signals)
	assert.Equal(t, model.CategoryCollaboration, out.Signals[0].Category)
	assert.Equal(t, model.CategoryCollaboration, out.SignalGroups[0].Category)
}
