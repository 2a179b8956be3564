package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"worksignals/internal/model"
)

// Version is stamped into every analysis output.
const Version = "2.1.0"

// lowConfidenceThreshold flags tests the caller should treat carefully.
const lowConfidenceThreshold = 0.5

// Analyze validates the input shape, scores every submitted test,
// generates merged signals, and aggregates partial failures into the
// issue list. It is a pure function of its input (apart from the
// generated analysis id and timestamp), holds no state between calls,
// and never panics on malformed-but-well-typed input.
func Analyze(input model.AnalysisInput) model.AnalysisOutput {
	out := model.AnalysisOutput{
		Metadata: model.AnalysisMetadata{
			AnalysisID:    uuid.New().String(),
			SessionID:     input.SessionID,
			GeneratedAt:   time.Now().UTC(),
			EngineVersion: Version,
		},
		Signals:      []model.Signal{},
		SignalGroups: []model.SignalGroup{},
	}

	if msg := validateInput(input); msg != "" {
		out.Status = model.StatusError
		out.Issues = []model.Issue{{
			Severity: model.SeverityError,
			Code:     model.IssueInvalidInput,
			Message:  msg,
		}}
		return out
	}

	purpose := model.PurposeGeneral
	if input.Context != nil && input.Context.Purpose != "" {
		purpose = input.Context.Purpose
	}

	scores := make(map[model.TestType]map[model.Dimension]float64)
	for _, result := range input.TestResults {
		def, ok := DefinitionFor(result.TestType)
		if !ok {
			out.Issues = append(out.Issues, model.Issue{
				Severity: model.SeverityWarning,
				Code:     model.IssueUnknownTestType,
				Message:  fmt.Sprintf("unsupported test type %q", result.TestType),
				TestType: result.TestType,
			})
			out.Metadata.TestSummaries = append(out.Metadata.TestSummaries, model.TestSummary{
				TestType:    result.TestType,
				TestVersion: result.TestVersion,
				Skipped:     true,
			})
			continue
		}

		sr := ScoreTest(result, def)
		summary := model.TestSummary{
			TestType:      result.TestType,
			TestVersion:   result.TestVersion,
			AnsweredCount: sr.AnsweredCount,
			Confidence:    sr.Confidence,
		}

		if !sr.Success {
			summary.Skipped = true
			out.Issues = append(out.Issues, model.Issue{
				Severity: model.SeverityWarning,
				Code:     model.IssueScoringError,
				Message:  sr.Error,
				TestType: result.TestType,
			})
			out.Metadata.TestSummaries = append(out.Metadata.TestSummaries, summary)
			continue
		}

		if sr.Confidence < lowConfidenceThreshold {
			out.Issues = append(out.Issues, model.Issue{
				Severity: model.SeverityWarning,
				Code:     model.IssueLowConfidence,
				Message:  fmt.Sprintf("confidence %.2f is below %.2f", sr.Confidence, lowConfidenceThreshold),
				TestType: result.TestType,
			})
		}

		scores[result.TestType] = sr.Normalized
		out.Metadata.TestSummaries = append(out.Metadata.TestSummaries, summary)
	}

	if len(scores) == 0 {
		out.Status = model.StatusError
		out.Issues = append(out.Issues, model.Issue{
			Severity: model.SeverityError,
			Code:     model.IssueTooFewAnswers,
			Message:  "no test could be scored",
		})
		return out
	}

	out.Signals = GenerateSignals(scores, purpose)
	out.SignalGroups = groupSignals(out.Signals)
	out.OverallConfidence = overallConfidence(out.Signals)

	if len(out.Issues) > 0 {
		out.Status = model.StatusPartial
	} else {
		out.Status = model.StatusSuccess
	}
	return out
}

func validateInput(input model.AnalysisInput) string {
	if input.SessionID == "" {
		return "sessionId must be a non-empty string"
	}
	if len(input.TestResults) == 0 {
		return "testResults must be a non-empty list"
	}
	for i, r := range input.TestResults {
		if r.TestType == "" {
			return fmt.Sprintf("testResults[%d] is missing testType", i)
		}
		if len(r.Answers) == 0 {
			return fmt.Sprintf("testResults[%d] has no answers", i)
		}
	}
	return ""
}

// groupSignals preserves the incoming signal order within each group.
func groupSignals(signals []model.Signal) []model.SignalGroup {
	byCategory := make(map[model.SignalCategory][]model.Signal)
	order := []model.SignalCategory{}
	for _, s := range signals {
		if _, ok := byCategory[s.Category]; !ok {
			order = append(order, s.Category)
		}
		byCategory[s.Category] = append(byCategory[s.Category], s)
	}

	groups := make([]model.SignalGroup, 0, len(order))
	for _, c := range order {
		group := byCategory[c]
		sum := 0.0
		for _, s := range group {
			sum += s.Confidence
		}
		groups = append(groups, model.SignalGroup{
			Category:      c,
			Signals:       group,
			AvgConfidence: sum / float64(len(group)),
		})
	}
	return groups
}

func overallConfidence(signals []model.Signal) float64 {
	if len(signals) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range signals {
		sum += s.Confidence
	}
	return sum / float64(len(signals))
}
