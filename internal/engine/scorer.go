package engine

import (
	"fmt"

	"worksignals/internal/model"
)

// Rapid-answer penalty: answers faster than this are implausible for a
// considered response. Tunable heuristic, not a derived law.
const (
	rapidAnswerMs       = 1000
	rapidAnswerMaxShare = 0.3
	rapidAnswerPenalty  = 0.7
)

// ScoreTest converts a completed test into per-dimension raw and
// normalized scores plus a completion-derived confidence. Answers whose
// question id is not in the definition are skipped silently and do not
// count toward completion.
func ScoreTest(result model.TestResult, def *model.TestDefinition) model.ScoringResult {
	sr := model.ScoringResult{
		Raw:           make(map[model.Dimension]float64),
		Normalized:    make(map[model.Dimension]float64),
		QuestionCount: len(def.Questions),
	}

	if len(result.Answers) < def.MinAnswers {
		sr.Error = fmt.Sprintf("Not enough answers: %d/%d", len(result.Answers), def.MinAnswers)
		return sr
	}

	byID := make(map[string]*model.QuestionDef, len(def.Questions))
	for i := range def.Questions {
		byID[def.Questions[i].ID] = &def.Questions[i]
	}

	denominators := make(map[model.Dimension]float64)
	rapid := 0
	for _, answer := range result.Answers {
		if answer.ResponseTimeMs > 0 && answer.ResponseTimeMs < rapidAnswerMs {
			rapid++
		}

		q, ok := byID[answer.QuestionID]
		if !ok {
			continue
		}
		sr.AnsweredCount++

		for dim, weights := range q.Weights {
			sr.Raw[dim] += weights[string(answer.Value)]
			denominators[dim] += maxWeight(weights)
		}
	}

	for _, d := range def.Dimensions {
		if denominators[d.ID] > 0 {
			sr.Normalized[d.ID] = sr.Raw[d.ID] / denominators[d.ID]
		} else {
			sr.Normalized[d.ID] = 0
		}
	}

	confidence := float64(sr.AnsweredCount) / float64(len(def.Questions))
	if len(result.Answers) > 0 {
		share := float64(rapid) / float64(len(result.Answers))
		if share > rapidAnswerMaxShare {
			confidence *= rapidAnswerPenalty
		}
	}
	sr.Confidence = Clamp01(confidence)
	sr.Success = true
	return sr
}

func maxWeight(weights map[string]float64) float64 {
	max := 0.0
	for _, w := range weights {
		if w > max {
			max = w
		}
	}
	return max
}
