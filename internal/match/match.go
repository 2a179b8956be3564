package match

import (
	"math"

	"worksignals/internal/adapter"
	"worksignals/internal/model"
)

const (
	maxStrengthReasons = 3
	maxFrictionReasons = 2
)

// Tiered distance buckets instead of a continuous formula: the
// comparison is fuzzy by nature and a smooth curve would suggest
// precision the data does not have.
func tierScore(distance float64) int {
	switch {
	case distance <= 0.2:
		return 100
	case distance <= 0.5:
		return 70
	case distance <= 1.0:
		return 40
	default:
		return 20
	}
}

// confidenceMultiplier discounts low-confidence candidate signals.
func confidenceMultiplier(confidence float64) float64 {
	switch {
	case confidence >= 0.7:
		return 1.0
	case confidence >= 0.4:
		return 0.8
	default:
		return 0.6
	}
}

// Friction copy is phrased as a growth opportunity, never a deficiency:
// match results are shown to the candidate as well as the employer.
var reasonTemplates = map[string]struct {
	Strength func(name string) string
	Growth   func(name string) string
}{
	adapter.LocaleFa: {
		Strength: func(name string) string {
			return "همسویی بالا در «" + name + "» از نقاط قوت این تطابق است"
		},
		Growth: func(name string) string {
			return "«" + name + "» می‌تواند در این نقش فرصتی برای رشد باشد"
		},
	},
	adapter.LocaleEn: {
		Strength: func(name string) string {
			return "Strong alignment on " + name
		},
		Growth: func(name string) string {
			return name + " offers room to grow in this role"
		},
	},
}

// CandidateToJob scores how well a candidate's signal vector fits a
// job's requirement list. Requirements whose signal the candidate lacks
// are ignored. Reasons use the given locale (Persian by default).
func CandidateToJob(signals []model.Signal, requirements []model.Requirement, locale string) model.MatchResult {
	templates, ok := reasonTemplates[locale]
	if !ok {
		locale = adapter.LocaleFa
		templates = reasonTemplates[locale]
	}

	byID := make(map[model.SignalID]model.Signal, len(signals))
	for _, s := range signals {
		byID[s.ID] = s
	}

	result := model.MatchResult{
		SignalMatches:   []model.SignalMatch{},
		StrengthReasons: []string{},
		FrictionReasons: []string{},
	}

	var scoreSum, weightSum, confSum float64
	contributing := 0

	for _, req := range requirements {
		candidate, ok := byID[req.Signal]
		if !ok {
			continue
		}

		distance := math.Abs(candidate.Value - req.Expected)
		score := tierScore(distance)
		multiplier := confidenceMultiplier(candidate.Confidence)

		result.SignalMatches = append(result.SignalMatches, model.SignalMatch{
			Signal:     req.Signal,
			Score:      score,
			Distance:   distance,
			Weight:     req.Weight,
			Confidence: candidate.Confidence,
		})

		scoreSum += float64(score) * req.Weight * multiplier
		weightSum += req.Weight * multiplier
		confSum += candidate.Confidence
		contributing++

		name := adapter.SignalName(req.Signal, locale)
		if score >= 70 && len(result.StrengthReasons) < maxStrengthReasons {
			result.StrengthReasons = append(result.StrengthReasons, templates.Strength(name))
		}
		if score < 40 && len(result.FrictionReasons) < maxFrictionReasons {
			result.FrictionReasons = append(result.FrictionReasons, templates.Growth(name))
		}
	}

	if weightSum > 0 {
		result.OverallScore = int(math.Round(scoreSum / weightSum))
	}
	if contributing > 0 {
		result.Confidence = confSum / float64(contributing)
	}
	return result
}
