package engine

import (
	"sort"

	"worksignals/internal/model"
)

// baseConfidenceBoost lifts mapper confidence above the bare average of
// normalized scores so mid-range profiles are not treated as unreliable.
const baseConfidenceBoost = 0.3

// agreementBonus is the maximum confidence boost for perfectly agreeing
// instruments.
const agreementBonus = 0.2

// purposePriorities orders signal categories per analysis purpose.
var purposePriorities = map[model.AnalysisPurpose][]model.SignalCategory{
	model.PurposeJobMatching: {
		model.CategoryWorkStyle, model.CategoryDecisionMaking, model.CategoryMotivation,
		model.CategoryCollaboration, model.CategoryEnvironment, model.CategoryGrowth,
	},
	model.PurposeTeamFit: {
		model.CategoryCollaboration, model.CategoryWorkStyle, model.CategoryEnvironment,
		model.CategoryDecisionMaking, model.CategoryMotivation, model.CategoryGrowth,
	},
	model.PurposeProfileInsight: {
		model.CategoryMotivation, model.CategoryGrowth, model.CategoryWorkStyle,
		model.CategoryDecisionMaking, model.CategoryCollaboration, model.CategoryEnvironment,
	},
	model.PurposeGeneral: {
		model.CategoryWorkStyle, model.CategoryCollaboration, model.CategoryDecisionMaking,
		model.CategoryMotivation, model.CategoryEnvironment, model.CategoryGrowth,
	},
}

// GenerateSignals runs every instrument's mapper over its normalized
// dimension scores, merges same-id signals across instruments, and
// orders the result for the requested purpose.
func GenerateSignals(scores map[model.TestType]map[model.Dimension]float64, purpose model.AnalysisPurpose) []model.Signal {
	contributions := make(map[model.SignalID][]model.Signal)

	// Fixed instrument order keeps output deterministic across calls.
	for _, t := range SupportedTestTypes() {
		dimScores, ok := scores[t]
		if !ok {
			continue
		}
		mapper, ok := MapperFor(t)
		if !ok {
			continue
		}
		base := baseConfidence(dimScores)
		for _, s := range mapper(dimScores, base) {
			contributions[s.ID] = append(contributions[s.ID], s)
		}
	}

	merged := make([]model.Signal, 0, len(contributions))
	for _, id := range model.AllSignalIDs() {
		group, ok := contributions[id]
		if !ok {
			continue
		}
		merged = append(merged, mergeSignals(group))
	}

	orderSignals(merged, purpose)
	return merged
}

// baseConfidence feeds the mappers: the average normalized score lifted
// by a fixed boost, capped at 1.
func baseConfidence(dimScores map[model.Dimension]float64) float64 {
	if len(dimScores) == 0 {
		return baseConfidenceBoost
	}
	sum := 0.0
	for _, v := range dimScores {
		sum += v
	}
	avg := sum / float64(len(dimScores))
	return Clamp01(avg + baseConfidenceBoost)
}

// mergeSignals folds same-id contributions from multiple instruments
// into one signal: confidence-weighted average of values, average
// confidence boosted by how much the sources agree, and a de-duplicated
// union of sources. A single contribution passes through untouched.
func mergeSignals(group []model.Signal) model.Signal {
	if len(group) == 1 {
		out := group[0]
		out.Value = Clamp(out.Value, -1, 1)
		out.Confidence = Clamp01(out.Confidence)
		return out
	}

	var weightedSum, confSum float64
	minVal, maxVal := group[0].Value, group[0].Value
	seen := make(map[model.TestType]bool)
	sources := make([]model.TestType, 0, len(group))

	for _, s := range group {
		weightedSum += s.Value * s.Confidence
		confSum += s.Confidence
		if s.Value < minVal {
			minVal = s.Value
		}
		if s.Value > maxVal {
			maxVal = s.Value
		}
		for _, src := range s.Sources {
			if !seen[src] {
				seen[src] = true
				sources = append(sources, src)
			}
		}
	}

	value := 0.0
	if confSum > 0 {
		value = weightedSum / confSum
	}
	avgConf := confSum / float64(len(group))
	agreement := 1 - (maxVal-minVal)/2
	confidence := Clamp01(avgConf * (1 + agreement*agreementBonus))

	return model.Signal{
		ID:         group[0].ID,
		Category:   group[0].Category,
		Value:      Clamp(value, -1, 1),
		Confidence: confidence,
		Sources:    sources,
	}
}

// orderSignals sorts by the purpose's category priority, then by
// descending confidence within a category.
func orderSignals(signals []model.Signal, purpose model.AnalysisPurpose) {
	priorities, ok := purposePriorities[purpose]
	if !ok {
		priorities = purposePriorities[model.PurposeGeneral]
	}
	rank := make(map[model.SignalCategory]int, len(priorities))
	for i, c := range priorities {
		rank[c] = i
	}

	sort.SliceStable(signals, func(i, j int) bool {
		ri, rj := rank[signals[i].Category], rank[signals[j].Category]
		if ri != rj {
			return ri < rj
		}
		return signals[i].Confidence > signals[j].Confidence
	})
}
