package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worksignals/internal/model"
)

func TestBaseConfidence(t *testing.T) {
	assert.InDelta(t, 0.3, baseConfidence(nil), 1e-9)
	assert.InDelta(t, 0.8, baseConfidence(map[model.Dimension]float64{DimD: 0.5}), 1e-9)
	assert.InDelta(t, 1.0, baseConfidence(map[model.Dimension]float64{DimD: 0.9, DimI: 0.9}), 1e-9)
}

func TestMergeSignalsSinglePassesThrough(t *testing.T) {
	in := model.Signal{
		ID:         model.SignalRiskTolerance,
		Category:   model.CategoryDecisionMaking,
		Value:      0.4,
		Confidence: 0.6,
		Sources:    []model.TestType{model.TestTypeDISC},
	}

	out := mergeSignals([]model.Signal{in})
	assert.Equal(t, in, out)
}

func TestMergeSignalsAgreementBoostsConfidence(t *testing.T) {
	group := []model.Signal{
		{ID: model.SignalLeadershipTendency, Category: model.CategoryMotivation,
			Value: 0.9, Confidence: 0.85, Sources: []model.TestType{model.TestTypeDISC}},
		{ID: model.SignalLeadershipTendency, Category: model.CategoryMotivation,
			Value: 0.9, Confidence: 0.8, Sources: []model.TestType{model.TestTypeHolland}},
	}

	out := mergeSignals(group)
	assert.InDelta(t, 0.9, out.Value, 1e-9)
	// Perfect agreement: average confidence 0.825 boosted by 20%.
	assert.InDelta(t, 0.99, out.Confidence, 1e-9)
	assert.Greater(t, out.Confidence, 0.85)
	assert.Equal(t, []model.TestType{model.TestTypeDISC, model.TestTypeHolland}, out.Sources)
}

func TestMergeSignalsDisagreementGetsNoBoost(t *testing.T) {
	group := []model.Signal{
		{ID: model.SignalRiskTolerance, Value: 1, Confidence: 0.8,
			Sources: []model.TestType{model.TestTypeDISC}},
		{ID: model.SignalRiskTolerance, Value: -1, Confidence: 0.8,
			Sources: []model.TestType{model.TestTypeHolland}},
	}

	out := mergeSignals(group)
	// Agreement is zero at maximum disagreement, so plain average.
	assert.InDelta(t, 0.8, out.Confidence, 1e-9)
	assert.InDelta(t, 0.0, out.Value, 1e-9)
}

func TestMergeSignalsOrderIndependent(t *testing.T) {
	a := model.Signal{ID: model.SignalPacePreference, Value: 0.7, Confidence: 0.6,
		Sources: []model.TestType{model.TestTypeDISC}}
	b := model.Signal{ID: model.SignalPacePreference, Value: 0.3, Confidence: 0.9,
		Sources: []model.TestType{model.TestTypeHolland}}

	ab := mergeSignals([]model.Signal{a, b})
	ba := mergeSignals([]model.Signal{b, a})
	assert.InDelta(t, ab.Value, ba.Value, 1e-12)
	assert.InDelta(t, ab.Confidence, ba.Confidence, 1e-12)
	assert.ElementsMatch(t, ab.Sources, ba.Sources)
}

func TestMergeSignalsConfidenceWeightedValue(t *testing.T) {
	group := []model.Signal{
		{ID: model.SignalSocialEnergy, Value: 1, Confidence: 0.9,
			Sources: []model.TestType{model.TestTypeDISC}},
		{ID: model.SignalSocialEnergy, Value: 0, Confidence: 0.1,
			Sources: []model.TestType{model.TestTypeHolland}},
	}

	out := mergeSignals(group)
	assert.InDelta(t, 0.9, out.Value, 1e-9)
}

func fullScores() map[model.TestType]map[model.Dimension]float64 {
	return map[model.TestType]map[model.Dimension]float64{
		model.TestTypeDISC: {DimD: 0.8, DimI: 0.3, DimS: 0.2, DimC: 0.6},
		model.TestTypeHolland: {
			DimRealistic: 0.4, DimInvestigative: 0.7, DimArtistic: 0.2,
			DimSocial: 0.3, DimEnterprising: 0.8, DimConventional: 0.5,
		},
	}
}

func TestGenerateSignalsMergesInstruments(t *testing.T) {
	signals := GenerateSignals(fullScores(), model.PurposeGeneral)
	require.Len(t, signals, len(model.AllSignalIDs()))

	for _, s := range signals {
		assert.Len(t, s.Sources, 2, "signal %s should merge both instruments", s.ID)
		assert.GreaterOrEqual(t, s.Value, -1.0)
		assert.LessOrEqual(t, s.Value, 1.0)
		assert.GreaterOrEqual(t, s.Confidence, 0.0)
		assert.LessOrEqual(t, s.Confidence, 1.0)
	}
}

func TestGenerateSignalsDeterministic(t *testing.T) {
	first := GenerateSignals(fullScores(), model.PurposeJobMatching)
	second := GenerateSignals(fullScores(), model.PurposeJobMatching)
	assert.Equal(t, first, second)
}

func TestGenerateSignalsPurposeOrdering(t *testing.T) {
	byPurpose := map[model.AnalysisPurpose]model.SignalCategory{
		model.PurposeJobMatching:    model.CategoryWorkStyle,
		model.PurposeTeamFit:        model.CategoryCollaboration,
		model.PurposeProfileInsight: model.CategoryMotivation,
		model.PurposeGeneral:        model.CategoryWorkStyle,
	}

	for purpose, wantFirst := range byPurpose {
		signals := GenerateSignals(fullScores(), purpose)
		require.NotEmpty(t, signals)
		assert.Equal(t, wantFirst, signals[0].Category, "purpose %s", purpose)
	}

	// Unknown purposes fall back to the general ordering.
	unknown := GenerateSignals(fullScores(), model.AnalysisPurpose("made_up"))
	general := GenerateSignals(fullScores(), model.PurposeGeneral)
	assert.Equal(t, general, unknown)
}

func TestGenerateSignalsOrderedByConfidenceWithinCategory(t *testing.T) {
	signals := GenerateSignals(fullScores(), model.PurposeGeneral)
	for i := 1; i < len(signals); i++ {
		if signals[i].Category == signals[i-1].Category {
			assert.GreaterOrEqual(t, signals[i-1].Confidence, signals[i].Confidence)
		}
	}
}

func TestGenerateSignalsSingleInstrument(t *testing.T) {
	scores := map[model.TestType]map[model.Dimension]float64{
		model.TestTypeDISC: {DimD: 0.8, DimI: 0.3, DimS: 0.2, DimC: 0.6},
	}

	signals := GenerateSignals(scores, model.PurposeGeneral)
	require.Len(t, signals, len(model.AllSignalIDs()))
	for _, s := range signals {
		assert.Equal(t, []model.TestType{model.TestTypeDISC}, s.Sources)
	}
}
