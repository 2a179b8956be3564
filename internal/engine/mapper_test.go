package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worksignals/internal/model"
)

func discScores(d, i, s, c float64) map[model.Dimension]float64 {
	return map[model.Dimension]float64{DimD: d, DimI: i, DimS: s, DimC: c}
}

func TestMapperVocabularyCoverage(t *testing.T) {
	scores := map[model.TestType]map[model.Dimension]float64{
		model.TestTypeDISC: discScores(0.5, 0.5, 0.5, 0.5),
		model.TestTypeHolland: {
			DimRealistic: 0.5, DimInvestigative: 0.5, DimArtistic: 0.5,
			DimSocial: 0.5, DimEnterprising: 0.5, DimConventional: 0.5,
		},
	}

	for _, testType := range SupportedTestTypes() {
		mapper, ok := MapperFor(testType)
		require.True(t, ok)

		signals := mapper(scores[testType], 0.6)
		require.Len(t, signals, len(model.AllSignalIDs()))

		seen := make(map[model.SignalID]bool)
		for _, s := range signals {
			assert.False(t, seen[s.ID], "duplicate signal %s from %s", s.ID, testType)
			seen[s.ID] = true
			assert.Equal(t, s.ID.Category(), s.Category)
			assert.Equal(t, []model.TestType{testType}, s.Sources)
		}
		for _, id := range model.AllSignalIDs() {
			assert.True(t, seen[id], "mapper for %s misses %s", testType, id)
		}
	}
}

func TestMapperOutputBounds(t *testing.T) {
	extremes := []float64{0, 0.25, 0.5, 0.75, 1}

	mapper, ok := MapperFor(model.TestTypeDISC)
	require.True(t, ok)

	for _, d := range extremes {
		for _, i := range extremes {
			for _, s := range extremes {
				for _, c := range extremes {
					for _, conf := range []float64{-0.5, 0, 0.5, 1, 1.5} {
						for _, sig := range mapper(discScores(d, i, s, c), conf) {
							assert.GreaterOrEqual(t, sig.Value, -1.0)
							assert.LessOrEqual(t, sig.Value, 1.0)
							assert.GreaterOrEqual(t, sig.Confidence, 0.0)
							assert.LessOrEqual(t, sig.Confidence, 1.0)
						}
					}
				}
			}
		}
	}
}

func TestMapperDeterminism(t *testing.T) {
	mapper, ok := MapperFor(model.TestTypeDISC)
	require.True(t, ok)

	scores := discScores(0.8, 0.2, 0.4, 0.6)
	first := mapper(scores, 0.7)
	second := mapper(scores, 0.7)
	assert.Equal(t, first, second)
}

func TestDISCMapperPolarity(t *testing.T) {
	mapper, ok := MapperFor(model.TestTypeDISC)
	require.True(t, ok)

	// High D, low everything else: leadership leans strongly positive,
	// routine strongly negative.
	byID := make(map[model.SignalID]model.Signal)
	for _, s := range mapper(discScores(1, 0, 0, 0), 0.7) {
		byID[s.ID] = s
	}
	assert.Greater(t, byID[model.SignalLeadershipTendency].Value, 0.5)
	assert.Less(t, byID[model.SignalRoutinePreference].Value, -0.5)
	assert.Greater(t, byID[model.SignalCommunicationDirectness].Value, 0.5)
}

func TestHollandMapperPolarity(t *testing.T) {
	mapper, ok := MapperFor(model.TestTypeHolland)
	require.True(t, ok)

	// High Artistic, high Conventional is a wash; high Artistic alone
	// pushes creative expression positive.
	byID := make(map[model.SignalID]model.Signal)
	for _, s := range mapper(map[model.Dimension]float64{DimArtistic: 1}, 0.7) {
		byID[s.ID] = s
	}
	assert.Greater(t, byID[model.SignalCreativeExpression].Value, 0.5)

	byID = make(map[model.SignalID]model.Signal)
	for _, s := range mapper(map[model.Dimension]float64{DimEnterprising: 1}, 0.7) {
		byID[s.ID] = s
	}
	assert.Greater(t, byID[model.SignalLeadershipTendency].Value, 0.5)
}
