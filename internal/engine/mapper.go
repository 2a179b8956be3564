package engine

import "worksignals/internal/model"

// SignalMapper converts an instrument's normalized dimension scores into
// the shared signal vocabulary. Mappers are pure and total: the same
// inputs always yield the same outputs.
type SignalMapper func(scores map[model.Dimension]float64, baseConfidence float64) []model.Signal

// signalRule derives one signal by contrasting two (possibly composite)
// dimension scores through the bipolar transform: positive pulls toward
// Pos, negative toward Neg.
type signalRule struct {
	Signal model.SignalID
	Neg    []model.Dimension
	Pos    []model.Dimension
}

// mappers is built once at process start and read-only afterwards.
var mappers = map[model.TestType]SignalMapper{
	model.TestTypeDISC:    mapDISCSignals,
	model.TestTypeHolland: mapHollandSignals,
}

// MapperFor returns the signal mapper for an instrument.
func MapperFor(t model.TestType) (SignalMapper, bool) {
	m, ok := mappers[t]
	return m, ok
}

func mapWithRules(t model.TestType, rules []signalRule, scores map[model.Dimension]float64, baseConfidence float64) []model.Signal {
	signals := make([]model.Signal, 0, len(rules))
	for _, r := range rules {
		signals = append(signals, model.Signal{
			ID:         r.Signal,
			Category:   r.Signal.Category(),
			Value:      Bipolar(composite(scores, r.Neg), composite(scores, r.Pos)),
			Confidence: Clamp01(baseConfidence),
			Sources:    []model.TestType{t},
		})
	}
	return signals
}

// composite averages the scores of the listed dimensions.
func composite(scores map[model.Dimension]float64, dims []model.Dimension) float64 {
	if len(dims) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range dims {
		sum += scores[d]
	}
	return sum / float64(len(dims))
}
