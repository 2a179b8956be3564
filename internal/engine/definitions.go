package engine

import "worksignals/internal/model"

// DISC dimensions
const (
	DimD model.Dimension = "D"
	DimI model.Dimension = "I"
	DimS model.Dimension = "S"
	DimC model.Dimension = "C"
)

// Holland (RIASEC) dimensions
const (
	DimRealistic     model.Dimension = "R"
	DimInvestigative model.Dimension = "IN"
	DimArtistic      model.Dimension = "A"
	DimSocial        model.Dimension = "SO"
	DimEnterprising  model.Dimension = "E"
	DimConventional  model.Dimension = "CO"
)

// forcedChoice builds a two-option question: answer "1" credits dimension
// a, answer "2" credits dimension b.
func forcedChoice(id string, a, b model.Dimension) model.QuestionDef {
	return model.QuestionDef{
		ID: id,
		Weights: map[model.Dimension]map[string]float64{
			a: {"1": 1, "2": 0},
			b: {"1": 0, "2": 1},
		},
	}
}

// likert builds a five-point question crediting a single dimension with
// weight value-1, so "1" contributes nothing and "5" the maximum.
func likert(id string, dim model.Dimension) model.QuestionDef {
	return model.QuestionDef{
		ID: id,
		Weights: map[model.Dimension]map[string]float64{
			dim: {"1": 0, "2": 1, "3": 2, "4": 3, "5": 4},
		},
	}
}

// discDefinition: 20 forced-choice questions over D/I/S/C, minimum 12
// answers (60%).
var discDefinition = model.TestDefinition{
	Type:    model.TestTypeDISC,
	Version: "1.0",
	Dimensions: []model.DimensionDef{
		{ID: DimD, Name: "Dominance", Description: "Directness, drive for results and control"},
		{ID: DimI, Name: "Influence", Description: "Outgoing energy, persuasion and optimism"},
		{ID: DimS, Name: "Steadiness", Description: "Patience, consistency and supportiveness"},
		{ID: DimC, Name: "Conscientiousness", Description: "Precision, caution and adherence to standards"},
	},
	Questions: []model.QuestionDef{
		forcedChoice("d01", DimD, DimS),
		forcedChoice("d02", DimI, DimC),
		forcedChoice("d03", DimD, DimC),
		forcedChoice("d04", DimS, DimC),
		forcedChoice("d05", DimD, DimI),
		forcedChoice("d06", DimI, DimS),
		forcedChoice("d07", DimD, DimS),
		forcedChoice("d08", DimS, DimC),
		forcedChoice("d09", DimD, DimC),
		forcedChoice("d10", DimI, DimC),
		forcedChoice("d11", DimD, DimS),
		forcedChoice("d12", DimI, DimS),
		forcedChoice("d13", DimD, DimI),
		forcedChoice("d14", DimS, DimC),
		forcedChoice("d15", DimD, DimS),
		forcedChoice("d16", DimI, DimC),
		forcedChoice("d17", DimD, DimC),
		forcedChoice("d18", DimI, DimS),
		forcedChoice("d19", DimD, DimS),
		forcedChoice("d20", DimD, DimI),
	},
	MinAnswers: 12,
}

// hollandDefinition: 24 five-point Likert questions over RIASEC, minimum
// 18 answers (75%).
var hollandDefinition = model.TestDefinition{
	Type:    model.TestTypeHolland,
	Version: "1.0",
	Dimensions: []model.DimensionDef{
		{ID: DimRealistic, Name: "Realistic", Description: "Hands-on, practical, tool- and machine-oriented work"},
		{ID: DimInvestigative, Name: "Investigative", Description: "Analytical, curious, research-oriented work"},
		{ID: DimArtistic, Name: "Artistic", Description: "Expressive, original, unstructured work"},
		{ID: DimSocial, Name: "Social", Description: "Helping, teaching, people-oriented work"},
		{ID: DimEnterprising, Name: "Enterprising", Description: "Persuading, leading, goal-driven work"},
		{ID: DimConventional, Name: "Conventional", Description: "Orderly, detail-focused, procedural work"},
	},
	Questions: []model.QuestionDef{
		likert("h01", DimRealistic),
		likert("h02", DimInvestigative),
		likert("h03", DimArtistic),
		likert("h04", DimSocial),
		likert("h05", DimEnterprising),
		likert("h06", DimConventional),
		likert("h07", DimRealistic),
		likert("h08", DimInvestigative),
		likert("h09", DimArtistic),
		likert("h10", DimSocial),
		likert("h11", DimEnterprising),
		likert("h12", DimConventional),
		likert("h13", DimRealistic),
		likert("h14", DimInvestigative),
		likert("h15", DimArtistic),
		likert("h16", DimSocial),
		likert("h17", DimEnterprising),
		likert("h18", DimConventional),
		likert("h19", DimRealistic),
		likert("h20", DimInvestigative),
		likert("h21", DimArtistic),
		likert("h22", DimSocial),
		likert("h23", DimEnterprising),
		likert("h24", DimConventional),
	},
	MinAnswers: 18,
}

// definitions is built once at process start and read-only afterwards.
var definitions = map[model.TestType]*model.TestDefinition{
	model.TestTypeDISC:    &discDefinition,
	model.TestTypeHolland: &hollandDefinition,
}

// DefinitionFor returns the static definition for an instrument.
func DefinitionFor(t model.TestType) (*model.TestDefinition, bool) {
	def, ok := definitions[t]
	return def, ok
}

// SupportedTestTypes lists the instruments the engine understands.
func SupportedTestTypes() []model.TestType {
	return []model.TestType{model.TestTypeDISC, model.TestTypeHolland}
}
