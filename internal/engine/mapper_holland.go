package engine

import "worksignals/internal/model"

// hollandRules covers the full signal vocabulary from the six RIASEC
// dimension scores.
var hollandRules = []signalRule{
	{Signal: model.SignalStructurePreference, Neg: []model.Dimension{DimArtistic}, Pos: []model.Dimension{DimConventional}},
	{Signal: model.SignalAutonomyNeed, Neg: []model.Dimension{DimSocial}, Pos: []model.Dimension{DimInvestigative, DimRealistic}},
	{Signal: model.SignalRoutinePreference, Neg: []model.Dimension{DimArtistic}, Pos: []model.Dimension{DimConventional, DimRealistic}},
	{Signal: model.SignalCollaborationStyle, Neg: []model.Dimension{DimRealistic}, Pos: []model.Dimension{DimSocial}},
	{Signal: model.SignalSocialEnergy, Neg: []model.Dimension{DimRealistic, DimInvestigative}, Pos: []model.Dimension{DimSocial, DimEnterprising}},
	{Signal: model.SignalCommunicationDirectness, Neg: []model.Dimension{DimConventional}, Pos: []model.Dimension{DimEnterprising}},
	{Signal: model.SignalRiskTolerance, Neg: []model.Dimension{DimConventional}, Pos: []model.Dimension{DimEnterprising, DimArtistic}},
	{Signal: model.SignalAnalyticalOrientation, Neg: []model.Dimension{DimArtistic}, Pos: []model.Dimension{DimInvestigative}},
	{Signal: model.SignalDecisionSpeed, Neg: []model.Dimension{DimInvestigative}, Pos: []model.Dimension{DimEnterprising}},
	{Signal: model.SignalLeadershipTendency, Neg: []model.Dimension{DimConventional}, Pos: []model.Dimension{DimEnterprising}},
	{Signal: model.SignalAchievementDrive, Neg: []model.Dimension{DimArtistic}, Pos: []model.Dimension{DimEnterprising}},
	{Signal: model.SignalRecognitionNeed, Neg: []model.Dimension{DimInvestigative}, Pos: []model.Dimension{DimEnterprising, DimSocial}},
	{Signal: model.SignalPacePreference, Neg: []model.Dimension{DimInvestigative}, Pos: []model.Dimension{DimEnterprising, DimRealistic}},
	{Signal: model.SignalPressureTolerance, Neg: []model.Dimension{DimArtistic}, Pos: []model.Dimension{DimRealistic, DimEnterprising}},
	{Signal: model.SignalLearningOrientation, Neg: []model.Dimension{DimRealistic}, Pos: []model.Dimension{DimInvestigative}},
	{Signal: model.SignalFeedbackOpenness, Neg: []model.Dimension{DimRealistic}, Pos: []model.Dimension{DimSocial}},
	{Signal: model.SignalCreativeExpression, Neg: []model.Dimension{DimConventional}, Pos: []model.Dimension{DimArtistic}},
}

func mapHollandSignals(scores map[model.Dimension]float64, baseConfidence float64) []model.Signal {
	return mapWithRules(model.TestTypeHolland, hollandRules, scores, baseConfidence)
}
