package engine

import "worksignals/internal/model"

// discRules covers the full signal vocabulary from the four DISC
// dimension scores. Dimension pairs differ from the Holland rules on
// purpose: each instrument measures the shared signals its own way,
// which is what makes cross-instrument merging meaningful.
var discRules = []signalRule{
	{Signal: model.SignalStructurePreference, Neg: []model.Dimension{DimD}, Pos: []model.Dimension{DimC}},
	{Signal: model.SignalAutonomyNeed, Neg: []model.Dimension{DimS}, Pos: []model.Dimension{DimD}},
	{Signal: model.SignalRoutinePreference, Neg: []model.Dimension{DimD}, Pos: []model.Dimension{DimS}},
	{Signal: model.SignalCollaborationStyle, Neg: []model.Dimension{DimD}, Pos: []model.Dimension{DimI, DimS}},
	{Signal: model.SignalSocialEnergy, Neg: []model.Dimension{DimC}, Pos: []model.Dimension{DimI}},
	{Signal: model.SignalCommunicationDirectness, Neg: []model.Dimension{DimS, DimC}, Pos: []model.Dimension{DimD}},
	{Signal: model.SignalRiskTolerance, Neg: []model.Dimension{DimC}, Pos: []model.Dimension{DimD}},
	{Signal: model.SignalAnalyticalOrientation, Neg: []model.Dimension{DimI}, Pos: []model.Dimension{DimC}},
	{Signal: model.SignalDecisionSpeed, Neg: []model.Dimension{DimS, DimC}, Pos: []model.Dimension{DimD, DimI}},
	{Signal: model.SignalLeadershipTendency, Neg: []model.Dimension{DimS}, Pos: []model.Dimension{DimD}},
	{Signal: model.SignalAchievementDrive, Neg: []model.Dimension{DimS}, Pos: []model.Dimension{DimD, DimC}},
	{Signal: model.SignalRecognitionNeed, Neg: []model.Dimension{DimC}, Pos: []model.Dimension{DimI}},
	{Signal: model.SignalPacePreference, Neg: []model.Dimension{DimS}, Pos: []model.Dimension{DimD, DimI}},
	{Signal: model.SignalPressureTolerance, Neg: []model.Dimension{DimI, DimC}, Pos: []model.Dimension{DimD, DimS}},
	{Signal: model.SignalLearningOrientation, Neg: []model.Dimension{DimS}, Pos: []model.Dimension{DimI, DimC}},
	{Signal: model.SignalFeedbackOpenness, Neg: []model.Dimension{DimD}, Pos: []model.Dimension{DimI, DimS}},
	{Signal: model.SignalCreativeExpression, Neg: []model.Dimension{DimC}, Pos: []model.Dimension{DimI}},
}

func mapDISCSignals(scores map[model.Dimension]float64, baseConfidence float64) []model.Signal {
	return mapWithRules(model.TestTypeDISC, discRules, scores, baseConfidence)
}
