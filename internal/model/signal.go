package model

// SignalCategory groups related work-style signals
type SignalCategory string

const (
	CategoryWorkStyle      SignalCategory = "work_style"
	CategoryCollaboration  SignalCategory = "collaboration"
	CategoryDecisionMaking SignalCategory = "decision_making"
	CategoryMotivation     SignalCategory = "motivation"
	CategoryEnvironment    SignalCategory = "environment"
	CategoryGrowth         SignalCategory = "growth"
)

// SignalID is the closed vocabulary of work-style signals shared by all
// test instruments. Adding an id here requires updating every mapper,
// the weight tables, and the description tables.
type SignalID string

const (
	SignalStructurePreference     SignalID = "structure_preference"
	SignalAutonomyNeed            SignalID = "autonomy_need"
	SignalRoutinePreference       SignalID = "routine_preference"
	SignalCollaborationStyle      SignalID = "collaboration_style"
	SignalSocialEnergy            SignalID = "social_energy"
	SignalCommunicationDirectness SignalID = "communication_directness"
	SignalRiskTolerance           SignalID = "risk_tolerance"
	SignalAnalyticalOrientation   SignalID = "analytical_orientation"
	SignalDecisionSpeed           SignalID = "decision_speed"
	SignalLeadershipTendency      SignalID = "leadership_tendency"
	SignalAchievementDrive        SignalID = "achievement_drive"
	SignalRecognitionNeed         SignalID = "recognition_need"
	SignalPacePreference          SignalID = "pace_preference"
	SignalPressureTolerance       SignalID = "pressure_tolerance"
	SignalLearningOrientation     SignalID = "learning_orientation"
	SignalFeedbackOpenness        SignalID = "feedback_openness"
	SignalCreativeExpression      SignalID = "creative_expression"
)

// AllSignalIDs returns the full vocabulary in its canonical order.
func AllSignalIDs() []SignalID {
	return []SignalID{
		SignalStructurePreference,
		SignalAutonomyNeed,
		SignalRoutinePreference,
		SignalCollaborationStyle,
		SignalSocialEnergy,
		SignalCommunicationDirectness,
		SignalRiskTolerance,
		SignalAnalyticalOrientation,
		SignalDecisionSpeed,
		SignalLeadershipTendency,
		SignalAchievementDrive,
		SignalRecognitionNeed,
		SignalPacePreference,
		SignalPressureTolerance,
		SignalLearningOrientation,
		SignalFeedbackOpenness,
		SignalCreativeExpression,
	}
}

// Category returns the category a signal id belongs to.
func (id SignalID) Category() SignalCategory {
	switch id {
	case SignalStructurePreference, SignalAutonomyNeed, SignalRoutinePreference:
		return CategoryWorkStyle
	case SignalCollaborationStyle, SignalSocialEnergy, SignalCommunicationDirectness:
		return CategoryCollaboration
	case SignalRiskTolerance, SignalAnalyticalOrientation, SignalDecisionSpeed:
		return CategoryDecisionMaking
	case SignalLeadershipTendency, SignalAchievementDrive, SignalRecognitionNeed:
		return CategoryMotivation
	case SignalPacePreference, SignalPressureTolerance:
		return CategoryEnvironment
	case SignalLearningOrientation, SignalFeedbackOpenness, SignalCreativeExpression:
		return CategoryGrowth
	}
	return CategoryWorkStyle
}

// Valid reports whether the id belongs to the vocabulary.
func (id SignalID) Valid() bool {
	for _, known := range AllSignalIDs() {
		if id == known {
			return true
		}
	}
	return false
}

// Signal is a bipolar, confidence-weighted work-style indicator.
// The negative and positive poles of Value carry distinct meanings per
// signal id; it is not a magnitude.
type Signal struct {
	ID         SignalID       `json:"id" bson:"id"`
	Category   SignalCategory `json:"category" bson:"category"`
	Value      float64        `json:"value" bson:"value"`           // -1 to 1
	Confidence float64        `json:"confidence" bson:"confidence"` // 0-1
	Sources    []TestType     `json:"sources" bson:"sources"`
}
