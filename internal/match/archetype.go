package match

import (
	"strings"

	"worksignals/internal/model"
)

// titleKeywords maps job-title fragments to role archetypes. Matching is
// a case-insensitive substring search in listed order; the first hit
// wins, so more specific fragments come before generic ones.
var titleKeywords = []struct {
	Keyword   string
	Archetype model.Archetype
}{
	{"lead", model.ArchetypeLeadership},
	{"manager", model.ArchetypeLeadership},
	{"head of", model.ArchetypeLeadership},
	{"director", model.ArchetypeLeadership},
	{"chief", model.ArchetypeLeadership},
	{"supervisor", model.ArchetypeLeadership},
	{"designer", model.ArchetypeCreative},
	{"design", model.ArchetypeCreative},
	{"creative", model.ArchetypeCreative},
	{"content", model.ArchetypeCreative},
	{"brand", model.ArchetypeCreative},
	{"writer", model.ArchetypeCreative},
	{"analyst", model.ArchetypeAnalytical},
	{"data", model.ArchetypeAnalytical},
	{"research", model.ArchetypeAnalytical},
	{"engineer", model.ArchetypeAnalytical},
	{"developer", model.ArchetypeAnalytical},
	{"scientist", model.ArchetypeAnalytical},
	{"support", model.ArchetypeSupport},
	{"customer", model.ArchetypeSupport},
	{"success", model.ArchetypeSupport},
	{"care", model.ArchetypeSupport},
	{"sales", model.ArchetypeSales},
	{"account executive", model.ArchetypeSales},
	{"business development", model.ArchetypeSales},
	{"operations", model.ArchetypeOperations},
	{"coordinator", model.ArchetypeOperations},
	{"logistics", model.ArchetypeOperations},
	{"admin", model.ArchetypeOperations},
}

// archetypePatches is the per-archetype requirement table. The
// leadership table deliberately stays at four signals; it is the
// fallback requirement source when a job carries no explicit weights.
var archetypePatches = map[model.Archetype][]weightPatch{
	model.ArchetypeLeadership: {
		{Signal: model.SignalLeadershipTendency, Weight: 0.9, Expected: 0.8, Reason: "leadership roles call for setting direction"},
		{Signal: model.SignalDecisionSpeed, Weight: 0.7, Expected: 0.5, Reason: "leaders decide with incomplete information"},
		{Signal: model.SignalRiskTolerance, Weight: 0.6, Expected: 0.4, Reason: "leadership involves owning uncertain calls"},
		{Signal: model.SignalCollaborationStyle, Weight: 0.6, Expected: 0.3, Reason: "leading means working through others"},
	},
	model.ArchetypeCreative: {
		{Signal: model.SignalCreativeExpression, Weight: 0.9, Expected: 0.8, Reason: "creative roles live on original ideas"},
		{Signal: model.SignalStructurePreference, Weight: 0.5, Expected: -0.4, Reason: "creative work resists rigid process"},
		{Signal: model.SignalRoutinePreference, Weight: 0.6, Expected: -0.5, Reason: "creative work varies day to day"},
	},
	model.ArchetypeAnalytical: {
		{Signal: model.SignalAnalyticalOrientation, Weight: 0.9, Expected: 0.8, Reason: "analytical roles are evidence-driven"},
		{Signal: model.SignalStructurePreference, Weight: 0.7, Expected: 0.5, Reason: "analytical work benefits from method"},
		{Signal: model.SignalDecisionSpeed, Weight: 0.5, Expected: -0.3, Reason: "analysis rewards deliberation"},
	},
	model.ArchetypeSupport: {
		{Signal: model.SignalCollaborationStyle, Weight: 0.8, Expected: 0.6, Reason: "support work is people work"},
		{Signal: model.SignalSocialEnergy, Weight: 0.7, Expected: 0.4, Reason: "support roles carry constant interaction"},
		{Signal: model.SignalPressureTolerance, Weight: 0.5, Expected: 0.3, Reason: "support roles absorb escalations"},
	},
	model.ArchetypeSales: {
		{Signal: model.SignalSocialEnergy, Weight: 0.9, Expected: 0.7, Reason: "sales runs on outreach and conversation"},
		{Signal: model.SignalAchievementDrive, Weight: 0.8, Expected: 0.6, Reason: "sales is target-driven"},
		{Signal: model.SignalPressureTolerance, Weight: 0.6, Expected: 0.4, Reason: "quota pressure is constant"},
		{Signal: model.SignalRecognitionNeed, Weight: 0.5, Expected: 0.3, Reason: "sales culture celebrates wins"},
	},
	model.ArchetypeOperations: {
		{Signal: model.SignalStructurePreference, Weight: 0.8, Expected: 0.6, Reason: "operations depends on reliable process"},
		{Signal: model.SignalRoutinePreference, Weight: 0.7, Expected: 0.5, Reason: "operations work is cadence-driven"},
		{Signal: model.SignalAnalyticalOrientation, Weight: 0.5, Expected: 0.3, Reason: "operations tracks the details"},
	},
}

// InferArchetype guesses a role archetype from a job title.
func InferArchetype(title string) (model.Archetype, bool) {
	lowered := strings.ToLower(title)
	for _, entry := range titleKeywords {
		if strings.Contains(lowered, entry.Keyword) {
			return entry.Archetype, true
		}
	}
	return "", false
}

// ArchetypeRequirements returns the archetype's table as a requirement
// list, for callers matching without a derived weight map.
func ArchetypeRequirements(a model.Archetype) []model.Requirement {
	patches := archetypePatches[a]
	reqs := make([]model.Requirement, 0, len(patches))
	for _, p := range patches {
		reqs = append(reqs, model.Requirement{
			Signal:   p.Signal,
			Expected: p.Expected,
			Weight:   p.Weight,
			Reason:   p.Reason,
		})
	}
	return reqs
}
