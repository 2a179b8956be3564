package match

import "worksignals/internal/model"

// defaultWeight fills every signal no rule touched.
const defaultWeight = 0.3

// DefaultRequirementFloor is the minimum weight for a derived entry to
// become a match requirement.
const DefaultRequirementFloor = 0.4

// weightPatch is a sparse contribution to a job's signal weight map.
type weightPatch struct {
	Signal   model.SignalID
	Weight   float64 // 0-1
	Expected float64 // -1 to 1
	Reason   string
}

// mergePolicy says how a contributor's patch combines with an entry a
// previous contributor already wrote.
type mergePolicy int

const (
	// mergeMaxWeight keeps the prior entry unless the new weight is
	// strictly higher.
	mergeMaxWeight mergePolicy = iota
	// mergeAverageExpected averages expected values and takes the max of
	// the two weights. Only the location contributor uses this; the
	// asymmetry is inherited behavior pending product sign-off.
	mergeAverageExpected
	// mergeOverwrite replaces the entry unconditionally.
	mergeOverwrite
)

// contributor is one ordered source of signal weights. Contributors are
// folded left-to-right, so later entries in the list take precedence
// according to their merge policy.
type contributor struct {
	Name       string
	Policy     mergePolicy
	Provenance model.WeightProvenance
	Patches    func(job *model.JobPosting) []weightPatch
}

var teamContextPatches = map[model.TeamContext][]weightPatch{
	model.TeamSolo: {
		{Signal: model.SignalAutonomyNeed, Weight: 0.9, Expected: 0.7, Reason: "solo roles run on self-direction"},
		{Signal: model.SignalCollaborationStyle, Weight: 0.4, Expected: -0.3, Reason: "most work happens independently"},
	},
	model.TeamSmall: {
		{Signal: model.SignalCollaborationStyle, Weight: 0.7, Expected: 0.5, Reason: "small teams work shoulder to shoulder"},
		{Signal: model.SignalSocialEnergy, Weight: 0.6, Expected: 0.3, Reason: "daily close contact with teammates"},
	},
	model.TeamCrossFunctional: {
		{Signal: model.SignalCollaborationStyle, Weight: 0.8, Expected: 0.6, Reason: "constant coordination across functions"},
		{Signal: model.SignalCommunicationDirectness, Weight: 0.6, Expected: 0.3, Reason: "cross-team work needs clear asks"},
		{Signal: model.SignalFeedbackOpenness, Weight: 0.5, Expected: 0.3, Reason: "input arrives from many directions"},
	},
}

var locationPatches = map[model.LocationType][]weightPatch{
	model.LocationRemote: {
		{Signal: model.SignalAutonomyNeed, Weight: 0.8, Expected: 0.6, Reason: "remote work demands self-management"},
		{Signal: model.SignalCommunicationDirectness, Weight: 0.5, Expected: 0.3, Reason: "written channels reward explicitness"},
	},
	model.LocationOnsite: {
		{Signal: model.SignalSocialEnergy, Weight: 0.6, Expected: 0.3, Reason: "office days are interaction-heavy"},
		{Signal: model.SignalCollaborationStyle, Weight: 0.5, Expected: 0.2, Reason: "in-person work skews collaborative"},
	},
	model.LocationHybrid: {
		{Signal: model.SignalAutonomyNeed, Weight: 0.6, Expected: 0.3, Reason: "remote days need self-direction"},
		{Signal: model.SignalStructurePreference, Weight: 0.4, Expected: 0.2, Reason: "hybrid schedules reward planning"},
	},
}

// workstyleScale rescales an authored 1-5 expectation to -1..1.
func workstyleScale(v int) float64 {
	return (float64(v) - 3) / 2
}

func teamContextContribution(job *model.JobPosting) []weightPatch {
	return teamContextPatches[job.TeamContext]
}

func locationContribution(job *model.JobPosting) []weightPatch {
	return locationPatches[job.LocationType]
}

func archetypeContribution(job *model.JobPosting) []weightPatch {
	archetype, ok := InferArchetype(job.Title)
	if !ok {
		return nil
	}
	return archetypePatches[archetype]
}

// workstyleContribution converts authored 1-5 expectations into patches,
// including their secondary effects: strong collaboration implies social
// energy, a fast pace implies low routine.
func workstyleContribution(job *model.JobPosting) []weightPatch {
	ws := job.Workstyle
	if ws == nil {
		return nil
	}

	var patches []weightPatch
	if ws.Autonomy > 0 {
		patches = append(patches, weightPatch{
			Signal: model.SignalAutonomyNeed, Weight: 0.9,
			Expected: workstyleScale(ws.Autonomy), Reason: "stated autonomy expectation",
		})
	}
	if ws.Collaboration > 0 {
		patches = append(patches, weightPatch{
			Signal: model.SignalCollaborationStyle, Weight: 0.9,
			Expected: workstyleScale(ws.Collaboration), Reason: "stated collaboration expectation",
		})
		if ws.Collaboration >= 4 {
			patches = append(patches, weightPatch{
				Signal: model.SignalSocialEnergy, Weight: 0.7,
				Expected: 0.4, Reason: "highly collaborative roles are interaction-heavy",
			})
		}
	}
	if ws.Pace > 0 {
		patches = append(patches, weightPatch{
			Signal: model.SignalPacePreference, Weight: 0.8,
			Expected: workstyleScale(ws.Pace), Reason: "stated pace expectation",
		})
		if ws.Pace >= 4 {
			patches = append(patches, weightPatch{
				Signal: model.SignalRoutinePreference, Weight: 0.6,
				Expected: -0.4, Reason: "a fast pace leaves little routine",
			})
		}
	}
	if ws.Structure > 0 {
		patches = append(patches, weightPatch{
			Signal: model.SignalStructurePreference, Weight: 0.9,
			Expected: workstyleScale(ws.Structure), Reason: "stated structure expectation",
		})
	}
	return patches
}

// teamSnapshotContribution applies the fixed threshold rules for an
// explicit team description.
func teamSnapshotContribution(job *model.JobPosting) []weightPatch {
	ts := job.TeamSnapshot
	if ts == nil {
		return nil
	}

	var patches []weightPatch
	if ts.Size > 0 && ts.Size <= 2 {
		patches = append(patches, weightPatch{
			Signal: model.SignalAutonomyNeed, Weight: 0.8,
			Expected: 0.5, Reason: "a team of this size leaves much to the individual",
		})
	}
	if ts.Size >= 8 {
		patches = append(patches,
			weightPatch{
				Signal: model.SignalCollaborationStyle, Weight: 0.8,
				Expected: 0.5, Reason: "a large team means constant coordination",
			},
			weightPatch{
				Signal: model.SignalSocialEnergy, Weight: 0.6,
				Expected: 0.3, Reason: "many teammates, many conversations",
			})
	}
	if ts.CrossFunctional {
		patches = append(patches,
			weightPatch{
				Signal: model.SignalCommunicationDirectness, Weight: 0.7,
				Expected: 0.4, Reason: "cross-functional work needs clear asks",
			},
			weightPatch{
				Signal: model.SignalFeedbackOpenness, Weight: 0.6,
				Expected: 0.3, Reason: "input arrives from outside the team",
			})
	}
	if ts.ReportsTo != "" {
		patches = append(patches, weightPatch{
			Signal: model.SignalLeadershipTendency, Weight: 0.4,
			Expected: -0.2, Reason: "the role works under an established lead",
		})
	}
	return patches
}

// contributors is the full override order: derived sources first, then
// the explicit sources that unconditionally win for the signals they
// touch.
var contributors = []contributor{
	{Name: "team_context", Policy: mergeMaxWeight, Provenance: model.ProvenanceDerived, Patches: teamContextContribution},
	{Name: "location", Policy: mergeAverageExpected, Provenance: model.ProvenanceDerived, Patches: locationContribution},
	{Name: "archetype", Policy: mergeMaxWeight, Provenance: model.ProvenanceDerived, Patches: archetypeContribution},
	{Name: "workstyle_expectations", Policy: mergeOverwrite, Provenance: model.ProvenanceExplicit, Patches: workstyleContribution},
	{Name: "team_snapshot", Policy: mergeOverwrite, Provenance: model.ProvenanceExplicit, Patches: teamSnapshotContribution},
}

// DeriveWeights folds every contributor over the job and fills the rest
// of the vocabulary with the default weight, yielding exactly one entry
// per signal id.
func DeriveWeights(job *model.JobPosting) model.JobSignalWeightMap {
	entries := make(map[model.SignalID]model.SignalWeight)

	for _, c := range contributors {
		for _, p := range c.Patches(job) {
			applyPatch(entries, p, c.Policy, c.Provenance)
		}
	}

	out := model.JobSignalWeightMap{
		JobID:              job.ID,
		Weights:            make([]model.SignalWeight, 0, len(model.AllSignalIDs())),
		HasExplicitWeights: job.Workstyle != nil || job.TeamSnapshot != nil,
	}
	for _, id := range model.AllSignalIDs() {
		entry, ok := entries[id]
		if !ok {
			entry = model.SignalWeight{
				Signal:     id,
				Weight:     defaultWeight,
				Provenance: model.ProvenanceDefault,
			}
		}
		out.Weights = append(out.Weights, entry)
	}
	return out
}

func applyPatch(entries map[model.SignalID]model.SignalWeight, p weightPatch, policy mergePolicy, prov model.WeightProvenance) {
	existing, exists := entries[p.Signal]
	expected := p.Expected

	switch policy {
	case mergeMaxWeight:
		if exists && existing.Weight >= p.Weight {
			return
		}
	case mergeAverageExpected:
		if exists {
			if existing.Expected != nil {
				expected = (*existing.Expected + p.Expected) / 2
			}
			if existing.Weight > p.Weight {
				p.Weight = existing.Weight
			}
		}
	case mergeOverwrite:
		// Explicit sources always win.
	}

	entries[p.Signal] = model.SignalWeight{
		Signal:     p.Signal,
		Weight:     p.Weight,
		Expected:   &expected,
		Provenance: prov,
		Reason:     p.Reason,
	}
}

// RequirementsFromWeightMap extracts the match requirements a weight map
// implies: entries with an expected value and enough weight to matter.
func RequirementsFromWeightMap(m *model.JobSignalWeightMap, floor float64) []model.Requirement {
	if floor <= 0 {
		floor = DefaultRequirementFloor
	}
	var reqs []model.Requirement
	for _, w := range m.Weights {
		if w.Expected == nil || w.Weight < floor {
			continue
		}
		reqs = append(reqs, model.Requirement{
			Signal:   w.Signal,
			Expected: *w.Expected,
			Weight:   w.Weight,
			Reason:   w.Reason,
		})
	}
	return reqs
}
