package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worksignals/internal/model"
)

func entryFor(t *testing.T, m model.JobSignalWeightMap, id model.SignalID) model.SignalWeight {
	t.Helper()
	entry, ok := m.Entry(id)
	require.True(t, ok, "no entry for %s", id)
	return entry
}

func TestDeriveWeightsCoversVocabulary(t *testing.T) {
	m := DeriveWeights(&model.JobPosting{ID: "job-1", Title: "Florist"})

	require.Len(t, m.Weights, len(model.AllSignalIDs()))
	for i, id := range model.AllSignalIDs() {
		assert.Equal(t, id, m.Weights[i].Signal, "canonical order broken at %d", i)
	}
	assert.Equal(t, "job-1", m.JobID)
	assert.False(t, m.HasExplicitWeights)

	// A job nothing matches on gets the default everywhere.
	for _, w := range m.Weights {
		assert.Equal(t, 0.3, w.Weight)
		assert.Equal(t, model.ProvenanceDefault, w.Provenance)
		assert.Nil(t, w.Expected)
	}
}

func TestDeriveWeightsRemoteLocation(t *testing.T) {
	m := DeriveWeights(&model.JobPosting{
		ID:           "job-2",
		Title:        "Florist",
		LocationType: model.LocationRemote,
	})

	autonomy := entryFor(t, m, model.SignalAutonomyNeed)
	assert.Equal(t, 0.8, autonomy.Weight)
	require.NotNil(t, autonomy.Expected)
	assert.Equal(t, 0.6, *autonomy.Expected)
	assert.Equal(t, model.ProvenanceDerived, autonomy.Provenance)

	directness := entryFor(t, m, model.SignalCommunicationDirectness)
	assert.Equal(t, 0.5, directness.Weight)

	// Untouched signals keep the default.
	risk := entryFor(t, m, model.SignalRiskTolerance)
	assert.Equal(t, 0.3, risk.Weight)
	assert.Equal(t, model.ProvenanceDefault, risk.Provenance)
}

func TestDeriveWeightsLocationAveragesWithPrior(t *testing.T) {
	m := DeriveWeights(&model.JobPosting{
		ID:           "job-3",
		Title:        "Florist",
		TeamContext:  model.TeamSolo,
		LocationType: model.LocationRemote,
	})

	// Solo sets autonomy 0.9/0.7; remote then averages the expected value
	// and keeps the higher weight.
	autonomy := entryFor(t, m, model.SignalAutonomyNeed)
	assert.Equal(t, 0.9, autonomy.Weight)
	require.NotNil(t, autonomy.Expected)
	assert.InDelta(t, 0.65, *autonomy.Expected, 1e-9)
}

func TestDeriveWeightsExplicitWorkstyleWins(t *testing.T) {
	m := DeriveWeights(&model.JobPosting{
		ID:           "job-4",
		Title:        "Florist",
		TeamContext:  model.TeamSolo,
		LocationType: model.LocationRemote,
		Workstyle:    &model.WorkstyleExpectations{Autonomy: 1},
	})

	autonomy := entryFor(t, m, model.SignalAutonomyNeed)
	assert.Equal(t, 0.9, autonomy.Weight)
	require.NotNil(t, autonomy.Expected)
	assert.Equal(t, -1.0, *autonomy.Expected)
	assert.Equal(t, model.ProvenanceExplicit, autonomy.Provenance)
	assert.True(t, m.HasExplicitWeights)
}

func TestDeriveWeightsWorkstyleSecondaryEffects(t *testing.T) {
	m := DeriveWeights(&model.JobPosting{
		ID:        "job-5",
		Title:     "Florist",
		Workstyle: &model.WorkstyleExpectations{Collaboration: 5, Pace: 4},
	})

	social := entryFor(t, m, model.SignalSocialEnergy)
	require.NotNil(t, social.Expected)
	assert.Equal(t, 0.4, *social.Expected)

	routine := entryFor(t, m, model.SignalRoutinePreference)
	require.NotNil(t, routine.Expected)
	assert.Equal(t, -0.4, *routine.Expected)

	pace := entryFor(t, m, model.SignalPacePreference)
	require.NotNil(t, pace.Expected)
	assert.InDelta(t, 0.5, *pace.Expected, 1e-9)
}

func TestDeriveWeightsTeamSnapshot(t *testing.T) {
	m := DeriveWeights(&model.JobPosting{
		ID:    "job-6",
		Title: "Florist",
		TeamSnapshot: &model.TeamSnapshot{
			Size:            9,
			CrossFunctional: true,
			ReportsTo:       "Head of Operations",
		},
	})

	collab := entryFor(t, m, model.SignalCollaborationStyle)
	assert.Equal(t, 0.8, collab.Weight)
	assert.Equal(t, model.ProvenanceExplicit, collab.Provenance)

	leadership := entryFor(t, m, model.SignalLeadershipTendency)
	require.NotNil(t, leadership.Expected)
	assert.Equal(t, -0.2, *leadership.Expected)

	assert.True(t, m.HasExplicitWeights)
}

func TestWorkstyleScale(t *testing.T) {
	assert.Equal(t, -1.0, workstyleScale(1))
	assert.Equal(t, 0.0, workstyleScale(3))
	assert.Equal(t, 1.0, workstyleScale(5))
}

func TestRequirementsFromWeightMap(t *testing.T) {
	m := DeriveWeights(&model.JobPosting{
		ID:           "job-7",
		Title:        "Florist",
		LocationType: model.LocationRemote,
	})

	reqs := RequirementsFromWeightMap(&m, DefaultRequirementFloor)
	require.Len(t, reqs, 2)

	bySignal := make(map[model.SignalID]model.Requirement)
	for _, r := range reqs {
		bySignal[r.Signal] = r
	}
	assert.Contains(t, bySignal, model.SignalAutonomyNeed)
	assert.Contains(t, bySignal, model.SignalCommunicationDirectness)

	// A higher floor drops the weaker requirement.
	higher := RequirementsFromWeightMap(&m, 0.6)
	require.Len(t, higher, 1)
	assert.Equal(t, model.SignalAutonomyNeed, higher[0].Signal)

	// A non-positive floor falls back to the default.
	fallback := RequirementsFromWeightMap(&m, 0)
	assert.Equal(t, reqs, fallback)
}

func TestInferArchetype(t *testing.T) {
	cases := map[string]model.Archetype{
		"Engineering Team Lead":       model.ArchetypeLeadership,
		"Senior Data Analyst":         model.ArchetypeAnalytical,
		"Brand Designer":              model.ArchetypeCreative,
		"Customer Success Specialist": model.ArchetypeSupport,
		"Account Executive":           model.ArchetypeSales,
		"Operations Coordinator":      model.ArchetypeOperations,
		"HEAD OF MARKETING":           model.ArchetypeLeadership,
	}

	for title, want := range cases {
		got, ok := InferArchetype(title)
		require.True(t, ok, "no archetype for %q", title)
		assert.Equal(t, want, got, "title %q", title)
	}

	_, ok := InferArchetype("Florist")
	assert.False(t, ok)
}

func TestArchetypeRequirementsLeadership(t *testing.T) {
	reqs := ArchetypeRequirements(model.ArchetypeLeadership)
	require.Len(t, reqs, 4)
	assert.Equal(t, model.SignalLeadershipTendency, reqs[0].Signal)
	assert.Equal(t, 0.9, reqs[0].Weight)
	assert.Equal(t, 0.8, reqs[0].Expected)
}
