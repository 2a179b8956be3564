package model

import "time"

// LocationType describes where a job is performed
type LocationType string

const (
	LocationRemote LocationType = "remote"
	LocationOnsite LocationType = "onsite"
	LocationHybrid LocationType = "hybrid"
)

// TeamContext is the coarse team setting a role operates in
type TeamContext string

const (
	TeamSolo            TeamContext = "solo"
	TeamSmall           TeamContext = "small_team"
	TeamCrossFunctional TeamContext = "cross_functional"
)

// Archetype is a coarse role category inferred from job titles
type Archetype string

const (
	ArchetypeLeadership Archetype = "leadership"
	ArchetypeCreative   Archetype = "creative"
	ArchetypeAnalytical Archetype = "analytical"
	ArchetypeSupport    Archetype = "support"
	ArchetypeSales      Archetype = "sales"
	ArchetypeOperations Archetype = "operations"
)

// WorkstyleExpectations are explicit 1-5 scale expectations authored on a
// job posting. A zero field means the author left it unset.
type WorkstyleExpectations struct {
	Autonomy      int `json:"autonomy,omitempty" bson:"autonomy,omitempty"`           // 1-5
	Collaboration int `json:"collaboration,omitempty" bson:"collaboration,omitempty"` // 1-5
	Pace          int `json:"pace,omitempty" bson:"pace,omitempty"`                   // 1-5
	Structure     int `json:"structure,omitempty" bson:"structure,omitempty"`         // 1-5
}

// TeamSnapshot is an explicit description of the hiring team
type TeamSnapshot struct {
	Size            int    `json:"size" bson:"size"`
	CrossFunctional bool   `json:"crossFunctional" bson:"crossFunctional"`
	ReportsTo       string `json:"reportsTo,omitempty" bson:"reportsTo,omitempty"`
}

// JobPosting is the subset of a job record the weight derivation reads
type JobPosting struct {
	ID           string                 `json:"id" bson:"_id,omitempty"`
	Title        string                 `json:"title" bson:"title"`
	LocationType LocationType           `json:"locationType,omitempty" bson:"locationType,omitempty"`
	TeamContext  TeamContext            `json:"teamContext,omitempty" bson:"teamContext,omitempty"`
	Workstyle    *WorkstyleExpectations `json:"workstyle,omitempty" bson:"workstyle,omitempty"`
	TeamSnapshot *TeamSnapshot          `json:"teamSnapshot,omitempty" bson:"teamSnapshot,omitempty"`
	CreatedAt    time.Time              `json:"createdAt" bson:"createdAt"`
}

// WeightProvenance tags where a signal weight came from
type WeightProvenance string

const (
	ProvenanceExplicit WeightProvenance = "explicit"
	ProvenanceDerived  WeightProvenance = "derived"
	ProvenanceDefault  WeightProvenance = "default"
)

// SignalWeight is one entry of a job's signal weight map
type SignalWeight struct {
	Signal     SignalID         `json:"signal" bson:"signal"`
	Weight     float64          `json:"weight" bson:"weight"` // 0-1
	Expected   *float64         `json:"expected,omitempty" bson:"expected,omitempty"`
	Provenance WeightProvenance `json:"provenance" bson:"provenance"`
	Reason     string           `json:"reason,omitempty" bson:"reason,omitempty"`
}

// JobSignalWeightMap covers the full signal vocabulary for one job:
// exactly one entry per signal id, in canonical order.
type JobSignalWeightMap struct {
	JobID              string         `json:"jobId" bson:"jobId"`
	Weights            []SignalWeight `json:"weights" bson:"weights"`
	HasExplicitWeights bool           `json:"hasExplicitWeights" bson:"hasExplicitWeights"`
}

// Entry returns the weight entry for a signal id.
func (m *JobSignalWeightMap) Entry(id SignalID) (SignalWeight, bool) {
	for _, w := range m.Weights {
		if w.Signal == id {
			return w, true
		}
	}
	return SignalWeight{}, false
}

// Requirement is one expected signal a candidate is matched against
type Requirement struct {
	Signal   SignalID `json:"signal"`
	Expected float64  `json:"expected"` // -1 to 1
	Weight   float64  `json:"weight"`   // 0-1
	Reason   string   `json:"reason,omitempty"`
}

// SignalMatch is the per-signal outcome of a candidate/job comparison
type SignalMatch struct {
	Signal     SignalID `json:"signal"`
	Score      int      `json:"score"`    // tiered: 100, 70, 40, 20
	Distance   float64  `json:"distance"` // |candidate - expected|
	Weight     float64  `json:"weight"`
	Confidence float64  `json:"confidence"`
}

// MatchResult is the outcome of matching a candidate against a job
type MatchResult struct {
	OverallScore    int           `json:"overallScore"` // 0-100
	SignalMatches   []SignalMatch `json:"signalMatches"`
	StrengthReasons []string      `json:"strengthReasons"`
	FrictionReasons []string      `json:"frictionReasons"`
	Confidence      float64       `json:"confidence"`
}
