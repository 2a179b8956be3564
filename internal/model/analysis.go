package model

import "time"

// AnalysisPurpose drives the ordering of generated signals
type AnalysisPurpose string

const (
	PurposeJobMatching    AnalysisPurpose = "job_matching"
	PurposeTeamFit        AnalysisPurpose = "team_fit"
	PurposeProfileInsight AnalysisPurpose = "profile_insight"
	PurposeGeneral        AnalysisPurpose = "general"
)

// AnalysisStatus is the overall outcome of an analyze call
type AnalysisStatus string

const (
	StatusSuccess AnalysisStatus = "success"
	StatusPartial AnalysisStatus = "partial"
	StatusError   AnalysisStatus = "error"
)

// IssueSeverity classifies an issue as fatal or recoverable
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

// IssueCode is the closed set of engine issue codes
type IssueCode string

const (
	IssueInvalidInput          IssueCode = "INVALID_INPUT"
	IssueUnknownTestType       IssueCode = "UNKNOWN_TEST_TYPE"
	IssueInvalidTestVersion    IssueCode = "INVALID_TEST_VERSION" // reserved
	IssueIncompleteTest        IssueCode = "INCOMPLETE_TEST"      // reserved
	IssueTooFewAnswers         IssueCode = "TOO_FEW_ANSWERS"
	IssueScoringError          IssueCode = "SCORING_ERROR"
	IssueSignalGenerationError IssueCode = "SIGNAL_GENERATION_ERROR" // reserved
	IssueLowConfidence         IssueCode = "LOW_CONFIDENCE"
	IssueInconsistentAnswers   IssueCode = "INCONSISTENT_ANSWERS" // reserved
)

// Issue records a problem encountered while processing an analysis
type Issue struct {
	Severity IssueSeverity `json:"severity" bson:"severity"`
	Code     IssueCode     `json:"code" bson:"code"`
	Message  string        `json:"message" bson:"message"`
	TestType TestType      `json:"testType,omitempty" bson:"testType,omitempty"`
}

// AnalysisContext carries optional caller preferences
type AnalysisContext struct {
	Purpose AnalysisPurpose `json:"purpose,omitempty"`
	Locale  string          `json:"locale,omitempty"`
}

// AnalysisInput is the engine facade's input contract
type AnalysisInput struct {
	SessionID   string           `json:"sessionId"`
	TestResults []TestResult     `json:"testResults"`
	Context     *AnalysisContext `json:"context,omitempty"`
}

// TestSummary reports how one submitted test was processed
type TestSummary struct {
	TestType      TestType `json:"testType" bson:"testType"`
	TestVersion   string   `json:"testVersion" bson:"testVersion"`
	AnsweredCount int      `json:"answeredCount" bson:"answeredCount"`
	Confidence    float64  `json:"confidence" bson:"confidence"`
	Skipped       bool     `json:"skipped" bson:"skipped"`
}

// AnalysisMetadata describes one analyze invocation
type AnalysisMetadata struct {
	AnalysisID    string        `json:"analysisId" bson:"analysisId"`
	SessionID     string        `json:"sessionId" bson:"sessionId"`
	GeneratedAt   time.Time     `json:"generatedAt" bson:"generatedAt"`
	EngineVersion string        `json:"engineVersion" bson:"engineVersion"`
	TestSummaries []TestSummary `json:"testSummaries" bson:"testSummaries"`
}

// SignalGroup is the per-category view of the merged signals
type SignalGroup struct {
	Category      SignalCategory `json:"category" bson:"category"`
	Signals       []Signal       `json:"signals" bson:"signals"`
	AvgConfidence float64        `json:"avgConfidence" bson:"avgConfidence"`
}

// AnalysisOutput is the engine facade's output contract.
// When Status is error, Signals is empty and Issues carries at least
// one error-severity entry.
type AnalysisOutput struct {
	Status            AnalysisStatus   `json:"status" bson:"status"`
	Metadata          AnalysisMetadata `json:"metadata" bson:"metadata"`
	Signals           []Signal         `json:"signals" bson:"signals"`
	SignalGroups      []SignalGroup    `json:"signalGroups" bson:"signalGroups"`
	OverallConfidence float64          `json:"overallConfidence" bson:"overallConfidence"`
	Issues            []Issue          `json:"issues,omitempty" bson:"issues,omitempty"`
}

// AnalysisRecord wraps a persisted analysis output. Persistence is the
// API layer's concern; the engine itself stays stateless.
type AnalysisRecord struct {
	ID        string         `json:"id" bson:"_id"`
	SessionID string         `json:"sessionId" bson:"sessionId"`
	Output    AnalysisOutput `json:"output" bson:"output"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}
