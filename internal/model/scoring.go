package model

// ScoringResult is the per-test outcome of scoring a submission against
// its instrument definition. Ephemeral; never persisted.
type ScoringResult struct {
	Success       bool                  `json:"success"`
	Error         string                `json:"error,omitempty"`
	Raw           map[Dimension]float64 `json:"raw"`        // sum of answer weights
	Normalized    map[Dimension]float64 `json:"normalized"` // 0-1, raw / max attainable
	Confidence    float64               `json:"confidence"` // 0-1
	QuestionCount int                   `json:"questionCount"`
	AnsweredCount int                   `json:"answeredCount"` // recognized answers only
}
