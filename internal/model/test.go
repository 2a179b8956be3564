package model

import (
	"encoding/json"
	"strconv"
	"time"
)

// TestType identifies a supported psychometric instrument
type TestType string

const (
	TestTypeDISC    TestType = "disc"
	TestTypeHolland TestType = "holland"
)

// Dimension is an instrument-specific measured axis (e.g. DISC's "D").
// Dimension letters never reach user-facing output.
type Dimension string

// DimensionDef describes one axis of an instrument
type DimensionDef struct {
	ID          Dimension `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// QuestionDef carries, per relevant dimension, the weight each answer
// value contributes to that dimension's raw score.
type QuestionDef struct {
	ID      string                           `json:"id"`
	Weights map[Dimension]map[string]float64 `json:"weights"`
}

// TestDefinition is the static, compile-time declaration of an instrument
type TestDefinition struct {
	Type       TestType       `json:"type"`
	Version    string         `json:"version"`
	Dimensions []DimensionDef `json:"dimensions"`
	Questions  []QuestionDef  `json:"questions"`
	MinAnswers int            `json:"minAnswers"` // below this the result is invalid
}

// AnswerValue accepts both string and numeric answer values on the wire
// and normalizes them to the string keys used by the weight tables.
type AnswerValue string

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = AnswerValue(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = AnswerValue(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

// Answer is a single question response within a submitted test
type Answer struct {
	QuestionID     string      `json:"questionId" bson:"questionId"`
	Value          AnswerValue `json:"value" bson:"value"`
	ResponseTimeMs int         `json:"responseTimeMs,omitempty" bson:"responseTimeMs,omitempty"`
}

// TestResult is one completed test submission
type TestResult struct {
	TestType    TestType  `json:"testType" bson:"testType"`
	TestVersion string    `json:"testVersion" bson:"testVersion"`
	CompletedAt time.Time `json:"completedAt" bson:"completedAt"`
	Answers     []Answer  `json:"answers" bson:"answers"`
}
