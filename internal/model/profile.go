package model

// SignalDescription is the locale-specific, user-facing rendering of a
// signal. It never exposes instrument names or dimension letters.
type SignalDescription struct {
	CategoryName     string `json:"categoryName"`
	Name             string `json:"name"`
	ShortDescription string `json:"shortDescription"`
	FullDescription  string `json:"fullDescription"`
	Icon             string `json:"icon"`
	Color            string `json:"color"`
}

// ProfileInsight is one narrative insight derived from a strong signal
type ProfileInsight struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	CategoryName string  `json:"categoryName"`
	Strength     float64 `json:"strength"`   // 0-1, |signal value|
	Confidence   float64 `json:"confidence"` // 0-1
}

// WorkStyleSummary is a compact narrative profile for dashboards
type WorkStyleSummary struct {
	PrimaryTraits         []string `json:"primaryTraits"`
	CollaborationMode     string   `json:"collaborationMode"`
	DecisionApproach      string   `json:"decisionApproach"`
	EnvironmentPreference string   `json:"environmentPreference"`
}
