package adapter

import (
	"math"
	"sort"

	"worksignals/internal/model"
)

const (
	maxInsights        = 8
	minInsightStrength = 0.3
	minSummaryStrength = 0.3
	maxPrimaryTraits   = 3
	neutralValueBand   = 0.15
)

// GenerateInsights turns the strongest signals into narrative profile
// insights: only signals with |value| >= 0.3 qualify, strongest first,
// capped at 8.
func GenerateInsights(signals []model.Signal, locale string) []model.ProfileInsight {
	locale = normalizeLocale(locale)

	candidates := make([]model.Signal, 0, len(signals))
	for _, s := range signals {
		if math.Abs(s.Value) >= minInsightStrength {
			candidates = append(candidates, s)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return math.Abs(candidates[i].Value)*candidates[i].Confidence >
			math.Abs(candidates[j].Value)*candidates[j].Confidence
	})
	if len(candidates) > maxInsights {
		candidates = candidates[:maxInsights]
	}

	insights := make([]model.ProfileInsight, 0, len(candidates))
	for _, s := range candidates {
		desc := DescribeSignal(s, locale)
		insights = append(insights, model.ProfileInsight{
			Title:        desc.Name,
			Description:  desc.FullDescription,
			CategoryName: desc.CategoryName,
			Strength:     math.Abs(s.Value),
			Confidence:   s.Confidence,
		})
	}
	return insights
}

type summaryCopy struct {
	CollabTeam        string
	CollabBalanced    string
	CollabIndependent string
	DecideAnalytical  string
	DecideFast        string
	DecideDeliberate  string
	EnvFast           string
	EnvSteady         string
	EnvFlexible       string
}

var summaryCopies = map[string]summaryCopy{
	LocaleFa: {
		CollabTeam:        "تیم‌محور و هم‌فکر",
		CollabBalanced:    "متعادل بین کار گروهی و فردی",
		CollabIndependent: "مستقل و خوداتکا",
		DecideAnalytical:  "تحلیلی و داده‌محور",
		DecideFast:        "سریع و عمل‌گرا",
		DecideDeliberate:  "سنجیده و با تأمل",
		EnvFast:           "پویا و پرشتاب",
		EnvSteady:         "باثبات و قابل پیش‌بینی",
		EnvFlexible:       "منعطف",
	},
	LocaleEn: {
		CollabTeam:        "Team-oriented",
		CollabBalanced:    "Balanced between solo and team work",
		CollabIndependent: "Independent",
		DecideAnalytical:  "Analytical and data-driven",
		DecideFast:        "Fast and action-oriented",
		DecideDeliberate:  "Deliberate and considered",
		EnvFast:           "Fast-paced and dynamic",
		EnvSteady:         "Steady and predictable",
		EnvFlexible:       "Flexible",
	},
}

// GenerateWorkStyleSummary condenses the signal vector into a compact
// narrative profile for dashboards.
func GenerateWorkStyleSummary(signals []model.Signal, locale string) model.WorkStyleSummary {
	locale = normalizeLocale(locale)
	text := summaryCopies[locale]
	byID := make(map[model.SignalID]model.Signal, len(signals))
	for _, s := range signals {
		byID[s.ID] = s
	}

	summary := model.WorkStyleSummary{
		PrimaryTraits:         primaryTraits(signals, locale),
		CollaborationMode:     text.CollabBalanced,
		DecisionApproach:      text.DecideDeliberate,
		EnvironmentPreference: text.EnvFlexible,
	}

	if collab, ok := byID[model.SignalCollaborationStyle]; ok {
		switch {
		case collab.Value > neutralValueBand:
			summary.CollaborationMode = text.CollabTeam
		case collab.Value < -neutralValueBand:
			summary.CollaborationMode = text.CollabIndependent
		}
	}

	analytical := byID[model.SignalAnalyticalOrientation]
	speed := byID[model.SignalDecisionSpeed]
	switch {
	case analytical.Value > neutralValueBand:
		summary.DecisionApproach = text.DecideAnalytical
	case speed.Value > neutralValueBand:
		summary.DecisionApproach = text.DecideFast
	}

	pace := byID[model.SignalPacePreference]
	routine := byID[model.SignalRoutinePreference]
	switch {
	case pace.Value > neutralValueBand:
		summary.EnvironmentPreference = text.EnvFast
	case routine.Value > neutralValueBand:
		summary.EnvironmentPreference = text.EnvSteady
	}

	return summary
}

// primaryTraits picks the localized names of the three strongest signals.
func primaryTraits(signals []model.Signal, locale string) []string {
	strong := make([]model.Signal, 0, len(signals))
	for _, s := range signals {
		if math.Abs(s.Value) >= minSummaryStrength {
			strong = append(strong, s)
		}
	}
	sort.SliceStable(strong, func(i, j int) bool {
		return math.Abs(strong[i].Value)*strong[i].Confidence >
			math.Abs(strong[j].Value)*strong[j].Confidence
	})
	if len(strong) > maxPrimaryTraits {
		strong = strong[:maxPrimaryTraits]
	}

	traits := make([]string, 0, len(strong))
	for _, s := range strong {
		traits = append(traits, SignalName(s.ID, locale))
	}
	return traits
}
