package handler

import (
	"encoding/json"
	"net/http"

	"worksignals/internal/adapter"
	"worksignals/internal/model"
)

// ProfileHandler handles profile presentation endpoints
type ProfileHandler struct{}

// NewProfileHandler creates a new profile handler
func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

type insightsRequest struct {
	Signals []model.Signal `json:"signals"`
	Locale  string         `json:"locale,omitempty"`
}

type insightsResponse struct {
	Insights []model.ProfileInsight `json:"insights"`
	Summary  model.WorkStyleSummary `json:"summary"`
}

// Insights handles POST /v1/profiles/insights
func (h *ProfileHandler) Insights(w http.ResponseWriter, r *http.Request) {
	var req insightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Signals) == 0 {
		writeError(w, http.StatusBadRequest, "signals are required")
		return
	}

	resp := insightsResponse{
		Insights: adapter.GenerateInsights(req.Signals, req.Locale),
		Summary:  adapter.GenerateWorkStyleSummary(req.Signals, req.Locale),
	}
	if resp.Insights == nil {
		resp.Insights = []model.ProfileInsight{}
	}

	writeJSON(w, http.StatusOK, resp)
}
