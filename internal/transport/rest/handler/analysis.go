package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"worksignals/internal/model"
	"worksignals/internal/service"
)

// AnalysisHandler handles analysis endpoints
type AnalysisHandler struct {
	analysisSvc *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisSvc *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisSvc: analysisSvc}
}

// Analyze handles POST /v1/analysis
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var input model.AnalysisInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	output := h.analysisSvc.Analyze(r.Context(), input)
	if output.Status == model.StatusError {
		writeJSON(w, http.StatusUnprocessableEntity, output)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// Get handles GET /v1/analysis/{id}
func (h *AnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	record, err := h.analysisSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load analysis")
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, "analysis not found")
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// GetBySession handles GET /v1/sessions/{sessionId}/analyses
func (h *AnalysisHandler) GetBySession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	records, err := h.analysisSvc.GetBySession(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load analyses")
		return
	}
	if records == nil {
		records = []*model.AnalysisRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}
