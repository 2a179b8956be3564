package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"worksignals/internal/model"
	"worksignals/internal/service"
)

// JobHandler handles job weight and matching endpoints
type JobHandler struct {
	jobSvc *service.JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobSvc *service.JobService) *JobHandler {
	return &JobHandler{jobSvc: jobSvc}
}

// Create handles POST /v1/jobs
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var job model.JobPosting
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if job.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	if err := h.jobSvc.Create(r.Context(), &job); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store job")
		return
	}

	writeJSON(w, http.StatusCreated, job)
}

// List handles GET /v1/jobs
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := int64(50)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	jobs, err := h.jobSvc.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load jobs")
		return
	}
	if jobs == nil {
		jobs = []*model.JobPosting{}
	}

	writeJSON(w, http.StatusOK, jobs)
}

// Weights handles GET /v1/jobs/{jobId}/weights
func (h *JobHandler) Weights(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	weights, err := h.jobSvc.Weights(r.Context(), jobID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to derive weights")
		return
	}
	if weights == nil {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}

	writeJSON(w, http.StatusOK, weights)
}

type matchRequest struct {
	Signals []model.Signal `json:"signals"`
	Locale  string         `json:"locale,omitempty"`
}

// Match handles POST /v1/jobs/{jobId}/match
func (h *JobHandler) Match(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Signals) == 0 {
		writeError(w, http.StatusBadRequest, "signals are required")
		return
	}

	result, err := h.jobSvc.Match(r.Context(), jobID, req.Signals, req.Locale)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute match")
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
