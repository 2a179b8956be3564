package service

import (
	"context"
	"log"

	"worksignals/internal/engine"
	"worksignals/internal/model"
	"worksignals/internal/repository"
)

// AnalysisService drives the signal engine and persists its output.
// All computation happens inside engine.Analyze; this layer only adds
// storage and dashboard notifications around the stateless core.
type AnalysisService struct {
	analysisRepo repository.AnalysisRepo
	broadcaster  Broadcaster
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(analysisRepo repository.AnalysisRepo) *AnalysisService {
	return &AnalysisService{analysisRepo: analysisRepo}
}

// SetBroadcaster sets the broadcaster for dashboard events
func (s *AnalysisService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// AnalysisCompletedEvent is pushed to dashboard subscribers after a
// successful analysis. It carries no signal values, only the summary.
type AnalysisCompletedEvent struct {
	AnalysisID        string               `json:"analysisId"`
	SessionID         string               `json:"sessionId"`
	Status            model.AnalysisStatus `json:"status"`
	SignalCount       int                  `json:"signalCount"`
	OverallConfidence float64              `json:"overallConfidence"`
}

// Analyze runs the engine over the input and stores the output. A
// storage failure does not fail the call: the computed output is still
// returned and the miss is logged.
func (s *AnalysisService) Analyze(ctx context.Context, input model.AnalysisInput) model.AnalysisOutput {
	output := engine.Analyze(input)

	if output.Status != model.StatusError {
		record := &model.AnalysisRecord{
			ID:        output.Metadata.AnalysisID,
			SessionID: output.Metadata.SessionID,
			Output:    output,
		}
		if err := s.analysisRepo.Create(ctx, record); err != nil {
			log.Printf("failed to store analysis %s: %v", record.ID, err)
		}

		if s.broadcaster != nil {
			s.broadcaster.BroadcastToAll("analysis_completed", &AnalysisCompletedEvent{
				AnalysisID:        output.Metadata.AnalysisID,
				SessionID:         output.Metadata.SessionID,
				Status:            output.Status,
				SignalCount:       len(output.Signals),
				OverallConfidence: output.OverallConfidence,
			})
		}
	}

	return output
}

// Get returns a stored analysis by id
func (s *AnalysisService) Get(ctx context.Context, id string) (*model.AnalysisRecord, error) {
	return s.analysisRepo.GetByID(ctx, id)
}

// GetBySession returns all stored analyses for a session
func (s *AnalysisService) GetBySession(ctx context.Context, sessionID string) ([]*model.AnalysisRecord, error) {
	return s.analysisRepo.GetBySessionID(ctx, sessionID)
}
