package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"worksignals/internal/cache"
	"worksignals/internal/match"
	"worksignals/internal/model"
	"worksignals/internal/repository"
)

// JobService serves derived job weight maps and candidate matching
type JobService struct {
	jobRepo      repository.JobRepo
	weightsCache cache.WeightsCache
}

// NewJobService creates a new job service
func NewJobService(jobRepo repository.JobRepo, weightsCache cache.WeightsCache) *JobService {
	return &JobService{
		jobRepo:      jobRepo,
		weightsCache: weightsCache,
	}
}

// Create stores a new job posting and drops any stale cached weights
// for its id.
func (s *JobService) Create(ctx context.Context, job *model.JobPosting) error {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return fmt.Errorf("failed to store job: %w", err)
	}
	if err := s.weightsCache.Invalidate(ctx, job.ID); err != nil {
		log.Printf("weights cache invalidation failed for job %s: %v", job.ID, err)
	}
	return nil
}

// List returns stored job postings, newest first up to the limit
func (s *JobService) List(ctx context.Context, limit int64) ([]*model.JobPosting, error) {
	return s.jobRepo.List(ctx, limit)
}

// Weights returns the signal weight map for a job, deriving and caching
// it on a miss. Cache errors fall back to fresh derivation.
func (s *JobService) Weights(ctx context.Context, jobID string) (*model.JobSignalWeightMap, error) {
	cached, err := s.weightsCache.Get(ctx, jobID)
	if err != nil {
		log.Printf("weights cache read failed for job %s: %v", jobID, err)
	}
	if cached != nil {
		return cached, nil
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return nil, nil
	}

	weights := match.DeriveWeights(job)
	if err := s.weightsCache.Set(ctx, &weights); err != nil {
		log.Printf("weights cache write failed for job %s: %v", jobID, err)
	}
	return &weights, nil
}

// Match scores a candidate's signals against a job's derived
// requirements. Returns nil when the job does not exist.
func (s *JobService) Match(ctx context.Context, jobID string, signals []model.Signal, locale string) (*model.MatchResult, error) {
	weights, err := s.Weights(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if weights == nil {
		return nil, nil
	}

	requirements := match.RequirementsFromWeightMap(weights, match.DefaultRequirementFloor)
	result := match.CandidateToJob(signals, requirements, locale)
	return &result, nil
}
