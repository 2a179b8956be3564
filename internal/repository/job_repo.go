package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"worksignals/internal/model"
)

// JobRepo reads and writes job postings
type JobRepo interface {
	Create(ctx context.Context, job *model.JobPosting) error
	GetByID(ctx context.Context, id string) (*model.JobPosting, error)
	List(ctx context.Context, limit int64) ([]*model.JobPosting, error)
}

type jobRepo struct {
	collection *mongo.Collection
}

// NewJobRepo creates a mongo-backed job repository
func NewJobRepo(db *mongo.Database) JobRepo {
	return &jobRepo{collection: db.Collection("jobs")}
}

func (r *jobRepo) Create(ctx context.Context, job *model.JobPosting) error {
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, job)
	return err
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*model.JobPosting, error) {
	var job model.JobPosting
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) List(ctx context.Context, limit int64) ([]*model.JobPosting, error) {
	opts := optionsWithLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []*model.JobPosting
	if err = cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
