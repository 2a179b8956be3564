package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"worksignals/internal/model"
)

// AnalysisRepo persists analysis outputs on behalf of API callers. The
// engine itself never touches storage.
type AnalysisRepo interface {
	Create(ctx context.Context, record *model.AnalysisRecord) error
	GetByID(ctx context.Context, id string) (*model.AnalysisRecord, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]*model.AnalysisRecord, error)
}

type analysisRepo struct {
	collection *mongo.Collection
}

// NewAnalysisRepo creates a mongo-backed analysis repository
func NewAnalysisRepo(db *mongo.Database) AnalysisRepo {
	return &analysisRepo{collection: db.Collection("analyses")}
}

func (r *analysisRepo) Create(ctx context.Context, record *model.AnalysisRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

func (r *analysisRepo) GetByID(ctx context.Context, id string) (*model.AnalysisRecord, error) {
	var record model.AnalysisRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *analysisRepo) GetBySessionID(ctx context.Context, sessionID string) ([]*model.AnalysisRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.AnalysisRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// optionsWithLimit returns find options with an optional limit.
func optionsWithLimit(limit int64) *options.FindOptions {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return opts
}
