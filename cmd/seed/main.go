package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"worksignals/internal/model"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DATABASE")
	if dbName == "" {
		dbName = "worksignals"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	jobColl := client.Database(dbName).Collection("jobs")

	now := time.Now()
	jobs := []interface{}{
		model.JobPosting{
			ID:           uuid.New().String(),
			Title:        "Engineering Team Lead",
			LocationType: model.LocationHybrid,
			TeamContext:  model.TeamCrossFunctional,
			Workstyle: &model.WorkstyleExpectations{
				Autonomy:      4,
				Collaboration: 5,
				Pace:          4,
			},
			TeamSnapshot: &model.TeamSnapshot{
				Size:            9,
				CrossFunctional: true,
				ReportsTo:       "VP Engineering",
			},
			CreatedAt: now,
		},
		model.JobPosting{
			ID:           uuid.New().String(),
			Title:        "Data Analyst",
			LocationType: model.LocationRemote,
			TeamContext:  model.TeamSmall,
			Workstyle: &model.WorkstyleExpectations{
				Autonomy:  5,
				Structure: 4,
			},
			CreatedAt: now,
		},
		model.JobPosting{
			ID:           uuid.New().String(),
			Title:        "Customer Success Specialist",
			LocationType: model.LocationOnsite,
			TeamContext:  model.TeamSmall,
			CreatedAt:    now,
		},
		model.JobPosting{
			ID:           uuid.New().String(),
			Title:        "Brand Designer",
			LocationType: model.LocationRemote,
			TeamContext:  model.TeamSolo,
			CreatedAt:    now,
		},
	}

	result, err := jobColl.InsertMany(ctx, jobs)
	if err != nil {
		log.Fatalf("Failed to insert jobs: %v", err)
	}

	fmt.Printf("Successfully seeded %d job postings\n", len(result.InsertedIDs))
}
