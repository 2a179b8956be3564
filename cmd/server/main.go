package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"worksignals/internal/cache"
	"worksignals/internal/config"
	"worksignals/internal/engine"
	"worksignals/internal/repository"
	"worksignals/internal/service"
	"worksignals/internal/transport/rest"
	"worksignals/internal/transport/ws"
)

func main() {
	log.Println("started")
	log.Printf("engine version %s", engine.Version)
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	jobRepo := repository.NewJobRepo(db)
	analysisRepo := repository.NewAnalysisRepo(db)

	// Initialize caches
	weightsCache := cache.NewWeightsCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	analysisSvc := service.NewAnalysisService(analysisRepo)
	jobSvc := service.NewJobService(jobRepo, weightsCache)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	analysisSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:     authSvc,
		AnalysisService: analysisSvc,
		JobService:      jobSvc,
		WSHub:           wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/analysis")
		log.Println("  GET  /v1/analysis/{id}")
		log.Println("  GET  /v1/sessions/{sessionId}/analyses")
		log.Println("  POST/GET /v1/jobs")
		log.Println("  GET  /v1/jobs/{jobId}/weights")
		log.Println("  POST /v1/jobs/{jobId}/match")
		log.Println("  POST /v1/profiles/insights")
		log.Println("  WS   /v1/ws/dashboard")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
