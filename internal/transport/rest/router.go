package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"worksignals/internal/service"
	"worksignals/internal/transport/rest/handler"
	"worksignals/internal/transport/rest/middleware"
	"worksignals/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService     *service.AuthService
	AnalysisService *service.AnalysisService
	JobService      *service.JobService
	WSHub           *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	analysisHandler := handler.NewAnalysisHandler(c.AnalysisService)
	jobHandler := handler.NewJobHandler(c.JobService)
	profileHandler := handler.NewProfileHandler()
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/dashboard", wsHandler.DashboardWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Client routes (require client auth)
	clientRoutes := v1.NewRoute().Subrouter()
	clientRoutes.Use(authMW.RequireClient)

	clientRoutes.HandleFunc("/analysis", analysisHandler.Analyze).Methods("POST", "OPTIONS")
	clientRoutes.HandleFunc("/analysis/{id}", analysisHandler.Get).Methods("GET", "OPTIONS")
	clientRoutes.HandleFunc("/sessions/{sessionId}/analyses", analysisHandler.GetBySession).Methods("GET", "OPTIONS")
	clientRoutes.HandleFunc("/jobs", jobHandler.Create).Methods("POST", "OPTIONS")
	clientRoutes.HandleFunc("/jobs", jobHandler.List).Methods("GET", "OPTIONS")
	clientRoutes.HandleFunc("/jobs/{jobId}/weights", jobHandler.Weights).Methods("GET", "OPTIONS")
	clientRoutes.HandleFunc("/jobs/{jobId}/match", jobHandler.Match).Methods("POST", "OPTIONS")
	clientRoutes.HandleFunc("/profiles/insights", profileHandler.Insights).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
