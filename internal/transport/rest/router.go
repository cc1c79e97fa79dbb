package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"quicksurvey/internal/service"
	"quicksurvey/internal/transport/rest/handler"
	"quicksurvey/internal/transport/rest/middleware"
	"quicksurvey/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService     *service.AuthService
	SurveyService   *service.SurveyService
	ResponseService *service.ResponseService
	WSHub           *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	surveyHandler := handler.NewSurveyHandler(c.SurveyService, c.ResponseService)
	responseHandler := handler.NewResponseHandler(c.ResponseService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.SurveyService, c.ResponseService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(corsMiddleware)
	r.Use(middleware.Logger)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/surveys/{surveyId}/responses", responseHandler.Submit).Methods("POST", "OPTIONS")

	// Published surveys are world-readable; drafts remain owner-only, so
	// the caller identity is attached when present.
	v1.Handle("/surveys/{surveyId}", authMW.Optional(http.HandlerFunc(surveyHandler.Get))).Methods("GET", "OPTIONS")

	// WebSocket routes (token in query param)
	v1.HandleFunc("/ws/surveys/{surveyId}", wsHandler.SurveyWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Owner routes (require auth)
	ownerRoutes := v1.NewRoute().Subrouter()
	ownerRoutes.Use(authMW.Require)

	ownerRoutes.HandleFunc("/auth/me", authHandler.Me).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/surveys", surveyHandler.Create).Methods("POST", "OPTIONS")
	ownerRoutes.HandleFunc("/surveys", surveyHandler.List).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/surveys/{surveyId}/publish", surveyHandler.Publish).Methods("POST", "OPTIONS")
	ownerRoutes.HandleFunc("/surveys/{surveyId}/unpublish", surveyHandler.Unpublish).Methods("POST", "OPTIONS")
	ownerRoutes.HandleFunc("/surveys/{surveyId}/responses", responseHandler.List).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/surveys/{surveyId}/stats", surveyHandler.Stats).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/surveys/{surveyId}/stats/{questionId}", surveyHandler.QuestionStats).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
