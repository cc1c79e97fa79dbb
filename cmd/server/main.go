package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quicksurvey/internal/cache"
	"quicksurvey/internal/config"
	"quicksurvey/internal/repository"
	"quicksurvey/internal/service"
	"quicksurvey/internal/transport/rest"
	"quicksurvey/internal/transport/ws"
	"quicksurvey/log"
)

func main() {
	cfg := config.Load()
	log.SetDebug(cfg.Debug)
	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	log.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("failed to ping Redis: %v", err)
	}
	log.Info("connected to Redis")

	// WebSocket hub for owner dashboards
	wsHub := ws.NewHub()

	// Repositories
	surveyRepo := repository.NewSurveyRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	userRepo := repository.NewUserRepo(db)

	// Caches
	formCache := cache.NewFormCache(rdb)
	counterCache := cache.NewCounterCache(rdb)

	// Services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost)
	surveySvc := service.NewSurveyService(surveyRepo, formCache)
	responseSvc := service.NewResponseService(responseRepo, surveyRepo, counterCache)

	// wsHub implements service.Broadcaster
	surveySvc.SetBroadcaster(wsHub)
	responseSvc.SetBroadcaster(wsHub)

	container := &rest.Container{
		AuthService:     authSvc,
		SurveyService:   surveySvc,
		ResponseService: responseSvc,
		WSHub:           wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Infof("server starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Info("server exited")
}
