package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/training-log/internal/api"
	"alcyxob/training-log/internal/config"
	"alcyxob/training-log/internal/draft"
	"alcyxob/training-log/internal/repository/mongo"
	"alcyxob/training-log/internal/service"
	"alcyxob/training-log/internal/storage"
	"alcyxob/training-log/internal/templates"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.Info("starting training log server")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.WithError(err).Fatal("could not load config")
	}

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.WithError(err).Fatal("could not connect to MongoDB")
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.WithError(err).Error("failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Info("database connection established")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureTemplateIndexes(ctx, appDB.Collection("workout_templates"))
		mongo.EnsureRecordIndexes(ctx, appDB.Collection("completed_workouts"))
		mongo.EnsureClassIndexes(ctx, appDB.Collection("classes"))
		log.Info("index creation completed")
	}()

	// The draft store keeps in-progress sessions alive across restarts.
	// An unreachable Redis degrades sessions to memory-only; the
	// machine logs that per-session, so startup proceeds either way.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.WithError(err).Error("failed to close redis client")
		}
	}()
	var drafts draft.Store = draft.NewRedis(redisClient)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.WithError(err).Warn("redis unreachable, drafts will not survive restarts")
			drafts = draft.NewMemory()
		}
		cancel()
	}

	var fileStorage storage.FileStorage
	if cfg.S3.BucketName != "" {
		fileStorage, err = storage.NewS3Storage(cfg.S3, log.WithField("component", "s3"))
		if err != nil {
			log.WithError(err).Fatal("failed to initialize S3 storage")
		}
	} else {
		log.Info("no S3 bucket configured, history export disabled")
	}

	userRepo := mongo.NewMongoUserRepository(appDB)
	templateRepo := mongo.NewMongoTemplateRepository(appDB)
	recordRepo := mongo.NewMongoRecordRepository(appDB)
	classRepo := mongo.NewMongoClassRepository(appDB)
	journalRepo := mongo.NewMongoJournalRepository(appDB)
	scheduleRepo := mongo.NewMongoScheduleRepository(appDB)

	templateProvider := templates.NewProvider(templateRepo, log.WithField("component", "templates"))

	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	sessionService := service.NewSessionService(log, templateProvider, drafts, recordRepo)
	historyService := service.NewHistoryService(recordRepo, fileStorage, log.WithField("component", "history"))
	classService := service.NewClassService(classRepo, journalRepo)
	scheduleService := service.NewScheduleService(scheduleRepo)

	router := gin.Default()
	api.SetupRoutes(router, cfg.JWT.Secret, authService, templateProvider, sessionService, historyService, classService, scheduleService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Server.Address).Info("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen and serve failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exiting")
}
