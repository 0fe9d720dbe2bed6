package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/linskybing/grant-tracker/docs"
	"github.com/linskybing/grant-tracker/internal/api/handlers"
	"github.com/linskybing/grant-tracker/internal/api/middleware"
	"github.com/linskybing/grant-tracker/internal/api/routes"
	"github.com/linskybing/grant-tracker/internal/application"
	"github.com/linskybing/grant-tracker/internal/config"
	"github.com/linskybing/grant-tracker/internal/config/db"
	"github.com/linskybing/grant-tracker/internal/cron"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/events"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/linskybing/grant-tracker/pkg/logger"
	"github.com/linskybing/grant-tracker/pkg/storage"
	"go.uber.org/zap"
)

// @title Grant Tracker API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	log, err := logger.Init(config.Env, config.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// Initialize JWT signing key
	middleware.Init()

	db.Init(log)
	if err := db.Migrate(db.DB); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}
	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatal("Failed to get database handle", zap.Error(err))
	}

	lifecycle := ticket.DefaultLifecycle()
	if config.LifecycleFile != "" {
		if lifecycle, err = ticket.LoadLifecycle(config.LifecycleFile); err != nil {
			log.Fatal("Failed to load lifecycle table", zap.String("file", config.LifecycleFile), zap.Error(err))
		}
		log.Info("Lifecycle table loaded", zap.String("file", config.LifecycleFile))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := objectStore(ctx, log)
	hub := events.NewHub()

	repos := repository.NewRepositories(db.DB)
	svc := application.New(repos, lifecycle, store, hub)
	h := handlers.New(svc, hub, sqlDB)

	cron.StartCleanupTask(ctx, svc.Audit, config.AuditRetentionDays)
	cron.StartReconcileTask(ctx, svc.Cluster, config.ReconcileInterval)

	if config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORSMiddleware(config.AllowedOrigins))
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())

	routes.RegisterRoutes(router, repos, svc, h)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
		<-sigChan
		log.Info("Shutdown signal")
		cancel()

		shutdownCtx, done := context.WithTimeout(context.Background(), 15*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Graceful shutdown failed", zap.Error(err))
		}
	}()

	log.Info("Starting API server", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Failed to start", zap.Error(err))
	}
}

// objectStore connects to MinIO. Leaving MINIO_ENDPOINT empty keeps documents
// in memory, which only suits local development.
func objectStore(ctx context.Context, log *zap.Logger) storage.ObjectStore {
	if config.MinioEndpoint == "" {
		log.Warn("MINIO_ENDPOINT is empty, documents are kept in memory")
		return storage.NewMemoryStore()
	}
	store, err := storage.NewMinioStore(ctx, storage.MinioConfig{
		Endpoint:  config.MinioEndpoint,
		AccessKey: config.MinioAccessKey,
		SecretKey: config.MinioSecretKey,
		UseSSL:    config.MinioUseSSL,
		Bucket:    config.MinioBucket,
	}, log)
	if err != nil {
		log.Fatal("Failed to connect to object storage", zap.String("endpoint", config.MinioEndpoint), zap.Error(err))
	}
	return store
}
