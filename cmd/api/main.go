// @title           E-Sign Editor API
// @version         1.0
// @description     Server-owned field-placement editor for e-signature documents

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8004
// @BasePath  /api/esign

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "esign-editor-api/docs" // Swagger docs import

	"esign-editor-api/internal/client"
	"esign-editor-api/internal/config"
	"esign-editor-api/internal/database"
	"esign-editor-api/internal/editor"
	"esign-editor-api/internal/job"
	"esign-editor-api/internal/metrics"
	"esign-editor-api/internal/renderer"
	"esign-editor-api/internal/repository"
	"esign-editor-api/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting E-Sign Editor API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.Bool("strict_send_gate", cfg.Editor.StrictSendGate),
	)

	// Initialize database; a failed connection retries in the background so
	// the pod stays alive behind its readiness probe
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second)
	} else {
		logger.Info("Database connected successfully")

		if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	logger.Info("Metrics initialized")

	if db != nil {
		database.RegisterMetricsCallbacks(db, m)
		database.StartDBStatsCollector(db, m)
	}

	// Initialize Redis (optional; render-info falls back to the database)
	if err := database.InitRedis(*cfg, logger); err != nil {
		logger.Warn("Failed to connect to Redis, render-info caching disabled",
			zap.Error(err))
	}

	// Initialize S3 client
	var s3Client client.S3ClientInterface
	if cfg.S3.Bucket != "" && cfg.S3.Region != "" {
		realClient, err := client.NewS3Client(&cfg.S3)
		if err != nil {
			logger.Error("Failed to initialize S3 client", zap.Error(err))
			os.Exit(1)
		}
		s3Client = realClient
		logger.Info("S3 client initialized",
			zap.String("bucket", cfg.S3.Bucket),
			zap.String("region", cfg.S3.Region),
		)
	} else {
		s3Client = client.NewMockS3Client()
		logger.Warn("S3 configuration incomplete, using in-memory document storage")
	}

	// Initialize notification client
	var notifier client.NotificationClient
	if cfg.Notification.BaseURL != "" {
		notifier = client.NewNotificationClient(
			cfg.Notification.BaseURL,
			cfg.Notification.APIKey,
			cfg.Notification.Timeout,
			logger,
			m,
		)
		logger.Info("Notification client initialized",
			zap.String("base_url", cfg.Notification.BaseURL),
		)
	} else {
		notifier = client.NewNoOpNotificationClient()
		logger.Warn("Notification service URL not configured, signing requests will not be delivered")
	}

	// Editor session manager and PDF prober
	sessions := editor.NewSessionManager(logger)
	prober := renderer.NewService(logger)

	// Business metrics collector (documents total, active sessions)
	collector := metrics.NewBusinessMetricsCollector(db, sessions, m, logger)
	collector.Start()
	defer collector.Stop()

	// Scheduled cleanup: expired sessions and stale drafts
	if db != nil {
		cleanupJob := job.NewCleanupJob(sessions, repository.NewDocumentRepository(db), s3Client, cfg.Editor, logger)
		scheduler := cron.New()
		if _, err := scheduler.AddJob("@every 10m", cleanupJob); err != nil {
			logger.Error("Failed to schedule cleanup job", zap.Error(err))
		} else {
			scheduler.Start()
			defer scheduler.Stop()
		}
	}

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:           db,
		Redis:        database.GetRedis(),
		Logger:       logger,
		JWTSecret:    cfg.JWT.Secret,
		BasePath:     cfg.Server.BasePath,
		EditorConfig: cfg.Editor,
		Metrics:      m,
		Sessions:     sessions,
		S3Client:     s3Client,
		Notifier:     notifier,
		Renderer:     prober,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("E-Sign Editor API started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
