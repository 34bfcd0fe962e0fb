// Package main runs the event registration HTTP server with graceful
// shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/planora/backend/config"
	"github.com/planora/backend/internal/events"
	"github.com/planora/backend/internal/identity"
	"github.com/planora/backend/internal/managers"
	"github.com/planora/backend/internal/middleware"
	"github.com/planora/backend/internal/registrations"
	"github.com/planora/backend/internal/store"
	"github.com/planora/backend/internal/store/memory"
	"github.com/planora/backend/internal/store/postgres"
	"github.com/planora/backend/internal/users"
	"github.com/planora/backend/internal/worker"
	"github.com/planora/backend/pkg/database"
	"github.com/planora/backend/pkg/queue"
	"github.com/planora/backend/pkg/redis"
	"github.com/planora/backend/pkg/response"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()

	var stores store.Stores
	switch cfg.Storage.Driver {
	case "memory":
		stores = memory.Stores()
		logger.Info("using in-memory storage")
	default:
		pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), logger)
		if err != nil {
			logger.Fatal("database", zap.Error(err))
		}
		defer pool.Close()
		if err := database.Migrate(ctx, pool); err != nil {
			logger.Fatal("migrate", zap.Error(err))
		}
		stores = postgres.Stores(pool)
	}

	// Redis is optional: without it, registration confirmations are off.
	var (
		jobQueue  *queue.Queue
		processor *worker.ConfirmationProcessor
	)
	if cfg.Redis.Addr != "" {
		rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
		if err != nil {
			logger.Fatal("redis", zap.Error(err))
		}
		defer rdb.Close()
		jobQueue = queue.NewQueue(rdb.Client, logger)
		processor = worker.NewConfirmationProcessor(stores.Registrations, rdb.Client, jobQueue, logger)
	} else {
		logger.Info("redis not configured, confirmation jobs disabled")
	}

	names := identity.NewService(stores.GeneralUsers, stores.EventManagers)

	userHandler := users.NewHandler(users.NewService(stores.GeneralUsers, names, logger))
	managerHandler := managers.NewHandler(managers.NewService(stores.EventManagers, names, logger))
	eventHandler := events.NewHandler(events.NewService(stores.PlannedEvents, stores.EventManagers, logger))
	registrationHandler := registrations.NewHandler(
		registrations.NewService(stores.Registrations, stores.PlannedEvents, stores.GeneralUsers, stores.EventManagers, logger),
		jobQueue,
		logger,
	)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))

	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	userHandler.Register(router)
	managerHandler.Register(router)
	eventHandler.Register(router)
	registrationHandler.Register(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	if processor != nil {
		go processor.Run(workerCtx)
		logger.Info("confirmation worker started")
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	workerCancel()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
