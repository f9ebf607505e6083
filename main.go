package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/docflow/audit"
	"github.com/dev-mohitbeniwal/docflow/config"
	"github.com/dev-mohitbeniwal/docflow/controller"
	"github.com/dev-mohitbeniwal/docflow/dao"
	"github.com/dev-mohitbeniwal/docflow/db"
	logger "github.com/dev-mohitbeniwal/docflow/logging"
	"github.com/dev-mohitbeniwal/docflow/router"
	"github.com/dev-mohitbeniwal/docflow/service"
	"github.com/dev-mohitbeniwal/docflow/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	cfg := config.GetConfig()

	// Initialize logger
	logger.InitLogger(cfg.Log.Dir)
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Storage backend
	var repos dao.Repositories
	switch cfg.Storage.Backend {
	case "neo4j":
		if err := db.InitNeo4j(); err != nil {
			logger.Fatal("Failed to initialize Neo4j", zap.Error(err))
		}
		defer db.CloseNeo4j()

		var err error
		repos, err = dao.NewNeo4jRepositories(ctx, db.Neo4jDriver, cfg.Storage.Seed)
		if err != nil {
			logger.Fatal("Failed to prepare Neo4j repositories", zap.Error(err))
		}
	case "memory", "":
		repos = dao.NewMemoryRepositories(cfg.Storage.Seed)
	default:
		logger.Fatal("Unknown storage backend", zap.String("backend", cfg.Storage.Backend))
	}
	logger.Info("Storage ready", zap.String("backend", cfg.Storage.Backend), zap.Bool("seeded", cfg.Storage.Seed))

	// Initialize Redis
	var redisCache *db.RedisCache
	if cfg.Redis.Enabled {
		var err error
		redisCache, err = db.InitRedis()
		if err != nil {
			logger.Warn("Redis unavailable, running without it", zap.Error(err))
		} else {
			defer redisCache.Close()
		}
	}

	// Audit log
	var auditRepository audit.Repository = audit.NewMemoryRepository()
	if cfg.Elasticsearch.Enabled {
		esRepository, err := audit.NewElasticsearchRepository(cfg.Elasticsearch.URL, cfg.Elasticsearch.Index)
		if err != nil {
			logger.Fatal("Failed to initialize Elasticsearch audit repository", zap.Error(err))
		}
		auditRepository = esRepository
	}
	auditService := audit.NewService(auditRepository)

	// Initialize EventBus
	eventBus := util.NewEventBus()
	eventBus.Start(ctx)

	// Initialize services and utilities
	validationUtil := util.NewValidationUtil()
	cacheService := util.NewCacheService(redisCache)
	notificationService := util.NewNotificationService(redisCache)

	tokens, err := util.NewTokenUtil(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		logger.Fatal("Invalid auth configuration", zap.Error(err))
	}

	services, err := service.InitializeServices(repos, auditService, validationUtil, cacheService, notificationService, eventBus)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	if notes, stop, err := notificationService.Subscribe(ctx); err != nil {
		logger.Warn("Notification subscription failed", zap.Error(err))
	} else {
		defer stop()
		go func() {
			for note := range notes {
				logger.Debug("Notification delivered", zap.String("docID", note.DocumentID), zap.String("message", note.Message))
			}
		}()
	}

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	controllers := controller.InitializeControllers(services, tokens)
	engine := router.SetupRouter(controllers, router.Options{
		Tokens:            tokens,
		Users:             services.User,
		Cache:             redisCache,
		RateLimitRequests: cfg.RateLimit.Requests,
		RateLimitWindow:   cfg.RateLimit.Window,
		DevLogin:          cfg.Auth.DevLogin,
	})

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// drain pending audit writes
	eventBus.Wait()
	logger.Info("Server exiting")
}
