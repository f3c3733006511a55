package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/verahq/vera-backend/internal/api"
	"github.com/verahq/vera-backend/internal/chat"
	"github.com/verahq/vera-backend/internal/config"
	"github.com/verahq/vera-backend/internal/database/mysql"
	redisdb "github.com/verahq/vera-backend/internal/database/redis"
	"github.com/verahq/vera-backend/internal/hr"
	"github.com/verahq/vera-backend/internal/ingestion"
	"github.com/verahq/vera-backend/internal/payroll"
	"github.com/verahq/vera-backend/internal/policy"
	"github.com/verahq/vera-backend/internal/policy/extract"
	"github.com/verahq/vera-backend/pkg/circuitbreaker"
	"github.com/verahq/vera-backend/pkg/logger"
	"github.com/verahq/vera-backend/pkg/ratelimiter"

	goredis "github.com/go-redis/redis/v8"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(logger.ParseLevel(cfg.Logger.Level))
	appLogger := logger.New(cfg.App.Name, "")
	appLogger.Info("Starting HR service...")

	// Policy retrieval core, seeded with the demo policies.
	store := policy.NewStore()

	// Clause extraction is optional; without an API key ingestion degrades to
	// the fallback clause.
	var extractor extract.Extractor
	var chatSvc *chat.Service
	if key := cfg.LLM.OpenAI.APIKey; key != "" {
		var breaker *circuitbreaker.CircuitBreaker
		if cb := cfg.Middleware.CircuitBreaker; cb.Enabled {
			timeout, err := time.ParseDuration(cb.Timeout)
			if err != nil {
				log.Fatalf("Invalid circuit breaker timeout: %v", err)
			}
			breaker = circuitbreaker.New(cb.FailureThreshold, cb.SuccessThreshold, timeout)
		}
		extractor = extract.NewOpenAIExtractor(key, cfg.LLM.OpenAI.Model, breaker)
		chatSvc = chat.NewService(key, cfg.LLM.OpenAI.Model, logger.New("chat", ""))
	} else {
		appLogger.Warn("OPENAI_API_KEY not set. Clause extraction and live chat are disabled.")
	}

	ingestionSvc := ingestion.NewService(store, extractor, logger.New("ingestion", ""))

	// Repositories: MySQL when configured, seeded in-memory otherwise.
	var (
		employeeRepo  hr.EmployeeRepo
		documentRepo  hr.DocumentRepo
		profileRepo   hr.ProfileRepo
		promotionRepo hr.PromotionRepo
	)
	if cfg.Databases.MySQL.Address != "" {
		db, err := mysql.GetDB(&cfg.Databases.MySQL)
		if err != nil {
			log.Fatalf("Failed to connect to MySQL: %v", err)
		}
		if err := hr.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}
		employeeRepo = hr.NewGormEmployeeRepo(db)
		documentRepo = hr.NewGormDocumentRepo(db)
		profileRepo = hr.NewGormProfileRepo(db)
		promotionRepo = hr.NewGormPromotionRepo(db)
		appLogger.Info("Connected to MySQL.")
	} else {
		employeeRepo = hr.NewMemoryEmployeeRepo()
		documentRepo = hr.NewMemoryDocumentRepo()
		appLogger.Warn("MySQL not configured. Using seeded in-memory repositories.")
	}

	var cache *goredis.Client
	if cfg.Databases.Redis.Address != "" {
		cache, err = redisdb.GetClient(&cfg.Databases.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		appLogger.Info("Connected to Redis.")
	}

	hrSvc := hr.NewService(employeeRepo, documentRepo, logger.New("hr", ""))
	profileSvc := hr.NewProfileService(profileRepo, promotionRepo, cache, logger.New("profile", ""))
	payrollSvc := payroll.NewService()

	storage := api.StorageMemory
	if cfg.VectorHost != "" {
		storage = api.StoragePineconeReady
	}
	handler := api.NewHandler(store, ingestionSvc, chatSvc, hrSvc, profileSvc, payrollSvc, storage, logger.New("api", ""))

	var limiter ratelimiter.RateLimiter
	if rl := cfg.Middleware.RateLimiter; rl.Enabled {
		limiter = ratelimiter.NewTokenBucket(rl.Rate, rl.Capacity)
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.SetupRouter(handler, limiter)

	srv := &http.Server{
		Addr:    cfg.App.Address,
		Handler: router,
	}

	go func() {
		appLogger.Info("HTTP server listening at " + cfg.App.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve HTTP: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Error("Forced shutdown")
	}

	if cache != nil {
		if err := redisdb.Close(); err != nil {
			appLogger.WithError(err).Error("Failed to close Redis client")
		}
	}
	if cfg.Databases.MySQL.Address != "" {
		if err := mysql.Close(); err != nil {
			appLogger.WithError(err).Error("Failed to close MySQL connection")
		}
	}

	appLogger.Info("Server gracefully stopped")
}
