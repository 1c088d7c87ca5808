package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/careloop/advocates-api/api/swagger"
	"github.com/careloop/advocates-api/internal/handler"
	internalmiddleware "github.com/careloop/advocates-api/internal/middleware"
	"github.com/careloop/advocates-api/internal/migrations"
	"github.com/careloop/advocates-api/internal/repository"
	"github.com/careloop/advocates-api/internal/service"
	"github.com/careloop/advocates-api/pkg/cache"
	"github.com/careloop/advocates-api/pkg/config"
	"github.com/careloop/advocates-api/pkg/database"
	"github.com/careloop/advocates-api/pkg/logger"
	corsmiddleware "github.com/careloop/advocates-api/pkg/middleware/cors"
	ratelimitmiddleware "github.com/careloop/advocates-api/pkg/middleware/ratelimit"
	reqidmiddleware "github.com/careloop/advocates-api/pkg/middleware/requestid"
)

// @title Advocates API
// @version 0.1.0
// @description Searchable advocate directory with pagination, seeding and exports
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("postgres connection failed", "error", err)
	}
	defer db.Close()

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = migrations.EnsureSchema(migrateCtx, db)
	cancel()
	if err != nil {
		logr.Sugar().Fatalw("schema migration failed", "error", err)
	}

	metrics := service.NewMetricsService()

	// Redis is optional: a failed connection downgrades to uncached reads.
	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metrics, cfg.Cache.ListTTL, logr, true)
		}
	}

	advocateRepo := repository.NewAdvocateRepository(db)
	advocates := service.NewAdvocateService(advocateRepo, cacheSvc, metrics, nil, logr, cfg.Cache.ListTTL)
	seeder := service.NewSeedService(advocateRepo, cacheSvc, nil, logr)
	exports := service.NewExportService(advocateRepo, metrics, nil, nil, logr)

	advocateHandler := handler.NewAdvocateHandler(advocates, exports)
	seedHandler := handler.NewSeedHandler(seeder)
	metricsHandler := handler.NewMetricsHandler(metrics, advocates, cacheSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.WithResponseMeta())
	r.Use(internalmiddleware.Metrics(metrics))
	if cfg.RateLimit.Enabled {
		r.Use(ratelimitmiddleware.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	api := r.Group(cfg.APIPrefix)
	api.GET("/advocates", advocateHandler.List)
	if cfg.Exports.Enabled {
		api.GET("/advocates/export", advocateHandler.Export)
	}
	api.GET("/advocates/:id", advocateHandler.Get)
	api.POST("/seed", seedHandler.Seed)

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)
	r.GET("/status", metricsHandler.System)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
