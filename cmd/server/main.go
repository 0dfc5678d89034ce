package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"experio/internal/config"
	"experio/internal/handlers"
	"experio/internal/middleware"
	"experio/internal/repositories/mongodb"
	"experio/internal/services"
	"experio/pkg/cache"
	"experio/pkg/database"
	"experio/pkg/logger"
	"experio/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  cfg.App.LogLevel,
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	mongoDB, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoDB.Close()

	// Redis is optional; without it the service runs uncached and unlimited.
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Warn("Redis unavailable, continuing without cache")
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	// Repositories
	var repoCache mongodb.Cache
	if redisCache != nil {
		repoCache = redisCache
	}
	experienceRepo := mongodb.NewExperienceRepository(mongoDB.Database, repoCache)
	slotRepo := mongodb.NewSlotRepository(mongoDB.Database)
	promoRepo := mongodb.NewPromoCodeRepository(mongoDB.Database)
	bookingRepo := mongodb.NewBookingRepository(mongoDB.Database)

	// Services
	experienceService := services.NewExperienceService(experienceRepo, slotRepo)
	promoService := services.NewPromoService(promoRepo, appLogger)
	bookingService := services.NewBookingService(experienceRepo, slotRepo, promoRepo, bookingRepo, mongoDB, appLogger)

	// Handlers
	experienceHandler := handlers.NewExperienceHandler(experienceService)
	promoCodeHandler := handlers.NewPromoCodeHandler(promoService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	v1 := router.Group("/api/v1")
	{
		routes.SetupExperienceRoutes(v1, experienceHandler)
		routes.SetupPromoCodeRoutes(v1, promoCodeHandler)
		routes.SetupBookingRoutes(v1, bookingHandler,
			middleware.RateLimitMiddleware(redisCache, cfg.App.RateLimitPerMinute))
	}

	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := mongoDB.Ping(c.Request.Context()); err != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		cacheStatus := "disabled"
		if redisCache != nil {
			cacheStatus = "healthy"
			if err := redisCache.Ping(c.Request.Context()); err != nil {
				cacheStatus = "unhealthy"
			}
		}
		c.JSON(code, gin.H{
			"status":  status,
			"cache":   cacheStatus,
			"version": cfg.App.Version,
		})
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.App.RequestTimeout,
		WriteTimeout: cfg.App.RequestTimeout,
	}

	go func() {
		appLogger.Infof("Starting server on port %d", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Errorf("Forced shutdown: %v", err)
	}
}
