package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	_ "qmstracker/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"qmstracker/internal/auth"
	"qmstracker/internal/config"
	"qmstracker/internal/db"
	qmserrors "qmstracker/internal/errors"
	"qmstracker/internal/handler"
	"qmstracker/internal/kv"
	"qmstracker/internal/querycache"
	"qmstracker/internal/repository"
	"qmstracker/internal/router"
	"qmstracker/internal/service"
)

// @title QMS Tracker API
// @version 1.0
// @description Bid/quote tracking API over dual entry collections with query caching and bearer-token auth.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token from /auth/token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("storage init: %v", err)
	}

	// Initialize repositories
	entryRepo := repository.NewEntryRepository(store)
	userRepo := repository.NewUserRepository(store)
	themeRepo := repository.NewThemeRepository(store)
	tokenRepo := repository.NewTokenRepository(store)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize the query cache; NotFound is never worth retrying.
	cache := querycache.New(querycache.Options{
		StaleAfter:  cfg.CacheStaleAfter,
		EvictAfter:  cfg.CacheEvictAfter,
		MaxAttempts: cfg.CacheMaxAttempts,
		Backoff:     cfg.CacheBackoff,
		Retryable: func(err error) bool {
			return !errors.Is(err, qmserrors.ErrEntryNotFound)
		},
	})

	// Initialize services
	entryService := service.NewEntryService(entryRepo, cfg.LatencyFactor)
	cachedEntries := service.NewCachedEntryService(entryService, cache)
	userService := service.NewUserService(userRepo, tokenRepo, cfg.LatencyFactor)
	analyticsService := service.NewAnalyticsService(entryRepo, cfg.LatencyFactor)
	themeService := service.NewThemeService(themeRepo)
	authService := service.NewAuthService(userRepo, tokenRepo, jwtService)

	// Seed the default profile so the first profile read succeeds.
	if _, err := userService.EnsureDefault(context.Background()); err != nil {
		log.Fatalf("seed default user: %v", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	entryHandler := handler.NewEntryHandler(cachedEntries)
	userHandler := handler.NewUserHandler(userService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	themeHandler := handler.NewThemeHandler(themeService)
	seedHandler := handler.NewSeedHandler(entryRepo, cache)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		entryHandler,
		userHandler,
		analyticsHandler,
		themeHandler,
		seedHandler,
	)

	// Log swagger full path
	var swaggerURL string
	if cfg.SwaggerHost != "" {
		// SwaggerHost may already include scheme (http:// or https://)
		if len(cfg.SwaggerHost) >= 7 && cfg.SwaggerHost[:7] == "http://" {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else if len(cfg.SwaggerHost) >= 8 && cfg.SwaggerHost[:8] == "https://" {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	} else {
		swaggerURL = "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// newStore builds the persistence adapter selected by configuration.
func newStore(cfg *config.Config) (kv.Store, error) {
	switch cfg.StorageBackend {
	case "memory":
		return kv.NewMemoryStore(), nil
	case "mysql":
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		return kv.NewMySQLStore(gormDB)
	case "redis":
		return kv.NewRedisStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB), nil
	default:
		return kv.NewFileStore(cfg.DataDir)
	}
}
