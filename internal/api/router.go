package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cosbuyai/shopping-api/internal/api/handler"
	"github.com/cosbuyai/shopping-api/internal/core/ports"
	"github.com/cosbuyai/shopping-api/internal/core/service"
	mongodb "github.com/cosbuyai/shopping-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cosbuyai/shopping-api/internal/infrastructure/db/redis"
	"github.com/cosbuyai/shopping-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, completion ports.CompletionClient, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("shopsearch"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	cache := redisdb.NewCompletionCache(rdb)

	authService := service.NewAuthService(userRepo)
	searchService := service.NewSearchService(userRepo, completion, cache, cfg.Redis.CacheTTL, log)

	authHandler := handler.NewAuthHandler(authService)
	searchHandler := handler.NewSearchHandler(searchService)

	// --- Landing page ---
	e.File("/", "public/home.html")

	// --- API routes ---
	e.POST("/api/signup", authHandler.Signup)
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/search", searchHandler.Search)
	e.GET("/api/history/:userId", searchHandler.History)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
