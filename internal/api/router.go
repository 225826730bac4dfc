package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/conneco/feed-api/internal/api/handler"
	"github.com/conneco/feed-api/internal/api/middleware"
	"github.com/conneco/feed-api/internal/core/service"
	mongodb "github.com/conneco/feed-api/internal/infrastructure/db/mongo"
	redisdb "github.com/conneco/feed-api/internal/infrastructure/db/redis"
	"github.com/conneco/feed-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Routes are exact method+path matches and disjoint by construction; anything
// unmatched falls through to Echo's 404, rendered through the envelope by the
// central error handler. CORS preflight is short-circuited by the CORS
// middleware before any routing.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("feed"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	tokenService := service.NewTokenService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, tokenService, log)
	postService := service.NewPostService(postRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)

	limiter := redisdb.NewRateLimiter(rdb, cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)

	// --- Auth routes (rate limited, no token required) ---
	auth := e.Group("/auth", middleware.RateLimit(limiter, log))
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// --- Post routes (token required, credential re-validated per request) ---
	posts := e.Group("/posts", middleware.Auth(tokenService, userRepo))
	posts.POST("/create", postHandler.Create)
	posts.GET("/user", postHandler.ListMine)
	posts.POST("/search", postHandler.Search)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
