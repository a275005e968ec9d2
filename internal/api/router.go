package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vidstream/account-system/internal/api/handler"
	"github.com/vidstream/account-system/internal/api/middleware"
	"github.com/vidstream/account-system/internal/core/service"
	"github.com/vidstream/account-system/internal/infrastructure/config"
	mongodb "github.com/vidstream/account-system/internal/infrastructure/db/mongo"
	redisdb "github.com/vidstream/account-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// recorder may be nil, in which case no activity is logged (tests).
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, recorder handler.ActivityRecorder) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.Secure())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	jwtSecret, _ := cfg.EffectiveJWTSecret()

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	authHandler := handler.NewAuthHandler(authService, recorder)
	authMiddleware := middleware.Auth(jwtSecret)

	limiter := redisdb.NewRateLimiter(rdb, cfg.RateLimit.Max, time.Duration(cfg.RateLimit.Window)*time.Minute)

	// --- Auth routes (rate limited as a group) ---
	auth := e.Group("/api/auth", middleware.RateLimit(limiter, log))
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/login", authHandler.Users) // legacy API parity: unauthenticated listing
	auth.GET("/check-auth", authHandler.CheckAuth, authMiddleware)
	auth.POST("/signout", authHandler.Signout, authMiddleware)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
