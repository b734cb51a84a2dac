package api

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/guttosm/hogpulse/internal/middleware"
)

// requestTimeout bounds every request context.
const requestTimeout = 10 * time.Second

// RouterConfig carries the cross-cutting settings of the HTTP layer.
type RouterConfig struct {
	// Verifier checks bearer tokens on every route.
	Verifier middleware.TokenVerifier
	// RateStore and RateLimit configure the per-IP limiter; a nil store disables it.
	RateStore middleware.RateStore
	RateLimit int
	// AllowedOrigins lists CORS origins; empty allows any origin.
	AllowedOrigins []string
	// InternalKey guards the identity exchange endpoint.
	InternalKey string
	// ServiceName names the server spans.
	ServiceName string
}

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, tracing, Logger, Recovery, CORS, ErrorHandler, RateLimiter, Authenticate).
//   - Adds request timeout handling (10 seconds).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
//
// Parameters:
//   - handler (*Handler): The HTTP handler with business logic.
//   - cfg (RouterConfig): middleware settings.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(handler *Handler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		otelgin.Middleware(serviceName(cfg)),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		cors.New(corsConfig(cfg.AllowedOrigins)),
		middleware.ErrorHandler,
	)
	if cfg.RateStore != nil && cfg.RateLimit > 0 {
		router.Use(middleware.RateLimiter(cfg.RateStore, cfg.RateLimit))
	}
	if cfg.Verifier != nil {
		router.Use(middleware.Authenticate(cfg.Verifier))
	}

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		prices := v1.Group("/prices")
		prices.GET("/aggregated", handler.GetAggregatedPrices)
		prices.GET("/regional", handler.GetRegionalPrices)
		prices.POST("/submit", handler.SubmitPrice)

		users := v1.Group("/users", middleware.RequireUser())
		users.GET("/profile", handler.GetProfile)
		users.PATCH("/profile", handler.UpdateProfile)
		users.GET("/submissions", handler.ListSubmissions)
		users.GET("/submissions/:id", handler.GetSubmission)

		v1.POST("/auth/:provider/exchange", middleware.RequireInternalKey(cfg.InternalKey), handler.ExchangeIdentity)
	}

	return router
}

func serviceName(cfg RouterConfig) string {
	if cfg.ServiceName == "" {
		return "hogpulse"
	}
	return cfg.ServiceName
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
