package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/guttosm/hogpulse/config"
	"github.com/guttosm/hogpulse/internal/api"
	"github.com/guttosm/hogpulse/internal/auth"
	"github.com/guttosm/hogpulse/internal/events"
	"github.com/guttosm/hogpulse/internal/identity"
	"github.com/guttosm/hogpulse/internal/logger"
	"github.com/guttosm/hogpulse/internal/middleware"
	"github.com/guttosm/hogpulse/internal/service"
	"github.com/guttosm/hogpulse/internal/storage"
)

// publisherOpener is an indirection for unit testing; defaults to the AMQP publisher.
var publisherOpener = func(url, queue string) (events.Publisher, error) {
	return events.NewAMQPPublisher(url, queue)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres() and wraps it with sqlx.
//   - Connects the optional integrations: Redis for the shared rate limiter and
//     RabbitMQ for price.submitted events. Either one failing to connect is logged
//     and replaced by its in-process fallback (memory limiter, no-op publisher).
//   - Initializes repositories, services and the HTTP handler layer.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}
	sqlxDB := sqlx.NewDb(db, "postgres")

	// ─── Optional integrations ─────────────────────
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.AMQP.URL != "" {
		p, err := publisherOpener(cfg.AMQP.URL, cfg.AMQP.Queue)
		if err != nil {
			logger.L().Warn().Err(err).Msg("amqp unavailable, price events disabled")
		} else {
			publisher = p
		}
	}

	checks := []api.Check{{Name: "postgres", Ping: db.PingContext}}
	var rateStore middleware.RateStore = middleware.NewMemoryStore(time.Minute)
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisOpener(cfg)
		if err != nil {
			logger.L().Warn().Err(err).Msg("redis unavailable, using in-memory rate limiter")
		} else {
			rateStore = middleware.NewRedisStore(rdb, time.Minute)
			checks = append(checks, api.Check{Name: "redis", Ping: func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			}})
		}
	}

	// ─── Domain wiring ─────────────────────────────
	priceRepo := storage.NewPriceRepository(sqlxDB)
	profileRepo := storage.NewProfileRepository(sqlxDB)

	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)

	handler := api.NewHandler(
		service.NewAggregateService(priceRepo),
		service.NewSubmissionService(priceRepo, publisher),
		service.NewProfileService(profileRepo, identity.DefaultRegistry(), issuer),
		api.WithRequireUserForSubmit(cfg.Auth.RequireForSubmit),
	)

	router := api.NewRouter(handler, api.RouterConfig{
		Verifier:       verifier,
		RateStore:      rateStore,
		RateLimit:      cfg.RateLimit.PerMinute,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		InternalKey:    cfg.Auth.InternalKey,
		ServiceName:    cfg.Telemetry.ServiceName,
	})

	api.NewHealthHandler(checks...).Register(router)

	cleanup := func() {
		if err := publisher.Close(); err != nil {
			logger.L().Warn().Err(err).Msg("failed to close publisher")
		}
		if rdb != nil {
			_ = rdb.Close()
		}
		_ = db.Close()
	}

	return router, cleanup, nil
}
