package main

//
//  @title           hogpulse API
//  @version         1.0
//  @description     Crowd-sourced live hog price aggregation service.
//  @termsOfService  https://github.com/guttosm/hogpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/hogpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @securityDefinitions.apikey  BearerAuth
//  @in                          header
//  @name                        Authorization
//
//  @tag.name        prices
//  @tag.description Aggregated, regional and submitted price observations
//
//  @tag.name        users
//  @tag.description Profile and submission history of the signed-in user
//
//  @tag.name        auth
//  @tag.description Identity-provider exchange (internal)
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/hogpulse/config"
	_ "github.com/guttosm/hogpulse/docs" // swagger docs
	"github.com/guttosm/hogpulse/internal/app"
	"github.com/guttosm/hogpulse/internal/ingestion"
	"github.com/guttosm/hogpulse/internal/logger"
	"github.com/guttosm/hogpulse/internal/telemetry"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runMigrate applies every pending migration.
func runMigrate(cfg config.Config) error {
	db, err := app.InitPostgres(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return app.Migrate(db)
}

// runImport loads every CSV file in dir.
func runImport(ctx context.Context, cfg config.Config, dir string, parallel int, force bool) error {
	db, err := app.InitPostgres(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return ingestion.ProcessDirectory(ctx, dir, db, parallel, force)
}

// main is the entry point of the hogpulse application.
//
// Modes (selected via --mode flag):
//   - api:     Starts the REST API.
//   - migrate: Applies the embedded database migrations and exits.
//   - import:  Loads every .csv price file from --dir.
//
// Flags:
//   - --mode: Execution mode ("api", "migrate" or "import"). Default: "api".
//   - --dir:  Directory containing .csv input files. Default: "./data/input".
//   - --parallel: Files imported at once (0 = auto, max 7).
//   - --force: Re-import files already recorded in import_log.
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api, migrate or import")
	dir := flag.String("dir", "./data/input", "Directory with .csv files")
	parallel := flag.Int("parallel", 0, "How many files to import concurrently (0=auto up to CPU, max 7)")
	force := flag.Bool("force", false, "Re-import files even if already imported (deletes their previous rows)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "migrate":
		logger.L().Info().Msg("running migrations")
		if err := runMigrate(config.AppConfig); err != nil {
			logger.L().Fatal().Err(err).Msg("migration failed")
		}
		logger.L().Info().Msg("migrations completed successfully")

	case "import":
		logger.L().Info().Str("dir", *dir).Msg("running import")
		if err := runImport(ctx, config.AppConfig, *dir, *parallel, *force); err != nil {
			logger.L().Fatal().Err(err).Msg("import failed")
		}
		logger.L().Info().Msg("import completed successfully")

	case "api":
		logger.L().Info().Msg("starting API server")

		tc := config.AppConfig.Telemetry
		shutdownTracing, err := telemetry.Init(ctx, telemetry.Config{
			Endpoint:       tc.Endpoint,
			ServiceName:    tc.ServiceName,
			ServiceVersion: tc.ServiceVersion,
		})
		if err != nil {
			logger.L().Fatal().Err(err).Msg("telemetry init error")
		}

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, func() {
			cleanup()
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(flushCtx); err != nil {
				logger.L().Warn().Err(err).Msg("telemetry shutdown")
			}
		})

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
