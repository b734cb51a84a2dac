package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/hogpulse/config"
)

// serviceName tags every line so shipped logs can be filtered per service.
const serviceName = "hogpulse"

var (
	mu          sync.Mutex
	base        zerolog.Logger
	initialized atomic.Bool
)

// New builds a JSON logger writing to w with the level and format of cfg.
// Every line carries service=hogpulse and an RFC 3339 timestamp.
func New(w io.Writer, cfg config.LogConfig) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).With().
		Timestamp().
		Str("service", serviceName).
		Logger().
		Level(parseLevel(cfg.Level))
}

// Init configures the global logger from config.AppConfig.Log (LOG_LEVEL,
// LOG_PRETTY). Call it once on startup, after config.LoadConfig.
func Init() {
	SetOutput(os.Stdout)
}

// SetOutput rebuilds the global logger to write to w.
func SetOutput(w io.Writer) {
	l := New(w, config.AppConfig.Log)
	mu.Lock()
	base = l
	initialized.Store(true)
	mu.Unlock()
}

// L returns the global logger, configuring it from config.AppConfig on first use
// when Init was never called.
func L() *zerolog.Logger {
	if !initialized.Load() {
		mu.Lock()
		if !initialized.Load() {
			base = New(os.Stdout, config.AppConfig.Log)
			initialized.Store(true)
		}
		mu.Unlock()
	}
	return &base
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
