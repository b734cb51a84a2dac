package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/guttosm/hogpulse/config"
)

// capture points the global logger at a buffer for the duration of the test.
func capture(t *testing.T, cfg config.LogConfig) *bytes.Buffer {
	t.Helper()
	old := config.AppConfig.Log
	config.AppConfig.Log = cfg
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		config.AppConfig.Log = old
		Init()
	})
	return &buf
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" Warn ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"ERR", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Fatalf("parseLevel(%q)=%v, want %v", c.in, got, c.want)
		}
	}
}

func TestSetOutput_UsesAppConfig(t *testing.T) {
	buf := capture(t, config.LogConfig{Level: "warn"})

	L().Info().Msg("dropped")
	L().Warn().Str("region", "Region III").Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected only the warn line, got %q", buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if entry["service"] != "hogpulse" || entry["level"] != "warn" || entry["region"] != "Region III" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("missing timestamp in %v", entry)
	}
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, config.LogConfig{Level: "debug", Pretty: true})
	if l.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %v", l.GetLevel())
	}
	l.Debug().Msg("console line")
	out := buf.String()
	if strings.HasPrefix(out, "{") || !strings.Contains(out, "console line") || !strings.Contains(out, "hogpulse") {
		t.Fatalf("expected console output, got %q", out)
	}
}

func TestL_InitializesOnFirstUse(t *testing.T) {
	mu.Lock()
	oldBase, oldInit := base, initialized.Load()
	base = zerolog.Logger{}
	initialized.Store(false)
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		base = oldBase
		initialized.Store(oldInit)
		mu.Unlock()
	})

	lg := L()
	if !initialized.Load() {
		t.Fatalf("L must mark the logger initialized")
	}
	if lg.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info level from an empty config, got %v", lg.GetLevel())
	}
	if L() != lg {
		t.Fatalf("L must keep returning the same logger")
	}
}
