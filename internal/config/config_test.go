package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, envMap(nil), "", io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 || cfg.Hz != 60 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Headless || cfg.Ticks != 0 || cfg.Seed != 0 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.LogLevel != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %s", cfg.LogLevel)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	data := "PONG_WIDTH=1024\nPONG_HEIGHT=768\nPONG_SEED=5\nPONG_LOG_LEVEL=warn\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	env := envMap(map[string]string{"PONG_HEIGHT": "700", "PONG_HZ": "120"})
	cfg, err := Load([]string{"-seed", "9", "-headless", "-ticks", "30"}, env, path, io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 1024 {
		t.Fatalf("expected width from .env, got %d", cfg.Width)
	}
	if cfg.Height != 700 {
		t.Fatalf("expected environment to beat .env, got %d", cfg.Height)
	}
	if cfg.Hz != 120 {
		t.Fatalf("expected hz from environment, got %d", cfg.Hz)
	}
	if cfg.Seed != 9 {
		t.Fatalf("expected flag to beat .env, got %d", cfg.Seed)
	}
	if !cfg.Headless || cfg.Ticks != 30 {
		t.Fatalf("expected headless with 30 ticks, got %+v", cfg)
	}
	if cfg.LogLevel != zerolog.WarnLevel {
		t.Fatalf("expected warn level, got %s", cfg.LogLevel)
	}
}

func TestLoadMissingDotenv(t *testing.T) {
	if _, err := Load(nil, envMap(nil), filepath.Join(t.TempDir(), "nope.env"), io.Discard); err != nil {
		t.Fatalf("expected missing .env to be ignored, got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		env  map[string]string
		want string
	}{
		{"bad env int", nil, map[string]string{EnvWidth: "wide"}, EnvWidth},
		{"bad env seed", nil, map[string]string{EnvSeed: "-1"}, EnvSeed},
		{"bad env level", nil, map[string]string{EnvLogLevel: "loud"}, EnvLogLevel},
		{"bad flag level", []string{"-log-level", "loud"}, nil, "-log-level"},
		{"zero hz", []string{"-hz", "0"}, nil, "hz"},
		{"negative size", []string{"-width", "-5"}, nil, "playfield"},
	}
	for _, tc := range cases {
		_, err := Load(tc.args, envMap(tc.env), "", io.Discard)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error mentioning %q, got %v", tc.name, tc.want, err)
		}
	}
}

func TestLoadHelp(t *testing.T) {
	_, err := Load([]string{"-h"}, envMap(nil), "", io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}

func TestResolvedSeed(t *testing.T) {
	now := func() time.Time { return time.Unix(0, 1234) }
	if got := (Config{Seed: 7}).ResolvedSeed(now); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if got := (Config{}).ResolvedSeed(now); got != 1234 {
		t.Fatalf("expected 1234, got %d", got)
	}
}
