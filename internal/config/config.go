// Package config resolves runtime settings from flags, the environment and
// an optional .env file, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment variables read as defaults.
const (
	EnvWidth    = "PONG_WIDTH"
	EnvHeight   = "PONG_HEIGHT"
	EnvHz       = "PONG_HZ"
	EnvSeed     = "PONG_SEED"
	EnvLogLevel = "PONG_LOG_LEVEL"
)

type Config struct {
	Headless bool
	Hz       int
	Ticks    uint64
	Width    int
	Height   int
	// Seed 0 picks a time-based seed at startup.
	Seed     uint64
	LogLevel zerolog.Level
}

func defaults() Config {
	return Config{
		Hz:       60,
		Width:    800,
		Height:   600,
		LogLevel: zerolog.InfoLevel,
	}
}

// Load parses args on top of getenv and the dotenv file. A missing dotenv
// file is not an error. Process environment wins over the file.
func Load(args []string, getenv func(string) string, dotenv string, usage io.Writer) (Config, error) {
	env, err := readDotenv(dotenv)
	if err != nil {
		return Config{}, err
	}
	lookup := func(k string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return env[k]
	}

	cfg := defaults()
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}

	logLevel := cfg.LogLevel.String()
	flags := flag.NewFlagSet("pong", flag.ContinueOnError)
	if usage != nil {
		flags.SetOutput(usage)
	}
	flags.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run without a window.")
	flags.IntVar(&cfg.Hz, "hz", cfg.Hz, "Frame rate.")
	flags.Uint64Var(&cfg.Ticks, "ticks", cfg.Ticks, "Stop after N frames in headless mode (0 = run forever).")
	flags.IntVar(&cfg.Width, "width", cfg.Width, "Initial playfield width in pixels.")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "Initial playfield height in pixels.")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Serve RNG seed (0 = time-based).")
	flags.StringVar(&logLevel, "log-level", logLevel, "Log level (trace, debug, info, warn, error).")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	lvl, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return Config{}, fmt.Errorf("config: -log-level: %w", err)
	}
	cfg.LogLevel = lvl

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolvedSeed returns Seed, or a seed derived from now when Seed is 0.
func (c Config) ResolvedSeed(now func() time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now().UnixNano())
}

func readDotenv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return env, nil
}

func (c *Config) applyEnv(lookup func(string) string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &c.Width},
		{EnvHeight, &c.Height},
		{EnvHz, &c.Hz},
	}
	for _, f := range ints {
		v := lookup(f.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", f.key, err)
		}
		*f.dst = n
	}

	if v := lookup(EnvSeed); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvSeed, err)
		}
		c.Seed = n
	}

	if v := lookup(EnvLogLevel); v != "" {
		lvl, err := zerolog.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvLogLevel, err)
		}
		c.LogLevel = lvl
	}
	return nil
}

func (c Config) validate() error {
	if c.Hz <= 0 {
		return fmt.Errorf("config: hz must be positive, got %d", c.Hz)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: playfield must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}
