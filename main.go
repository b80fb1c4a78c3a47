package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"pong/app"
	"pong/hal"
	"pong/internal/config"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv, ".env", os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts := hal.Options{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Hz:       cfg.Hz,
		LogLevel: cfg.LogLevel,
	}
	appCfg := app.Config{Seed: cfg.ResolvedSeed(time.Now)}
	newApp := func(h hal.HAL) func() error {
		return app.New(h, appCfg)
	}

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, opts, hal.HeadlessConfig{Enabled: true, Ticks: cfg.Ticks}, newApp); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(opts, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
