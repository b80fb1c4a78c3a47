package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	// Ticks stops the runner after N frames (0 = run until ctx is done).
	Ticks uint64
}

// RunHeadless runs the game without opening a window. No keys are ever held.
func RunHeadless(ctx context.Context, opts Options, cfg HeadlessConfig, newApp func(HAL) func() error) error {
	if opts.Hz <= 0 {
		opts.Hz = 60
	}

	h := newHost(opts)
	step := newApp(h)

	d := time.Second / time.Duration(opts.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", opts.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.clock.step()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
