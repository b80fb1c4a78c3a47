package hal

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"
)

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var calls int
	var sawSize bool
	err := RunHeadless(context.Background(), Options{Width: 320, Height: 200, Hz: 1000, LogOutput: io.Discard}, HeadlessConfig{Ticks: 5},
		func(h HAL) func() error {
			fb := h.Display().Framebuffer()
			sawSize = fb.Width() == 320 && fb.Height() == 200
			return func() error {
				calls++
				return nil
			}
		})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if calls != 5 {
		t.Fatalf("expected 5 steps, got %d", calls)
	}
	if !sawSize {
		t.Fatal("expected framebuffer sized from options")
	}
}

func TestRunHeadlessPropagatesStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), Options{Hz: 1000, LogOutput: io.Discard}, HeadlessConfig{},
		func(HAL) func() error {
			return func() error { return boom }
		})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := RunHeadless(ctx, Options{Hz: 1000, LogOutput: io.Discard}, HeadlessConfig{},
		func(HAL) func() error { return nil })
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestHostKeyboardIdle(t *testing.T) {
	h := newHost(Options{LogOutput: io.Discard})
	kbd := h.Input().Keyboard()
	for k := KeyP1Up; k < keyCount; k++ {
		if kbd.Held(k) {
			t.Fatalf("%s held on a fresh host", k)
		}
	}
	h.kbd.set(KeyP2Down, true)
	if !kbd.Held(KeyP2Down) {
		t.Fatal("expected p2-down held")
	}
	if kbd.Held(keyCount) {
		t.Fatal("out of range key reported held")
	}
}
