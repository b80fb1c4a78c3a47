// Package app wires the simulation and the renderer to a HAL.
package app

import (
	"errors"
	"fmt"

	"pong/game"
	"pong/hal"
	"pong/internal/buildinfo"
	"pong/render"

	"github.com/rs/zerolog"
)

type Config struct {
	// Seed drives every serve direction of the match.
	Seed uint64
}

type system struct {
	h    hal.HAL
	log  zerolog.Logger
	game *game.Game
	r    *render.Renderer

	width, height int
}

// New starts a match on the HAL's framebuffer and returns the per-frame step.
func New(h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	return recoverStep(s.log, s.step)
}

func newSystem(h hal.HAL, cfg Config) *system {
	fb := h.Display().Framebuffer()
	s := &system{
		h:      h,
		log:    h.Logger().With().Str("component", "game").Logger(),
		game:   game.New(float64(fb.Width()), float64(fb.Height()), cfg.Seed),
		r:      render.New(),
		width:  fb.Width(),
		height: fb.Height(),
	}
	s.log.Info().
		Str("build", buildinfo.String()).
		Int("width", s.width).
		Int("height", s.height).
		Uint64("seed", cfg.Seed).
		Msg("match started")
	return s
}

func (s *system) step() error {
	fb := s.h.Display().Framebuffer()
	kbd := s.h.Input().Keyboard()
	clock := s.h.Clock()

	if w, h := fb.Width(), fb.Height(); w != s.width || h != s.height {
		s.log.Debug().Int("width", w).Int("height", h).Msg("playfield resized")
		s.width, s.height = w, h
	}

	in := game.FrameInput{
		Width:  float64(s.width),
		Height: float64(s.height),
		DT:     clock.Delta(),
		Keys: game.Keys{
			P1Up:   kbd.Held(hal.KeyP1Up),
			P1Down: kbd.Held(hal.KeyP1Down),
			P2Up:   kbd.Held(hal.KeyP2Up),
			P2Down: kbd.Held(hal.KeyP2Down),
		},
	}
	ev, err := s.game.Step(in)
	if errors.Is(err, game.ErrInvalidPlayfield) {
		// Minimized windows report an empty playfield; wait for a real one.
		s.log.Debug().Err(err).Msg("frame skipped")
		return nil
	}
	if err != nil {
		return err
	}
	s.logEvents(ev)

	if err := s.r.Draw(fb, s.game.State(), clock.FPS()); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	return nil
}

func (s *system) logEvents(ev game.Events) {
	if ev == 0 {
		return
	}
	if ev.Scored() {
		score := s.game.State().Score
		player := 1
		if ev.Has(game.EventPlayer2Scored) {
			player = 2
		}
		s.log.Info().
			Int("player", player).
			Int("p1", score.Player1).
			Int("p2", score.Player2).
			Msg("point scored")
	}
	s.log.Debug().Stringer("events", ev).Msg("frame events")
}
