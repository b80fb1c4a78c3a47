// Package game implements the Pong simulation: paddle movement, ball
// integration, wall and paddle collisions, and scoring.
//
// The package has no graphics or input dependencies. Hosts build a
// FrameInput each frame, call Game.Step and draw from Game.State.
package game

import "math/rand/v2"

// Game owns a State and the random source used to serve the ball.
// It is not safe for concurrent use; the frame loop owns it.
type Game struct {
	state State
	rng   *rand.Rand
}

// New starts a match on a width x height playfield.
func New(width, height float64, seed uint64) *Game {
	rng := NewRand(seed)
	return &Game{
		state: NewState(width, height, rng),
		rng:   rng,
	}
}

// Step advances the match by one frame.
func (g *Game) Step(in FrameInput) (Events, error) {
	next, ev, err := g.state.Step(in, g.rng)
	if err != nil {
		return 0, err
	}
	g.state = next
	return ev, nil
}

// State returns a copy of the current state.
func (g *Game) State() State { return g.state }
