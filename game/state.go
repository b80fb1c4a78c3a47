package game

import (
	"math"
	"math/rand/v2"
)

// Score counts points per player. Counters only ever grow by one per point.
type Score struct {
	Player1 int
	Player2 int
}

// State is the complete simulation state for one match.
type State struct {
	Player1 Paddle
	Player2 Paddle
	Ball    Ball
	Score   Score
}

// NewState places both paddles at mid-height, PADDING from their edge, and
// serves the ball from the center.
func NewState(width, height float64, r *rand.Rand) State {
	return State{
		Player1: Paddle{Pos: Vec2{X: leftPaddleX(), Y: height * 0.5}},
		Player2: Paddle{Pos: Vec2{X: rightPaddleX(width), Y: height * 0.5}},
		Ball: Ball{
			Pos: Vec2{X: width * 0.5, Y: height * 0.5},
			Vel: RandomVector(r, BallSpeed, BallSpeed),
		},
	}
}

// Step advances s by one frame and returns the new state. An invalid
// playfield leaves the state untouched and returns the validation error.
func (s State) Step(in FrameInput, r *rand.Rand) (State, Events, error) {
	if err := in.Validate(); err != nil {
		return s, 0, err
	}
	dt := in.delta()

	// Re-anchor horizontally so a resized window keeps the paddles in view.
	s.Player1.Pos.X = leftPaddleX()
	s.Player2.Pos.X = rightPaddleX(in.Width)

	// One call per key: holding both applies both deltas, each clamped.
	s.Player1.Pos = MovePaddle(s.Player1.Pos, in.Keys.P1Up, -1, dt, in.Height)
	s.Player1.Pos = MovePaddle(s.Player1.Pos, in.Keys.P1Down, 1, dt, in.Height)
	s.Player2.Pos = MovePaddle(s.Player2.Pos, in.Keys.P2Up, -1, dt, in.Height)
	s.Player2.Pos = MovePaddle(s.Player2.Pos, in.Keys.P2Down, 1, dt, in.Height)

	s.Ball.integrate(dt)
	ev := s.resolve(in.Width, in.Height, r)
	return s, ev, nil
}

// resolve applies scoring, wall bounces and paddle hits, in that order.
func (s *State) resolve(width, height float64, r *rand.Rand) Events {
	var ev Events

	if s.Ball.Pos.X < 0 {
		s.Score.Player2++
		s.serve(width, height, r)
		ev |= EventPlayer2Scored
	} else if s.Ball.Pos.X > width {
		s.Score.Player1++
		s.serve(width, height, r)
		ev |= EventPlayer1Scored
	}

	half := BallSize * 0.5
	if s.Ball.Pos.Y-half < 0 {
		s.Ball.Pos.Y = half
		s.Ball.Vel.Y = math.Abs(s.Ball.Vel.Y)
		ev |= EventWallBounce
	} else if s.Ball.Pos.Y+half > height {
		s.Ball.Pos.Y = height - half
		s.Ball.Vel.Y = -math.Abs(s.Ball.Vel.Y)
		ev |= EventWallBounce
	}

	// Sign flips only: the ball is not pushed out of the paddle and its
	// vertical velocity is kept.
	ball := s.Ball.box()
	if ball.overlaps(s.Player1.box()) {
		s.Ball.Vel.X = math.Abs(s.Ball.Vel.X)
		ev |= EventPaddle1Hit
	} else if ball.overlaps(s.Player2.box()) {
		s.Ball.Vel.X = -math.Abs(s.Ball.Vel.X)
		ev |= EventPaddle2Hit
	}
	return ev
}

func (s *State) serve(width, height float64, r *rand.Rand) {
	s.Ball.Pos = Vec2{X: width * 0.5, Y: height * 0.5}
	s.Ball.Vel = RandomVector(r, BallSpeed, BallSpeed)
}
