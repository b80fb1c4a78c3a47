package game

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPlayfield is returned for frames with a non-positive or
// non-finite playfield size.
var ErrInvalidPlayfield = errors.New("game: invalid playfield size")

// Keys holds the per-frame "is held" state of the four movement keys.
type Keys struct {
	P1Up   bool
	P1Down bool
	P2Up   bool
	P2Down bool
}

// FrameInput is everything the host loop supplies for one frame.
type FrameInput struct {
	Width  float64
	Height float64
	// DT is the elapsed time since the previous frame, in seconds.
	DT   float64
	Keys Keys
}

// Validate rejects frames whose playfield size cannot be simulated.
func (in FrameInput) Validate() error {
	if !finitePositive(in.Width) || !finitePositive(in.Height) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidPlayfield, in.Width, in.Height)
	}
	return nil
}

// delta returns DT, or 0 when DT is negative, NaN or infinite.
func (in FrameInput) delta() float64 {
	if math.IsNaN(in.DT) || math.IsInf(in.DT, 0) || in.DT < 0 {
		return 0
	}
	return in.DT
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
