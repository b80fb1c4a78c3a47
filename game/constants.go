package game

// Playfield and physics constants, in screen pixels and pixels per second.
const (
	Padding      = 40.0
	PaddleHeight = 100.0
	PaddleWidth  = 20.0
	BallSize     = 30.0
	PlayerSpeed  = 500.0
	BallSpeed    = 500.0
)
