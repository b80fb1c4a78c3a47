package game

// Ball is a center-anchored BallSize square.
type Ball struct {
	Pos Vec2
	Vel Vec2
}

func (b Ball) box() box { return centeredBox(b.Pos, BallSize, BallSize) }

// integrate advances the ball with a single Euler step. Fast balls can tunnel
// through paddles at low frame rates.
func (b *Ball) integrate(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}
