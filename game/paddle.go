package game

// Paddle is a center-anchored PaddleWidth x PaddleHeight rectangle.
type Paddle struct {
	Pos Vec2
}

func (p Paddle) box() box { return centeredBox(p.Pos, PaddleWidth, PaddleHeight) }

// MovePaddle moves pos by dir*PlayerSpeed*dt when held and keeps the paddle
// inside [PaddleHeight/2, screenHeight-PaddleHeight/2]. The clamp applies
// whether or not the key is held.
func MovePaddle(pos Vec2, held bool, dir, dt, screenHeight float64) Vec2 {
	if held {
		pos.Y += dir * PlayerSpeed * dt
	}
	Clamp(&pos.Y, PaddleHeight*0.5, screenHeight-PaddleHeight*0.5)
	return pos
}

func leftPaddleX() float64 { return Padding + PaddleWidth*0.5 }

func rightPaddleX(width float64) float64 { return width - Padding - PaddleWidth*0.5 }
