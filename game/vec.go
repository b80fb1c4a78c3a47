package game

// Vec2 is a 2D point or vector.
type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{X: v.X * k, Y: v.Y * k} }

// Clamp bounds *v to [low, high].
func Clamp(v *float64, low, high float64) {
	if *v < low {
		*v = low
	} else if *v > high {
		*v = high
	}
}

// Clamped is the value form of Clamp.
func Clamped(v, low, high float64) float64 {
	Clamp(&v, low, high)
	return v
}

// box is an axis-aligned rectangle given by its edges.
type box struct {
	left, top, right, bottom float64
}

func centeredBox(center Vec2, w, h float64) box {
	return box{
		left:   center.X - w*0.5,
		top:    center.Y - h*0.5,
		right:  center.X + w*0.5,
		bottom: center.Y + h*0.5,
	}
}

// overlaps reports strict overlap; touching edges do not count.
func (b box) overlaps(o box) bool {
	return b.left < o.right &&
		b.right > o.left &&
		b.top < o.bottom &&
		b.bottom > o.top
}
