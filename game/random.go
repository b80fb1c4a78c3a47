package game

import "math/rand/v2"

// NewRand returns the seedable random source used for serves.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomVector returns (±x, ±y) with each sign picked by an independent coin flip.
func RandomVector(r *rand.Rand, x, y float64) Vec2 {
	v := Vec2{X: -x, Y: -y}
	if r.IntN(2) == 0 {
		v.X = x
	}
	if r.IntN(2) == 0 {
		v.Y = y
	}
	return v
}
