package game

import "testing"

func TestRandomVectorDomain(t *testing.T) {
	r := NewRand(42)
	seen := map[Vec2]int{}
	for i := 0; i < 1000; i++ {
		v := RandomVector(r, 3, 7)
		if (v.X != 3 && v.X != -3) || (v.Y != 7 && v.Y != -7) {
			t.Fatalf("unexpected vector %+v", v)
		}
		seen[v]++
	}
	if len(seen) != 4 {
		t.Fatalf("expected all 4 sign combinations, got %v", seen)
	}
	for v, n := range seen {
		if n < 150 {
			t.Fatalf("combination %+v seen only %d/1000 times", v, n)
		}
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a := NewRand(7)
	b := NewRand(7)
	for i := 0; i < 64; i++ {
		va := RandomVector(a, BallSpeed, BallSpeed)
		vb := RandomVector(b, BallSpeed, BallSpeed)
		if va != vb {
			t.Fatalf("draw %d: %+v != %+v", i, va, vb)
		}
	}
}
