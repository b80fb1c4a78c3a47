package game

import (
	"errors"
	"testing"
)

func TestGameStepAndSnapshot(t *testing.T) {
	g := New(800, 600, 5)
	before := g.State()

	if _, err := g.Step(FrameInput{Width: 800, Height: 600, DT: 0.01}); err != nil {
		t.Fatalf("Step: %v", err)
	}
	after := g.State()
	if after.Ball.Pos == before.Ball.Pos {
		t.Fatal("expected the ball to move")
	}

	// The snapshot is a copy.
	after.Score.Player1 = 99
	if g.State().Score.Player1 != 0 {
		t.Fatal("expected State to return a copy")
	}
}

func TestGameStepKeepsStateOnError(t *testing.T) {
	g := New(800, 600, 5)
	before := g.State()
	if _, err := g.Step(FrameInput{Width: 800, DT: 0.01}); !errors.Is(err, ErrInvalidPlayfield) {
		t.Fatalf("expected ErrInvalidPlayfield, got %v", err)
	}
	if g.State() != before {
		t.Fatal("expected state unchanged")
	}
}

func TestGameSameSeedSameMatch(t *testing.T) {
	a := New(800, 600, 11)
	b := New(800, 600, 11)
	in := FrameInput{Width: 800, Height: 600, DT: 1.0 / 60}
	for i := 0; i < 2000; i++ {
		if _, err := a.Step(in); err != nil {
			t.Fatalf("Step: %v", err)
		}
		if _, err := b.Step(in); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if a.State() != b.State() {
		t.Fatalf("states diverged: %+v vs %+v", a.State(), b.State())
	}
}

func TestEventsString(t *testing.T) {
	if s := Events(0).String(); s != "none" {
		t.Fatalf("got %q", s)
	}
	if s := (EventPlayer1Scored | EventWallBounce).String(); s != "p1-scored|wall" {
		t.Fatalf("got %q", s)
	}
	if !(EventPaddle2Hit | EventWallBounce).Has(EventPaddle2Hit) {
		t.Fatal("expected Has")
	}
	if !EventPlayer1Scored.Scored() || EventWallBounce.Scored() {
		t.Fatal("unexpected Scored result")
	}
}
