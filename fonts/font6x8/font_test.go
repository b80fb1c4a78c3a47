package font6x8

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

type recorder struct {
	px map[[2]int16]bool
}

func (r *recorder) Size() (x, y int16) { return 64, 16 }

func (r *recorder) SetPixel(x, y int16, c color.RGBA) {
	if r.px == nil {
		r.px = map[[2]int16]bool{}
	}
	r.px[[2]int16{x, y}] = true
}

func (r *recorder) Display() error { return nil }

func TestGlyphDrawsAboveBaseline(t *testing.T) {
	var d recorder
	Font.GetGlyph('1').Draw(&d, 10, 7, color.RGBA{A: 0xFF})
	if len(d.px) == 0 {
		t.Fatal("expected pixels")
	}
	for p := range d.px {
		if p[0] < 10 || p[0] >= 10+Width-1 || p[1] < 0 || p[1] > 7 {
			t.Fatalf("pixel %v outside the glyph cell", p)
		}
	}
	// Top row of '1' is a single pixel in the middle column.
	if !d.px[[2]int16{12, 0}] {
		t.Fatal("expected top pixel of '1' at (12,0)")
	}
}

func TestLowerCaseAndUnknownRunes(t *testing.T) {
	lower, ok := lookup('f')
	if !ok || lower != glyphs['F'] {
		t.Fatal("expected 'f' to render as 'F'")
	}
	unknown, ok := lookup('Ж')
	if !ok || unknown != glyphs['?'] {
		t.Fatal("expected unknown rune to render as '?'")
	}
}

func TestLineWidth(t *testing.T) {
	_, outbox := tinyfont.LineWidth(Font, "12.34 FPS")
	if outbox < 8*Width || outbox > 9*Width {
		t.Fatalf("expected about %d pixels, got %d", 9*Width, outbox)
	}
}
