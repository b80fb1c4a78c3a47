// Package render draws the Pong playfield into an RGB565 framebuffer.
package render

import (
	"fmt"
	"image/color"
	"math"

	"pong/fonts/font6x8"
	"pong/game"
	"pong/hal"

	"tinygo.org/x/tinyfont"
)

var (
	colorWhite = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	// 30% grey, as used for the net.
	colorGrey = color.RGBA{R: 0x4D, G: 0x4D, B: 0x4D, A: 0xFF}
)

const netWidth = 2

// Renderer draws game states. The zero value is not usable; call New.
type Renderer struct {
	font      tinyfont.Fonter
	textScale int
}

func New() *Renderer {
	return &Renderer{font: font6x8.Font, textScale: 2}
}

// Draw renders s and the fps counter, then presents the framebuffer.
func (r *Renderer) Draw(fb hal.Framebuffer, s game.State, fps float64) error {
	if fb == nil {
		return fmt.Errorf("render: no framebuffer: %w", hal.ErrNotImplemented)
	}
	if f := fb.Format(); f != hal.PixelFormatRGB565 {
		return fmt.Errorf("render: pixel format %d: %w", f, hal.ErrNotImplemented)
	}
	w := fb.Width()
	h := fb.Height()
	if w <= 0 || h <= 0 || fb.Buffer() == nil {
		return nil
	}

	fb.ClearRGB(0, 0, 0)
	c := canvas{buf: fb.Buffer(), w: w, h: h, stride: fb.StrideBytes()}

	netX := w / 2
	c.fillRect(netX-netWidth/2, int(game.Padding), netX-netWidth/2+netWidth, h-int(game.Padding), colorGrey)

	c.fillCentered(s.Player1.Pos, game.PaddleWidth, game.PaddleHeight, colorWhite)
	c.fillCentered(s.Player2.Pos, game.PaddleWidth, game.PaddleHeight, colorWhite)
	c.fillCentered(s.Ball.Pos, game.BallSize, game.BallSize, colorWhite)

	score := fmt.Sprintf("%d        %d", s.Score.Player1, s.Score.Player2)
	tw, th := r.textSize(score)
	r.drawText(fb, w/2-tw/2, th/2, score, colorWhite)

	r.drawText(fb, 0, 0, fmt.Sprintf("%.2f FPS", fps), colorWhite)

	return fb.Present()
}

// textSize returns the size in pixels of s at the renderer's text scale.
func (r *Renderer) textSize(s string) (w, h int) {
	_, outbox := tinyfont.LineWidth(r.font, s)
	return int(outbox) * r.textScale, int(r.font.GetYAdvance()) * r.textScale
}

// drawText draws s with its top-left corner at (x, y).
func (r *Renderer) drawText(fb hal.Framebuffer, x, y int, s string, c color.RGBA) {
	d := &fbDisplayer{fb: fb, ox: x, oy: y, scale: r.textScale}
	tinyfont.WriteLine(d, r.font, 0, int16(r.font.GetYAdvance())-1, s, c)
}

// canvas fills rectangles directly in an RGB565 buffer.
type canvas struct {
	buf    []byte
	w, h   int
	stride int
}

func (c canvas) fillCentered(center game.Vec2, w, h float64, col color.RGBA) {
	x0 := int(math.Round(center.X - w*0.5))
	y0 := int(math.Round(center.Y - h*0.5))
	c.fillRect(x0, y0, x0+int(w), y0+int(h), col)
}

// fillRect fills [x0,x1) x [y0,y1), clipped to the buffer.
func (c canvas) fillRect(x0, y0, x1, y1 int, col color.RGBA) {
	x0 = clampInt(x0, 0, c.w)
	y0 = clampInt(y0, 0, c.h)
	x1 = clampInt(x1, 0, c.w)
	y1 = clampInt(y1, 0, c.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	pixel := hal.RGB565(col.R, col.G, col.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for py := y0; py < y1; py++ {
		row := py * c.stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(c.buf) {
				continue
			}
			c.buf[off] = lo
			c.buf[off+1] = hi
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
