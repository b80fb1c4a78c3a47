package render

import (
	"image/color"

	"pong/hal"
)

// fbDisplayer adapts a framebuffer to drivers.Displayer for tinyfont.
// Glyph pixels are placed at (ox, oy) + scale*(x, y) as scale x scale blocks.
type fbDisplayer struct {
	fb     hal.Framebuffer
	ox, oy int
	scale  int
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil || d.scale <= 0 {
		return 0, 0
	}
	return int16((d.fb.Width() - d.ox) / d.scale), int16((d.fb.Height() - d.oy) / d.scale)
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 || d.scale <= 0 {
		return
	}
	cv := canvas{buf: d.fb.Buffer(), w: d.fb.Width(), h: d.fb.Height(), stride: d.fb.StrideBytes()}
	px := d.ox + int(x)*d.scale
	py := d.oy + int(y)*d.scale
	cv.fillRect(px, py, px+d.scale, py+d.scale, c)
}

func (d *fbDisplayer) Display() error { return nil }
