//go:build cgo

package hal

import (
	"pong/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a resizable desktop window that displays the framebuffer
// and samples the keyboard once per tick. It blocks until the window closes
// or Escape is pressed.
func RunWindow(opts Options, newApp func(HAL) func() error) error {
	h := newHost(opts)
	step := newApp(h)

	hz := opts.Hz
	if hz <= 0 {
		hz = 60
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("Pong (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width, h.fb.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(hz)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	pix   []byte
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	if quitRequested() {
		return ebiten.Termination
	}
	g.h.kbd.poll()
	g.h.clock.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != fb.width || g.fbImg.Bounds().Dy() != fb.height {
		g.pix = make([]byte, fb.width*fb.height*4)
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGBA(g.pix)
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

// Layout makes the playfield follow the window size.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.h.fb.resize(outsideWidth, outsideHeight)
	return g.h.fb.width, g.h.fb.height
}
