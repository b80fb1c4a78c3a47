package hal

import (
	"errors"

	"github.com/rs/zerolog"
)

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// The size follows the host window and may change between frames.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Key is a logical game key.
type Key uint8

const (
	KeyP1Up Key = iota
	KeyP1Down
	KeyP2Up
	KeyP2Down
	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyP1Up:
		return "p1-up"
	case KeyP1Down:
		return "p1-down"
	case KeyP2Up:
		return "p2-up"
	case KeyP2Down:
		return "p2-down"
	}
	return "unknown"
}

// Keyboard reports which keys are held during the current frame.
type Keyboard interface {
	Held(k Key) bool
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices.
type Input interface {
	Keyboard() Keyboard
}

// Clock measures frame time. Delta is the time since the previous frame in
// seconds; FPS is a moving average over recent frames.
type Clock interface {
	Delta() float64
	FPS() float64
}

// HAL is the only contact point between the game and the host platform.
type HAL interface {
	Logger() zerolog.Logger
	Display() Display
	Input() Input
	Clock() Clock
}
