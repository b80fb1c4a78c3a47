package hal

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the host HAL.
type Options struct {
	Width  int
	Height int
	// Hz is the frame rate of the window or headless ticker.
	Hz int
	// LogOutput defaults to a console writer on stdout.
	LogOutput io.Writer
	LogLevel  zerolog.Level
}

type hostHAL struct {
	log   zerolog.Logger
	fb    *hostFramebuffer
	kbd   *keyState
	clock *frameClock
}

// New returns a host HAL implementation.
func New(opts Options) HAL {
	return newHost(opts)
}

func newHost(opts Options) *hostHAL {
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 600
	}
	out := opts.LogOutput
	if out == nil {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly}
	}
	log := zerolog.New(out).Level(opts.LogLevel).With().Timestamp().Logger()

	return &hostHAL{
		log:   log,
		fb:    newHostFramebuffer(opts.Width, opts.Height),
		kbd:   &keyState{},
		clock: newFrameClock(time.Now),
	}
}

func (h *hostHAL) Logger() zerolog.Logger { return h.log }
func (h *hostHAL) Display() Display       { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input           { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Clock() Clock           { return h.clock }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *keyState
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

// keyState is the held-key snapshot for the current frame.
type keyState struct {
	held [keyCount]bool
}

func (k *keyState) Held(key Key) bool {
	if key >= keyCount {
		return false
	}
	return k.held[key]
}

func (k *keyState) set(key Key, down bool) {
	if key >= keyCount {
		return
	}
	k.held[key] = down
}
