package hal

import "time"

// fpsWindow is the number of frames averaged for FPS.
const fpsWindow = 200

// frameClock measures the wall time between successive frames.
type frameClock struct {
	now func() time.Time

	last time.Time
	dt   time.Duration

	samples [fpsWindow]time.Duration
	n       int
	next    int
	sum     time.Duration
}

func newFrameClock(now func() time.Time) *frameClock {
	return &frameClock{now: now}
}

func (c *frameClock) Delta() float64 { return c.dt.Seconds() }

func (c *frameClock) FPS() float64 {
	if c.n == 0 || c.sum <= 0 {
		return 0
	}
	return float64(c.n) / c.sum.Seconds()
}

// step starts a new frame. The first frame has a zero delta, and a clock
// that runs backwards yields zero rather than a negative delta.
func (c *frameClock) step() {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		c.dt = 0
		return
	}

	c.dt = now.Sub(c.last)
	if c.dt < 0 {
		c.dt = 0
	}
	c.last = now

	c.sum -= c.samples[c.next]
	c.samples[c.next] = c.dt
	c.sum += c.dt
	c.next = (c.next + 1) % fpsWindow
	if c.n < fpsWindow {
		c.n++
	}
}
