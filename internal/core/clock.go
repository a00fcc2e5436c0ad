package core

import "time"

// FrameClock measures the time between successive frames so continuous
// input can be scaled independently of the frame rate.
type FrameClock struct {
	now      func() time.Time
	last     time.Time
	fallback float64
	max      float64
}

// NewFrameClock constructs a FrameClock for a loop targeting tps ticks per
// second. The first tick and any tick reporting a non-positive delta return
// the nominal 1/tps step.
func NewFrameClock(tps int) *FrameClock {
	if tps <= 0 {
		tps = 60
	}
	return &FrameClock{
		now:      time.Now,
		fallback: 1 / float64(tps),
		max:      0.25,
	}
}

// Tick returns the seconds elapsed since the previous Tick, capped so a
// stalled frame cannot teleport the camera.
func (c *FrameClock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return c.fallback
	}
	delta := now.Sub(c.last).Seconds()
	c.last = now
	if delta <= 0 {
		return c.fallback
	}
	if delta > c.max {
		return c.max
	}
	return delta
}
