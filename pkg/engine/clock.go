// pkg/engine/clock.go
package engine

import "time"

// FrameClock measures the elapsed time between host frames
type FrameClock struct {
	maxFrameTime float64
	lastUpdate   time.Time
	now          func() time.Time
}

// NewFrameClock creates a clock whose deltas never exceed maxFrameTime
// seconds. A non-positive maxFrameTime disables the cap.
func NewFrameClock(maxFrameTime float64) *FrameClock {
	return &FrameClock{
		maxFrameTime: maxFrameTime,
		now:          time.Now,
	}
}

// Tick returns the seconds elapsed since the previous tick. The first tick
// returns 0. Long stalls (window drags, debugger pauses) are capped so the
// simulation does not jump.
func (c *FrameClock) Tick() float64 {
	now := c.now()
	if c.lastUpdate.IsZero() {
		c.lastUpdate = now
		return 0
	}

	deltaTime := now.Sub(c.lastUpdate).Seconds()
	c.lastUpdate = now

	if deltaTime < 0 {
		return 0
	}
	if c.maxFrameTime > 0 && deltaTime > c.maxFrameTime {
		deltaTime = c.maxFrameTime
	}
	return deltaTime
}
