package engine

import "time"

// DefaultMaxFrameDelta caps a single frame's delta after stalls (debugger, suspend)
const DefaultMaxFrameDelta = 100 * time.Millisecond

// FrameClock measures elapsed time between frames for per-frame updates
// Paused frames report zero delta and pause time is never replayed on resume
type FrameClock struct {
	now      func() time.Time
	last     time.Time
	started  bool
	paused   bool
	maxDelta time.Duration
}

// NewFrameClock creates a clock on the wall clock
func NewFrameClock(maxDelta time.Duration) *FrameClock {
	return NewFrameClockWithTime(maxDelta, time.Now)
}

// NewFrameClockWithTime creates a clock with an injected time source
// Non-positive maxDelta falls back to DefaultMaxFrameDelta
func NewFrameClockWithTime(maxDelta time.Duration, now func() time.Time) *FrameClock {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxFrameDelta
	}
	return &FrameClock{now: now, maxDelta: maxDelta}
}

// Tick returns the delta since the previous Tick, clamped to maxDelta
// First tick returns zero
func (c *FrameClock) Tick() time.Duration {
	now := c.now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last)
	c.last = now

	if c.paused || dt < 0 {
		return 0
	}
	if dt > c.maxDelta {
		dt = c.maxDelta
	}
	return dt
}

// Pause freezes game time
func (c *FrameClock) Pause() {
	c.paused = true
}

// Resume continues game time from now
func (c *FrameClock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.last = c.now()
}

// Toggle flips pause state and returns the new state
func (c *FrameClock) Toggle() bool {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
	return c.paused
}

func (c *FrameClock) Paused() bool {
	return c.paused
}
