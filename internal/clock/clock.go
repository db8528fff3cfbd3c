// Package clock provides the frame-driven game clock and wall time sources.
//
// Game time only advances when the simulation steps it, so pausing the
// session freezes every deadline derived from it.
package clock

import "time"

// GameClock tracks elapsed game time in fixed frame increments.
// It is owned by the simulation goroutine and is not safe for concurrent use.
type GameClock struct {
	now    time.Duration
	frame  time.Duration
	paused bool
}

// New creates a clock advancing 1/tickRate seconds per Step.
func New(tickRate int) *GameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameClock{frame: time.Second / time.Duration(tickRate)}
}

// Now returns the elapsed game time.
func (c *GameClock) Now() time.Duration {
	return c.now
}

// Frame returns the duration of a single step.
func (c *GameClock) Frame() time.Duration {
	return c.frame
}

// Step advances the clock by one frame. No-op while paused.
func (c *GameClock) Step() {
	c.Advance(c.frame)
}

// Advance moves game time forward by d. No-op while paused or for d <= 0.
func (c *GameClock) Advance(d time.Duration) {
	if c.paused || d <= 0 {
		return
	}
	c.now += d
}

// Pause stops game time advancement.
func (c *GameClock) Pause() {
	c.paused = true
}

// Resume continues game time advancement.
func (c *GameClock) Resume() {
	c.paused = false
}

// Paused reports whether the clock is frozen.
func (c *GameClock) Paused() bool {
	return c.paused
}

// Reset rewinds the clock to zero and unpauses it.
func (c *GameClock) Reset() {
	c.now = 0
	c.paused = false
}
