package engine

import "time"

// Clock measures a session from its first keystroke to completion.
//
// Every Start mints a new timer ID. A periodic tick carries the ID it was
// scheduled with and is honored only while the clock is running with that
// same ID, so at most one tick chain is live per clock.
type Clock struct {
	id        int
	running   bool
	startedAt time.Time
	stoppedAt time.Time
}

// Start begins timing at now. Starting a running clock is a no-op.
func (c *Clock) Start(now time.Time) int {
	if c.running {
		return c.id
	}
	c.id++
	c.running = true
	c.startedAt = now
	c.stoppedAt = time.Time{}
	return c.id
}

// Stop freezes the clock at now. Stopping a stopped clock is a no-op.
func (c *Clock) Stop(now time.Time) {
	if !c.running {
		return
	}
	c.running = false
	c.stoppedAt = now
}

// Reset clears the timestamps. The ID sequence keeps counting so ticks from
// before the reset stay stale.
func (c *Clock) Reset() {
	c.running = false
	c.startedAt = time.Time{}
	c.stoppedAt = time.Time{}
}

// ID returns the current timer ID.
func (c Clock) ID() int {
	return c.id
}

// Accept reports whether a tick scheduled with id belongs to the live timer.
func (c Clock) Accept(id int) bool {
	return c.running && id == c.id
}

// StartedAt returns the start timestamp, or the zero time before Start.
func (c Clock) StartedAt() time.Time {
	return c.startedAt
}

// StoppedAt returns the stop timestamp, or the zero time while running.
func (c Clock) StoppedAt() time.Time {
	return c.stoppedAt
}

// Elapsed returns the elapsed time. A running clock measures up to now; a
// stopped clock returns the frozen value.
func (c Clock) Elapsed(now time.Time) time.Duration {
	if c.startedAt.IsZero() {
		return 0
	}
	end := now
	if !c.running {
		end = c.stoppedAt
	}
	if end.Before(c.startedAt) {
		return 0
	}
	return end.Sub(c.startedAt)
}

// ElapsedSeconds returns Elapsed rounded down to whole seconds.
func (c Clock) ElapsedSeconds(now time.Time) int {
	return int(c.Elapsed(now) / time.Second)
}
