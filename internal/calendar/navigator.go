package calendar

import "time"

// DefaultCooldown is the minimum spacing between throttled view transitions.
const DefaultCooldown = 400 * time.Millisecond

// Cooldown admits at most one event per interval. It is a timestamp check,
// not a timer: nothing runs in the background.
type Cooldown struct {
	interval time.Duration
	last     time.Time
	fired    bool
}

// NewCooldown creates a Cooldown. A non-positive interval uses DefaultCooldown.
func NewCooldown(interval time.Duration) *Cooldown {
	if interval <= 0 {
		interval = DefaultCooldown
	}
	return &Cooldown{interval: interval}
}

// Allow reports whether an event at now may pass, and records it if so.
func (c *Cooldown) Allow(now time.Time) bool {
	if c.fired && now.Sub(c.last) < c.interval {
		return false
	}
	c.last = now
	c.fired = true
	return true
}

// Navigator tracks the month shown by a calendar view.
type Navigator struct {
	year     int
	month    time.Month
	cooldown *Cooldown
}

// NewNavigator starts on the month containing start.
func NewNavigator(start time.Time, cooldown *Cooldown) *Navigator {
	if cooldown == nil {
		cooldown = NewCooldown(DefaultCooldown)
	}
	return &Navigator{year: start.Year(), month: start.Month(), cooldown: cooldown}
}

// Current returns the displayed year and month.
func (n *Navigator) Current() (int, time.Month) { return n.year, n.month }

// Jump moves by delta months unconditionally. Used for discrete key presses.
func (n *Navigator) Jump(delta int) {
	t := time.Date(n.year, n.month, 1, 0, 0, 0, 0, time.Local).AddDate(0, delta, 0)
	n.year, n.month = t.Year(), t.Month()
}

// Advance moves by delta months unless a transition happened within the
// cooldown window. Used for continuous sources such as wheel scrolling.
func (n *Navigator) Advance(delta int, now time.Time) bool {
	if delta == 0 || !n.cooldown.Allow(now) {
		return false
	}
	n.Jump(delta)
	return true
}

// Reset shows the month containing t.
func (n *Navigator) Reset(t time.Time) {
	n.year, n.month = t.Year(), t.Month()
}
