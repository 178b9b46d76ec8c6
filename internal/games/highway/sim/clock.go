package sim

import "time"

// Clock derives per-frame deltas in seconds from a monotonic time source.
// The first call to Delta returns 0.
type Clock struct {
	now     func() time.Time
	last    time.Time
	started bool
}

// NewClock creates a clock backed by time.Now.
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource creates a clock reading from now. Tests pass a fake.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Delta returns the seconds since the previous call. Backward jumps of the
// source yield 0.
func (c *Clock) Delta() float64 {
	t := c.now()
	if !c.started {
		c.last = t
		c.started = true
		return 0
	}
	d := t.Sub(c.last).Seconds()
	c.last = t
	if d < 0 {
		return 0
	}
	return d
}

// Reset forgets the previous reading so the next Delta returns 0.
func (c *Clock) Reset() {
	c.started = false
}
