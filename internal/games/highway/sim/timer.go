package sim

// Timer is a countdown clamped at zero.
type Timer struct {
	Remaining float64
	Duration  float64
}

// NewTimer creates an expired timer with the given full duration.
func NewTimer(duration float64) Timer {
	return Timer{Duration: duration}
}

// Start restarts the timer at its full duration.
func (t *Timer) Start() {
	t.Remaining = t.Duration
}

// Clear expires the timer immediately.
func (t *Timer) Clear() {
	t.Remaining = 0
}

// Decay subtracts dt seconds.
func (t *Timer) Decay(dt float64) {
	if dt <= 0 {
		return
	}
	t.Remaining -= dt
	if t.Remaining < 0 {
		t.Remaining = 0
	}
}

// Active reports whether time is left.
func (t Timer) Active() bool {
	return t.Remaining > 0
}

// Fraction returns Remaining/Duration in [0, 1].
func (t Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 0
	}
	f := t.Remaining / t.Duration
	if f > 1 {
		return 1
	}
	return f
}
