package clock

import "time"

// Timer is a cancellable one-shot timer. It holds at most one pending
// callback; scheduling a new one cancels the previous callback first.
type Timer struct {
	clock    Clock
	deadline time.Time
	fn       func()
	pending  bool
}

// NewTimer creates an idle timer reading time from c.
func NewTimer(c Clock) *Timer {
	return &Timer{clock: c}
}

// Schedule arms the timer to run fn once d has elapsed from now.
func (t *Timer) Schedule(d time.Duration, fn func()) {
	t.Cancel()
	t.deadline = t.clock.Now().Add(d)
	t.fn = fn
	t.pending = true
}

// Cancel drops the pending callback. Safe to call when nothing is pending.
func (t *Timer) Cancel() {
	t.pending = false
	t.fn = nil
}

// Pending reports whether a callback is waiting to fire.
func (t *Timer) Pending() bool {
	return t.pending
}

// Remaining returns the time left until the pending callback fires, or zero.
func (t *Timer) Remaining() time.Duration {
	if !t.pending {
		return 0
	}
	left := t.deadline.Sub(t.clock.Now())
	if left < 0 {
		return 0
	}
	return left
}

// Poll runs the pending callback if its deadline has been reached and reports
// whether it fired. The timer is disarmed before the callback runs, so the
// callback may reschedule it.
func (t *Timer) Poll() bool {
	if !t.pending || t.clock.Now().Before(t.deadline) {
		return false
	}
	fn := t.fn
	t.Cancel()
	if fn != nil {
		fn()
	}
	return true
}
