package snake

import "time"

// TickScheduler admits at most one movement step per frame, one per elapsed
// period of wall time. Time beyond a whole period carries over so ticks do
// not drift, but a slow frame spanning several periods still admits only a
// single step.
type TickScheduler struct {
	period  time.Duration
	elapsed time.Duration
	last    time.Time
}

// NewTickScheduler creates a scheduler anchored at start.
func NewTickScheduler(period time.Duration, start time.Time) *TickScheduler {
	if period <= 0 {
		period = DefaultTickPeriod
	}
	return &TickScheduler{period: period, last: start}
}

// Period returns the tick period.
func (t *TickScheduler) Period() time.Duration {
	return t.period
}

// Admit accumulates the time since the previous frame and reports whether
// a movement step is due.
func (t *TickScheduler) Admit(now time.Time) bool {
	delta := now.Sub(t.last)
	if delta < 0 {
		delta = 0
	}
	t.last = now

	t.elapsed += delta
	if t.elapsed < t.period {
		return false
	}
	t.elapsed %= t.period
	return true
}

// Resume re-anchors the scheduler at now without counting the time since
// the previous frame. Used after a pause.
func (t *TickScheduler) Resume(now time.Time) {
	t.last = now
}

// Reset drops any accumulated time and re-anchors at now.
func (t *TickScheduler) Reset(now time.Time) {
	t.elapsed = 0
	t.last = now
}
