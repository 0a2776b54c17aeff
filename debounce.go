package vista

import "time"

// DefaultResizeQuiet is the quiet period a window must stay unresized before
// the viewport recomputes its geometry.
const DefaultResizeQuiet = 50 * time.Millisecond

// Debouncer coalesces bursts of signals. Each Signal pushes the deadline out
// by the quiet period; Poll reports true exactly once when the deadline has
// passed without another Signal.
//
// Debouncer is driven by the caller's clock and owns no goroutine or timer,
// so it fits a frame loop: call Signal from event handlers and Poll once per
// frame.
type Debouncer struct {
	quiet    time.Duration
	deadline time.Time
	pending  bool
}

// NewDebouncer creates a Debouncer with the given quiet period. A
// non-positive period makes every Poll after a Signal fire immediately.
func NewDebouncer(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet}
}

// Quiet returns the configured quiet period.
func (d *Debouncer) Quiet() time.Duration {
	return d.quiet
}

// Signal records a raw event at now and resets the deadline.
func (d *Debouncer) Signal(now time.Time) {
	d.deadline = now.Add(d.quiet)
	d.pending = true
}

// Pending reports whether a signal is waiting for its quiet period.
func (d *Debouncer) Pending() bool {
	return d.pending
}

// Poll reports whether the quiet period elapsed uninterrupted since the last
// Signal. It returns true at most once per burst.
func (d *Debouncer) Poll(now time.Time) bool {
	if !d.pending || now.Before(d.deadline) {
		return false
	}
	d.pending = false
	return true
}

// Cancel drops any pending signal.
func (d *Debouncer) Cancel() {
	d.pending = false
}
