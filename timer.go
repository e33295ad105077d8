package statsd

import (
	"errors"
	"time"
)

// Timer usage errors. These indicate a logic bug at the call site, not a
// transient condition, so unlike transport failures they are surfaced.
var (
	// ErrNotStarted is returned by Stop when Start was never called.
	ErrNotStarted = errors.New("statsd: timer not started")
	// ErrNoData is returned by Send when no elapsed time has been recorded.
	ErrNoData = errors.New("statsd: no timing recorded")
	// ErrAlreadySent is returned by Send when the recorded timing has
	// already been sent once.
	ErrAlreadySent = errors.New("statsd: timing already sent")
)

// Timer measures wall-clock elapsed time and emits exactly one timing metric
// per start/stop cycle. A Timer is confined to one in-flight measurement;
// it has no internal locking and must not be shared between goroutines.
type Timer struct {
	e    *emitter
	stat string
	rate float64
	tags []Tag

	start    time.Time
	started  bool
	ms       float64
	recorded bool
	sent     bool
}

// Start arms the timer, discarding any previously recorded or sent
// measurement, and records a monotonic start instant. Calling Start again
// re-arms the timer for a fresh measurement.
func (t *Timer) Start() *Timer {
	t.ms = 0
	t.recorded = false
	t.sent = false
	t.start = time.Now()
	t.started = true
	return t
}

// Stop records the elapsed time in milliseconds since Start. With send set
// the timing metric is emitted immediately; extra tags are merged with the
// tags given at construction. Stop before Start returns ErrNotStarted.
func (t *Timer) Stop(send bool, tags ...Tag) error {
	if !t.started {
		return ErrNotStarted
	}
	t.ms = float64(time.Since(t.start)) / float64(time.Millisecond)
	t.recorded = true
	if send {
		return t.Send(tags...)
	}
	return nil
}

// Send emits the timing metric recorded by Stop, at most once per
// measurement cycle. It returns ErrNoData before any Stop, and
// ErrAlreadySent on a second Send for the same cycle.
func (t *Timer) Send(tags ...Tag) error {
	if !t.recorded {
		return ErrNoData
	}
	if t.sent {
		return ErrAlreadySent
	}
	t.sent = true
	t.e.TimingMs(t.stat, t.ms, t.rate, append(t.tags[:len(t.tags):len(t.tags)], tags...)...)
	return nil
}

// Ms returns the elapsed milliseconds recorded by the last Stop, or 0 when
// nothing has been recorded yet.
func (t *Timer) Ms() float64 {
	return t.ms
}

// Time runs f and emits one timing metric for the invocation, also when f
// returns an error or panics. f's error (or panic) propagates unchanged.
// Each invocation is an independent measurement; the Start/Stop/Send state
// of the Timer is not touched.
func (t *Timer) Time(f func() error) error {
	start := time.Now()
	defer func() {
		ms := float64(time.Since(start)) / float64(time.Millisecond)
		t.e.TimingMs(t.stat, ms, t.rate, t.tags...)
	}()
	return f()
}
