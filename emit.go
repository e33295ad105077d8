package statsd

import (
	"strconv"
	"time"
)

// emitter is the shared emit surface of Client and Pipeline. It encodes each
// operation into a wire line and hands it to its owner, which either sends
// it right away (Client) or buffers it for a batched flush (Pipeline).
type emitter struct {
	cfg   *config
	owner statSink
}

// Incr increments a counter by count.
func (e *emitter) Incr(stat string, count int64, rate float64, tags ...Tag) {
	e.sendStat(stat, strconv.FormatInt(count, 10)+"|c", rate, tags)
}

// Decr decrements a counter by count.
func (e *emitter) Decr(stat string, count int64, rate float64, tags ...Tag) {
	e.Incr(stat, -count, rate, tags...)
}

// Gauge sets a gauge to an absolute value.
//
// The wire protocol has no token for setting an absolute negative value, so
// a negative value is emitted as an atomic two-line sequence in one batching
// scope: first "0|g" to reset the gauge, then the negative target. Sampling
// is decided once for the whole sequence; a rejected call emits neither line.
func (e *emitter) Gauge(stat string, value int64, rate float64, tags ...Tag) {
	if value < 0 {
		if rate < 1 && !e.cfg.sample(rate) {
			return
		}
		p := e.owner.Pipeline()
		p.sendStat(stat, "0|g", 1, tags)
		p.sendStat(stat, strconv.FormatInt(value, 10)+"|g", 1, tags)
		p.Flush()
		return
	}
	e.sendStat(stat, strconv.FormatInt(value, 10)+"|g", rate, tags)
}

// GaugeDelta adjusts a gauge by a signed delta, rendered "+n|g" or "-n|g".
func (e *emitter) GaugeDelta(stat string, delta int64, rate float64, tags ...Tag) {
	v := strconv.FormatInt(delta, 10)
	if delta >= 0 {
		v = "+" + v
	}
	e.sendStat(stat, v+"|g", rate, tags)
}

// Timing sends a duration as a timing metric in milliseconds.
func (e *emitter) Timing(stat string, d time.Duration, rate float64, tags ...Tag) {
	e.TimingMs(stat, float64(d)/float64(time.Millisecond), rate, tags...)
}

// TimingMs sends a timing metric of ms milliseconds. The value passes
// through as computed, no precision truncation is forced.
func (e *emitter) TimingMs(stat string, ms float64, rate float64, tags ...Tag) {
	e.sendStat(stat, strconv.FormatFloat(ms, 'f', -1, 64)+"|ms", rate, tags)
}

// Set sends a set-membership event. The server maintains the set and
// reports its cardinality.
func (e *emitter) Set(stat string, value int64, rate float64, tags ...Tag) {
	e.sendStat(stat, strconv.FormatInt(value, 10)+"|s", rate, tags)
}

// Timer returns a Timer emitting its timing metric through this client or
// pipeline.
func (e *emitter) Timer(stat string, rate float64, tags ...Tag) *Timer {
	return &Timer{e: e, stat: stat, rate: rate, tags: tags}
}

// Pipelined runs f with a new batching scope over this client or pipeline.
// The scope is flushed on every exit path, also when f returns an error,
// and f's error is returned unchanged.
func (e *emitter) Pipelined(f func(*Pipeline) error) error {
	p := e.owner.Pipeline()
	defer p.Flush()
	return f(p)
}

func (e *emitter) sendStat(stat, value string, rate float64, tags []Tag) {
	line, ok := e.cfg.encode(stat, value, rate, tags)
	if !ok {
		return
	}
	e.owner.EmitLine(line)
}
