package statsd

import "strings"

// Pipeline is an ordered holding buffer for encoded wire lines. All emit
// operations of a Client are available on a Pipeline, but append to the
// buffer instead of sending. Flush drains the buffer towards the parent:
// packed into size-bounded payloads over a datagram transport, joined into
// one blob over a stream transport.
//
// A Pipeline owns its buffer exclusively and is not safe for concurrent
// use; open one Pipeline per concurrent scope.
type Pipeline struct {
	emitter
	parent LineSink
	lines  []string
}

func newPipeline(cfg *config, parent LineSink) *Pipeline {
	p := &Pipeline{parent: parent}
	p.emitter = emitter{cfg: cfg, owner: p}
	return p
}

// EmitLine implements LineSink by buffering the line until Flush.
func (p *Pipeline) EmitLine(line string) {
	p.lines = append(p.lines, line)
}

// Pipeline opens a nested batching scope. The nested scope gets its own
// buffer and on Flush forwards its packed payloads as lines into this one.
func (p *Pipeline) Pipeline() *Pipeline {
	return newPipeline(p.cfg, p)
}

// Flush drains the buffered lines to the parent and empties the buffer.
// Over a datagram transport the lines are greedily packed into payloads no
// larger than the configured packet size, each handed over as soon as it is
// finished and never reordered. Over a stream transport the whole batch
// goes out as one newline-joined blob. An empty buffer flushes to nothing.
func (p *Pipeline) Flush() {
	if len(p.lines) == 0 {
		return
	}
	lines := p.lines
	p.lines = nil
	if p.cfg.streaming {
		p.parent.EmitLine(strings.Join(lines, "\n"))
		return
	}
	packLines(lines, p.cfg.maxPacket, p.parent.EmitLine)
}
