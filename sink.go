package statsd

// LineSink is anything which accepts finished statsd wire payloads.
// A Client is a LineSink sending each payload to its transport. A Pipeline
// is a LineSink appending each payload to its buffer. Pipeline nesting works
// by a nested Pipeline flushing its packed payloads into the parent LineSink.
type LineSink interface {
	EmitLine(line string)
}

// statSink is the capability the shared emitter needs from its owner:
// somewhere to put finished lines, and the ability to open a batching
// scope over it (used by the negative gauge two-line sequence).
type statSink interface {
	LineSink
	Pipeline() *Pipeline
}
