package statsd

import (
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/One-com/gone/log"
)

// DefaultMaxPacketSize is the datagram payload ceiling used when the
// MaxPacketSize option is not given. 512 bytes is safe for about any net.
const DefaultMaxPacketSize = 512

// Client encodes metric operations and sends each resulting wire line to
// its transport immediately. Use a Pipeline for batched sends.
//
// A Client is safe for concurrent use as long as its random source is
// (the default one is).
type Client struct {
	emitter
	cfg         config
	transport   Transport
	log         *log.Logger
	dialTimeout time.Duration
}

func (c *Client) timeout() time.Duration {
	if c.dialTimeout != 0 {
		return c.dialTimeout
	}
	return defaultDialTimeout
}

// New creates a Client. Without options it writes wire lines to stdout
// with the default packet size and no prefix or tags.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		cfg: config{
			maxPacket: DefaultMaxPacketSize,
			random:    rand.Float64,
		},
		transport: writerTransport{w: os.Stdout},
	}
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}
	c.emitter = emitter{cfg: &c.cfg, owner: c}
	return c, nil
}

// EmitLine implements LineSink by sending one finished payload to the
// transport. Stream transports get a trailing newline so the server can
// frame lines. A transport error is logged and the payload dropped;
// metrics delivery is best effort and never fails the caller.
func (c *Client) EmitLine(line string) {
	payload := make([]byte, 0, len(line)+1)
	payload = append(payload, line...)
	if c.cfg.streaming {
		payload = append(payload, '\n')
	}
	if err := c.transport.Send(payload); err != nil {
		if c.log != nil {
			c.log.DEBUG("statsd: dropping payload", "error", err)
		}
	}
}

// Pipeline opens a new batching scope over the client. The returned
// Pipeline owns a private buffer and must be confined to one scope;
// concurrent scopes each need their own Pipeline.
func (c *Client) Pipeline() *Pipeline {
	return newPipeline(&c.cfg, c)
}

// Close closes the underlying transport if it can be closed.
func (c *Client) Close() error {
	if cl, ok := c.transport.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}
