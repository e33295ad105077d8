package statsd

import (
	"io"
	"net"
	"time"

	"github.com/One-com/gone/log"
)

// Option is a function configuring a Client.
type Option func(*Client) error

// defaultDialTimeout applies to the dialing transports unless the Timeout
// option is given.
const defaultDialTimeout = time.Second

// UDP makes the client send each payload as one datagram to a statsd UDP
// server. The address is resolved and dialed once, up front.
func UDP(addr string) Option {
	return func(c *Client) error {
		conn, err := net.DialTimeout("udp", addr, c.timeout())
		if err != nil {
			return err
		}
		c.transport = writerTransport{w: conn}
		c.cfg.streaming = false
		return nil
	}
}

// TCP makes the client send newline-terminated payloads over a TCP
// connection. The connection is dialed lazily on the first send and
// redialed after a write failure; the failed payload is dropped.
func TCP(addr string) Option {
	return func(c *Client) error {
		c.transport = &streamTransport{network: "tcp", addr: addr, timeout: c.timeout()}
		c.cfg.streaming = true
		return nil
	}
}

// Unix is like TCP but over a UNIX domain stream socket at path.
func Unix(path string) Option {
	return func(c *Client) error {
		c.transport = &streamTransport{network: "unix", addr: path, timeout: c.timeout()}
		c.cfg.streaming = true
		return nil
	}
}

// Output sets a general io.Writer as datagram-style output instead of a
// UDP connection. Each payload is one Write.
func Output(w io.Writer) Option {
	return func(c *Client) error {
		c.transport = writerTransport{w: w}
		c.cfg.streaming = false
		return nil
	}
}

// StreamOutput sets a general io.Writer as stream-style output: payloads
// are newline-terminated and the packet size limit does not apply.
func StreamOutput(w io.Writer) Option {
	return func(c *Client) error {
		c.transport = writerTransport{w: w}
		c.cfg.streaming = true
		return nil
	}
}

// Timeout sets the dial timeout used by the UDP, TCP and Unix transports.
// Give it before the transport option it should apply to.
func Timeout(d time.Duration) Option {
	return func(c *Client) error {
		c.dialTimeout = d
		return nil
	}
}

// Prefix is prepended with "prefix." to all metric names.
func Prefix(pfx string) Option {
	return func(c *Client) error {
		c.cfg.prefix = pfx + "."
		return nil
	}
}

// MaxPacketSize bounds the payload size of batched datagram sends.
// Stream transports ignore it. Default is DefaultMaxPacketSize.
func MaxPacketSize(n int) Option {
	return func(c *Client) error {
		c.cfg.maxPacket = n
		return nil
	}
}

// DefaultTags attaches tags to every metric the client emits. Call-site
// tags win over a default with the same name; defaults only fill gaps.
func DefaultTags(tags ...Tag) Option {
	return func(c *Client) error {
		c.cfg.tags = tags
		return nil
	}
}

// Random replaces the uniform [0,1) random source the sampler draws from.
// The default is the math/rand global source. The source must be safe for
// concurrent use if the client is.
func Random(f func() float64) Option {
	return func(c *Client) error {
		c.cfg.random = f
		return nil
	}
}

// Logger sets a logger for events the client otherwise swallows, like
// dropped payloads after a transport failure. They log at DEBUG level.
func Logger(l *log.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}
