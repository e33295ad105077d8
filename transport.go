package statsd

import (
	"io"
	"net"
	"sync"
	"time"
)

// Transport delivers one finished payload to the metrics backend. The
// client treats every Send as fire-and-forget: a returned error is logged
// (when a logger is configured) and the payload is dropped.
type Transport interface {
	Send(p []byte) error
}

// writerTransport adapts an io.Writer. One Send is one Write, which for a
// net.Conn over UDP means one datagram per payload.
type writerTransport struct {
	w io.Writer
}

func (t writerTransport) Send(p []byte) error {
	_, err := t.w.Write(p)
	return err
}

func (t writerTransport) Close() error {
	if c, ok := t.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// streamTransport writes payloads to a lazily dialed stream connection
// (TCP or UNIX domain socket). A failed write drops the connection so the
// next Send redials; there is no retry of the failed payload.
// The mutex makes the transport safe for a Client shared by goroutines.
type streamTransport struct {
	network string
	addr    string
	timeout time.Duration

	mu   sync.Mutex
	conn net.Conn
}

func (t *streamTransport) Send(p []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.conn == nil {
		conn, err := net.DialTimeout(t.network, t.addr, t.timeout)
		if err != nil {
			return err
		}
		t.conn = conn
	}
	if _, err := t.conn.Write(p); err != nil {
		t.conn.Close()
		t.conn = nil
		return err
	}
	return nil
}

func (t *streamTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	return err
}
