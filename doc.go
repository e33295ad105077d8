/*
Package statsd is a client for the plaintext, line-oriented statsd metrics protocol.

It encodes counter/gauge/timing/set operations into canonical wire lines, applies
optional sampling rates and tags, and delivers the lines to a statsd server over
UDP, TCP or a UNIX domain socket. Delivery is best effort: a metrics pipeline must
never crash the instrumented application, so transport errors are swallowed
(optionally logged) and never surface at the emitting call site.

The API consists of 3 main types of objects:

   * Client   - encodes and sends each operation immediately (one UDP datagram per metric).
   * Pipeline - an ordered per-scope buffer; on Flush the buffered lines are greedily
     packed into newline-joined payloads no larger than the configured packet size.
   * Timer    - measures wall-clock elapsed time and emits exactly one timing metric
     per start/stop cycle.

Create a Client with functional options:

   c, err := statsd.New(
           statsd.UDP("statsd.example.com:8125"),
           statsd.Prefix("myapp"),
           statsd.DefaultTags(statsd.StringTag("dc", "ams")))
   if err != nil {
           log.Fatal(err)
   }

   c.Incr("requests", 1, 1)
   c.Gauge("queue.depth", 17, 1)

Batched sends go through a Pipeline, either explicitly or scoped with a guaranteed
flush on every exit path:

   c.Pipelined(func(p *statsd.Pipeline) error {
           p.Incr("jobs.done", 1, 1)
           p.Timing("jobs.duration", elapsed, 1)
           return nil
   })

A Pipeline is itself a valid target for another Pipeline, so nested scopes compose:
a nested flush forwards its packed payloads into the parent buffer.

Stream transports (TCP, UNIX socket) have no datagram size ceiling, so a Pipeline
flush over a stream sends the whole batch as one newline-joined blob and the packet
size limit is ignored.
*/
package statsd
