/*
Package sink provides a framed writer: a message-oriented sink over a
byte-oriented destination that tolerates partial writes.

Items are encoded into a single accumulation buffer and drained front-first
to the destination. No byte is ever written twice and no byte is dropped:
the buffer only shrinks by exactly the count the destination reports as
consumed, and a canceled or failed drain leaves the remainder in place for
a later Flush or Close to resume.

# Quick Start

	f, _ := os.Create("frames.log")
	w := sink.New[string](channel.NewIO(f), codec.LineCodec{})

	w.Submit("hello")
	w.Submit("world")
	w.Close(context.Background()) // drains, then closes the file

# The Sink Protocol

Four operations, in the order a caller uses them:

	Ready(ctx)   // always immediately ready
	Submit(item) // encode into the buffer; no I/O
	Flush(ctx)   // drain the buffer to the destination
	Close(ctx)   // Flush, then close the destination

Submit never touches the destination; memory grows until the caller
flushes. Callers should flush periodically (or use an AutoFlusher) to
bound memory: Ready never refuses a submission.

# Partial Writes and Stalls

The drain loop writes the buffer front, consumes exactly the reported
count, flushes the destination so small frames leave promptly, and loops
until empty. A destination that consumes zero bytes while data remains is
considered dead and Flush fails with ErrNoProgress; the unwritten
remainder stays buffered and can be inspected or released.

# Errors

Encoder errors and destination errors propagate verbatim; nothing is
retried internally. A failed Submit leaves earlier frames intact and
drainable. A failed Encode may leave that item's partial bytes in the
buffer (see pkg/codec); all provided codecs validate before writing.

# Release

Release hands back the destination and encoder when the writer is no
longer needed:

	ch, enc := w.Release()

Calling Release with an operation in flight is a programming error; the
caller is responsible for quiescence.

# Observability

NewWithMetrics wraps a writer with Prometheus instrumentation, and
AutoFlusher drains on a cron schedule:

	w := sink.NewWithMetrics[string](ch, codec.LineCodec{}, "audit", metrics.DefaultConfig())
	af, _ := sink.NewAutoFlusher[string](w, sink.AutoFlushConfig{Schedule: "@every 1s"})
	af.Start()
	defer af.Stop()
*/
package sink
