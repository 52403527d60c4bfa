package sink

import (
	"context"
	"sync"

	"github.com/vnykmshr/framesink/pkg/channel"
	"github.com/vnykmshr/framesink/pkg/codec"
	"github.com/vnykmshr/framesink/pkg/common/errors"
)

// FramedWriter is a Sink over a destination channel and an encoder.
//
// Operations delegate directly to the drain engine; the writer adds no
// buffering of its own. A mutex serializes operations so at most one
// write attempt is outstanding at any time, which also makes the writer
// safe to share with an AutoFlusher.
type FramedWriter[T any] struct {
	mu  sync.Mutex
	eng *engine[T]
}

// New creates a FramedWriter draining encoded items to ch.
func New[T any](ch channel.Channel, enc codec.Encoder[T]) *FramedWriter[T] {
	return &FramedWriter[T]{eng: newEngine(ch, enc)}
}

// Ready implements Sink. The writer accepts submissions unconditionally;
// bounding memory is the caller's job, by flushing periodically.
func (w *FramedWriter[T]) Ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.eng == nil {
		return errors.ErrReleased
	}
	return nil
}

// Submit implements Sink.
func (w *FramedWriter[T]) Submit(item T) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.eng == nil {
		return errors.ErrReleased
	}
	return w.eng.submit(item)
}

// Flush implements Sink.
func (w *FramedWriter[T]) Flush(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.eng == nil {
		return errors.ErrReleased
	}
	return w.eng.flush(ctx)
}

// Close implements Sink.
func (w *FramedWriter[T]) Close(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.eng == nil {
		return errors.ErrReleased
	}
	return w.eng.close(ctx)
}

// Release hands back the destination and encoder and retires the writer;
// subsequent operations return ErrReleased. Buffered bytes that were never
// drained are discarded, so callers should Flush or Close first. Must not
// be called while an operation is in flight.
func (w *FramedWriter[T]) Release() (channel.Channel, codec.Encoder[T]) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.eng == nil {
		return nil, nil
	}
	ch, enc := w.eng.release()
	w.eng = nil
	return ch, enc
}

// Read forwards to the destination's read side when it has one, so a
// writer over a bidirectional stream can still be read from. Returns
// ErrNotReadable otherwise.
func (w *FramedWriter[T]) Read(p []byte) (int, error) {
	w.mu.Lock()
	eng := w.eng
	w.mu.Unlock()
	if eng == nil {
		return 0, errors.ErrReleased
	}
	return eng.fuse.read(p)
}

// Buffered returns the number of encoded bytes awaiting drain.
func (w *FramedWriter[T]) Buffered() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.eng == nil {
		return 0
	}
	return w.eng.buf.Len()
}

// BufferCapacity returns the accumulation buffer's current capacity.
func (w *FramedWriter[T]) BufferCapacity() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.eng == nil {
		return 0
	}
	return w.eng.buf.Cap()
}

// Stats returns a snapshot of the writer's counters.
func (w *FramedWriter[T]) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.eng == nil {
		return Stats{}
	}
	return w.eng.stats
}
