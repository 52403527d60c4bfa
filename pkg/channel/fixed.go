package channel

import (
	"context"

	"github.com/vnykmshr/framesink/pkg/common/errors"
)

// FixedBuffer is an in-memory destination with a hard capacity.
//
// Writes accept bytes up to the remaining capacity; once full, Write
// reports zero progress, which a framed writer surfaces as ErrNoProgress.
// An optional chunk limit caps how many bytes a single Write accepts,
// which is useful for exercising partial-write handling.
type FixedBuffer struct {
	buf        []byte
	chunkLimit int
	closed     bool
	writes     int
	flushes    int
}

// NewFixedBuffer creates a FixedBuffer that accepts at most capacity bytes.
func NewFixedBuffer(capacity int) *FixedBuffer {
	return &FixedBuffer{buf: make([]byte, 0, capacity)}
}

// SetChunkLimit caps the number of bytes accepted per Write call.
// A limit of 0 removes the cap.
func (b *FixedBuffer) SetChunkLimit(n int) {
	b.chunkLimit = n
}

// Write implements Channel.
func (b *FixedBuffer) Write(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if b.closed {
		return 0, errors.ErrClosed
	}
	b.writes++

	n := len(p)
	if room := cap(b.buf) - len(b.buf); n > room {
		n = room
	}
	if b.chunkLimit > 0 && n > b.chunkLimit {
		n = b.chunkLimit
	}
	b.buf = append(b.buf, p[:n]...)
	return n, nil
}

// Flush implements Channel.
func (b *FixedBuffer) Flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.closed {
		return errors.ErrClosed
	}
	b.flushes++
	return nil
}

// Close implements Channel. Closing twice is not an error.
func (b *FixedBuffer) Close(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.closed = true
	return nil
}

// Bytes returns the bytes written so far.
func (b *FixedBuffer) Bytes() []byte {
	return b.buf
}

// Len returns the number of bytes written so far.
func (b *FixedBuffer) Len() int {
	return len(b.buf)
}

// Cap returns the buffer capacity.
func (b *FixedBuffer) Cap() int {
	return cap(b.buf)
}

// Unused returns the remaining capacity.
func (b *FixedBuffer) Unused() int {
	return cap(b.buf) - len(b.buf)
}

// WriteCount returns the number of Write calls observed.
func (b *FixedBuffer) WriteCount() int {
	return b.writes
}

// FlushCount returns the number of Flush calls observed.
func (b *FixedBuffer) FlushCount() int {
	return b.flushes
}

// Closed returns true once Close has been called.
func (b *FixedBuffer) Closed() bool {
	return b.closed
}
