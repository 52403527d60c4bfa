package sink

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/vnykmshr/framesink/pkg/channel"
	"github.com/vnykmshr/framesink/pkg/codec"
	"github.com/vnykmshr/framesink/pkg/common/errors"
)

// initialBufferSize pre-grows the accumulation buffer. It is a hint, not
// a bound; the buffer grows with whatever the encoder appends.
const initialBufferSize = 8 * 1024

// fuse pairs the destination with the encoder so the engine owns a single
// value and can hand both back on release.
type fuse[T any] struct {
	ch  channel.Channel
	enc codec.Encoder[T]
}

func (f fuse[T]) encode(item T, buf *bytes.Buffer) error {
	return f.enc.Encode(item, buf)
}

func (f fuse[T]) write(ctx context.Context, p []byte) (int, error) {
	return f.ch.Write(ctx, p)
}

func (f fuse[T]) flush(ctx context.Context) error {
	return f.ch.Flush(ctx)
}

func (f fuse[T]) close(ctx context.Context) error {
	return f.ch.Close(ctx)
}

// read forwards to the destination's read side when it has one.
func (f fuse[T]) read(p []byte) (int, error) {
	if r, ok := f.ch.(io.Reader); ok {
		return r.Read(p)
	}
	return 0, errors.ErrNotReadable
}

// engine owns the accumulation buffer and runs the drain loop. It is the
// only code that mutates the buffer or touches the destination.
type engine[T any] struct {
	fuse  fuse[T]
	buf   bytes.Buffer
	stats Stats
}

func newEngine[T any](ch channel.Channel, enc codec.Encoder[T]) *engine[T] {
	e := &engine[T]{fuse: fuse[T]{ch: ch, enc: enc}}
	e.buf.Grow(initialBufferSize)
	return e
}

// submit encodes one item onto the end of the buffer. Encoder failures
// propagate verbatim; bytes a failing encoder already appended stay put.
func (e *engine[T]) submit(item T) error {
	if err := e.fuse.encode(item, &e.buf); err != nil {
		e.stats.EncodeErrors++
		return err
	}
	e.stats.FramesSubmitted++
	e.stats.LastSubmitTime = time.Now()
	return nil
}

// flush drains the buffer front-first until empty.
//
// Each iteration writes the current buffer contents, consumes exactly the
// count the destination reports (even when the write also errored, so
// accepted bytes are never re-sent), then flushes the destination so
// partially written frames leave any channel-internal buffering promptly.
// A zero-byte write with data remaining fails with ErrNoProgress and the
// remainder stays buffered.
func (e *engine[T]) flush(ctx context.Context) error {
	for e.buf.Len() > 0 {
		n, err := e.fuse.write(ctx, e.buf.Bytes())
		if n > 0 {
			e.buf.Next(n)
			e.stats.BytesDrained += int64(n)
		}
		if err != nil {
			return err
		}
		if n == 0 {
			e.stats.Stalls++
			return ErrNoProgress
		}
		if err := e.fuse.flush(ctx); err != nil {
			return err
		}
	}
	e.stats.DrainCount++
	return nil
}

// close drains to completion and then closes the destination. Buffered
// bytes are never discarded: a failed drain aborts the close and leaves
// them in place.
func (e *engine[T]) close(ctx context.Context) error {
	if err := e.flush(ctx); err != nil {
		return err
	}
	return e.fuse.close(ctx)
}

// release tears the fuse apart, handing the destination and encoder back.
func (e *engine[T]) release() (channel.Channel, codec.Encoder[T]) {
	return e.fuse.ch, e.fuse.enc
}
