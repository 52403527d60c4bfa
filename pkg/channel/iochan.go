package channel

import (
	"context"
	"io"

	"github.com/vnykmshr/framesink/pkg/common/errors"
)

// IOChannel adapts an io.Writer to the Channel interface.
//
// Flush forwards to the writer's own Flush or Sync method when one exists
// (bufio.Writer, os.File) and is a no-op otherwise. Close forwards to
// io.Closer when implemented. When the wrapped value is also an io.Reader,
// IOChannel exposes the read side so a framed writer over a bidirectional
// stream can still be read from.
type IOChannel struct {
	w      io.Writer
	closed bool
}

// NewIO wraps w as a Channel.
func NewIO(w io.Writer) *IOChannel {
	return &IOChannel{w: w}
}

// Write implements Channel.
func (c *IOChannel) Write(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if c.closed {
		return 0, errors.ErrClosed
	}
	return c.w.Write(p)
}

// Flush implements Channel.
func (c *IOChannel) Flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.closed {
		return errors.ErrClosed
	}
	switch w := c.w.(type) {
	case interface{ Flush() error }:
		return w.Flush()
	case interface{ Sync() error }:
		return w.Sync()
	}
	return nil
}

// Close implements Channel. Closing twice is not an error.
func (c *IOChannel) Close(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.closed {
		return nil
	}
	c.closed = true
	if closer, ok := c.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Read forwards to the wrapped writer's read side.
// Returns ErrNotReadable when the wrapped value is not an io.Reader.
func (c *IOChannel) Read(p []byte) (int, error) {
	if r, ok := c.w.(io.Reader); ok {
		return r.Read(p)
	}
	return 0, errors.ErrNotReadable
}

// Writer returns the wrapped io.Writer.
func (c *IOChannel) Writer() io.Writer {
	return c.w
}
