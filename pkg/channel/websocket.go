package channel

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vnykmshr/framesink/pkg/common/errors"
)

// WSChannel sends drained bytes over a websocket connection.
//
// Each Write becomes one binary message, so chunk boundaries chosen by the
// drain loop are visible on the wire; pair with a codec whose frames are
// self-delimiting when the peer reassembles them. Close performs the
// websocket close handshake before closing the underlying connection.
type WSChannel struct {
	conn   *websocket.Conn
	closed bool
}

// NewWS wraps an established websocket connection as a Channel.
func NewWS(conn *websocket.Conn) *WSChannel {
	return &WSChannel{conn: conn}
}

// Write implements Channel. A context deadline is applied as the
// connection's write deadline for this message.
func (c *WSChannel) Write(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if c.closed {
		return 0, errors.ErrClosed
	}
	if err := c.setDeadline(ctx); err != nil {
		return 0, err
	}
	if err := c.conn.WriteMessage(websocket.BinaryMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Flush implements Channel. WriteMessage hands complete messages to the
// transport, so there is nothing extra to push.
func (c *WSChannel) Flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.closed {
		return errors.ErrClosed
	}
	return nil
}

// Close implements Channel. Closing twice is not an error.
func (c *WSChannel) Close(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.closed {
		return nil
	}
	c.closed = true

	if err := c.setDeadline(ctx); err != nil {
		return err
	}
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	// Best effort; the peer may already be gone.
	_ = c.conn.WriteMessage(websocket.CloseMessage, msg)
	return c.conn.Close()
}

func (c *WSChannel) setDeadline(ctx context.Context) error {
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	return c.conn.SetWriteDeadline(deadline)
}
