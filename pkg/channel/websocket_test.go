package channel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vnykmshr/framesink/internal/testutil"
	"github.com/vnykmshr/framesink/pkg/common/errors"
)

// newWSPair starts a collecting websocket server and dials it, returning
// the client connection and the server's received binary messages.
func newWSPair(t *testing.T) (*websocket.Conn, <-chan []byte, <-chan error) {
	t.Helper()

	messages := make(chan []byte, 16)
	done := make(chan error, 1)
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			done <- err
			return
		}
		defer conn.Close()
		for {
			mt, data, err := conn.ReadMessage()
			if err != nil {
				done <- err
				return
			}
			if mt == websocket.BinaryMessage {
				messages <- data
			}
		}
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	testutil.AssertNoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })

	return conn, messages, done
}

func TestWSChannelWrite(t *testing.T) {
	conn, messages, _ := newWSPair(t)
	ch := NewWS(conn)

	n, err := ch.Write(context.Background(), []byte("frame-1"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, 7)
	testutil.AssertNoError(t, ch.Flush(context.Background()))

	select {
	case msg := <-messages:
		testutil.AssertEqual(t, string(msg), "frame-1")
	case <-time.After(testutil.TestTimeout):
		t.Fatal("timed out waiting for message")
	}
}

func TestWSChannelCloseHandshake(t *testing.T) {
	conn, _, done := newWSPair(t)
	ch := NewWS(conn)

	testutil.AssertNoError(t, ch.Close(context.Background()))

	select {
	case err := <-done:
		if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
			t.Fatalf("server saw %v, want normal closure", err)
		}
	case <-time.After(testutil.TestTimeout):
		t.Fatal("timed out waiting for close handshake")
	}
}

func TestWSChannelClosed(t *testing.T) {
	conn, _, _ := newWSPair(t)
	ch := NewWS(conn)

	testutil.AssertNoError(t, ch.Close(context.Background()))

	_, err := ch.Write(context.Background(), []byte("late"))
	testutil.AssertErrorIs(t, err, errors.ErrClosed)
	testutil.AssertErrorIs(t, ch.Flush(context.Background()), errors.ErrClosed)

	// Closing twice is not an error.
	testutil.AssertNoError(t, ch.Close(context.Background()))
}

func TestWSChannelContextCanceled(t *testing.T) {
	conn, _, _ := newWSPair(t)
	ch := NewWS(conn)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ch.Write(ctx, []byte("never"))
	testutil.AssertErrorIs(t, err, context.Canceled)
}
