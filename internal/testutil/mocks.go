package testutil

import (
	"bytes"
	"context"
	"sync"
)

// MockChannel is a test destination that can simulate partial writes,
// zero-progress stalls, and injected errors.
type MockChannel struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	chunkLimit int
	stallAfter int // total bytes accepted before stalling; -1 = never
	errOnNth   int // write number that fails; 0 = never
	writeErr   error
	flushErr   error
	closeErr   error
	writes     int
	flushes    int
	closed     bool
	ops        []string
}

// NewMockChannel creates a MockChannel that accepts everything.
func NewMockChannel() *MockChannel {
	return &MockChannel{stallAfter: -1}
}

// SetChunkLimit caps the bytes accepted per Write call.
func (m *MockChannel) SetChunkLimit(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chunkLimit = n
}

// SetStallAfter makes Write report zero progress once n total bytes have
// been accepted.
func (m *MockChannel) SetStallAfter(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stallAfter = n
}

// SetErrorOnNthWrite makes the nth Write call return err with no progress.
func (m *MockChannel) SetErrorOnNthWrite(n int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errOnNth = n
	m.writeErr = err
}

// SetFlushError makes Flush return err.
func (m *MockChannel) SetFlushError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushErr = err
}

// SetCloseError makes Close return err.
func (m *MockChannel) SetCloseError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeErr = err
}

// Write implements channel.Channel with configurable behavior.
func (m *MockChannel) Write(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.writes++
	if m.errOnNth > 0 && m.writes == m.errOnNth {
		m.ops = append(m.ops, "write-error")
		return 0, m.writeErr
	}

	n := len(p)
	if m.stallAfter >= 0 {
		if room := m.stallAfter - m.buf.Len(); n > room {
			n = room
		}
	}
	if m.chunkLimit > 0 && n > m.chunkLimit {
		n = m.chunkLimit
	}
	if n < 0 {
		n = 0
	}
	m.buf.Write(p[:n])
	m.ops = append(m.ops, "write")
	return n, nil
}

// Flush implements channel.Channel.
func (m *MockChannel) Flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushes++
	m.ops = append(m.ops, "flush")
	return m.flushErr
}

// Close implements channel.Channel.
func (m *MockChannel) Close(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.ops = append(m.ops, "close")
	return m.closeErr
}

// String returns the bytes accepted so far.
func (m *MockChannel) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf.String()
}

// Len returns the number of bytes accepted so far.
func (m *MockChannel) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf.Len()
}

// WriteCount returns the number of Write calls.
func (m *MockChannel) WriteCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// FlushCount returns the number of Flush calls.
func (m *MockChannel) FlushCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushes
}

// Closed returns true once Close has been called.
func (m *MockChannel) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Ops returns the sequence of operations observed.
func (m *MockChannel) Ops() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.ops...)
}
