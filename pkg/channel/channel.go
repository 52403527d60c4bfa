package channel

import "context"

// Channel is a byte destination that may make partial progress per write.
type Channel interface {
	// Write writes as much of p as the destination currently accepts and
	// returns the number of bytes consumed. n < len(p) is not an error.
	// n == 0 with a nil error means the destination cannot make progress.
	Write(ctx context.Context, p []byte) (int, error)

	// Flush pushes any destination-internal buffering toward the final
	// destination.
	Flush(ctx context.Context) error

	// Close flushes destination-internal state and releases resources.
	// Close does not drain framesink's own accumulation buffer; the
	// framed writer drains before it calls Close.
	Close(ctx context.Context) error
}
