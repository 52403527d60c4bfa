package sink

import (
	"context"
	"errors"
	"time"
)

// ErrNoProgress is returned when the destination consumes zero bytes while
// data remains buffered. It signals a dead destination rather than a
// temporary condition; further use of the channel is not guaranteed to be
// well-defined.
var ErrNoProgress = errors.New("destination accepted no bytes with data still buffered")

// Sink accepts discrete items and delivers their encoded bytes to a
// destination.
type Sink[T any] interface {
	// Ready reports whether the sink can accept a submission.
	Ready(ctx context.Context) error

	// Submit encodes item into the accumulation buffer. No I/O happens.
	Submit(item T) error

	// Flush drains the accumulation buffer to the destination.
	Flush(ctx context.Context) error

	// Close drains the buffer, then closes the destination.
	Close(ctx context.Context) error
}

// Stats holds counters describing a framed writer's activity.
type Stats struct {
	// FramesSubmitted is the number of successful Submit calls.
	FramesSubmitted int64

	// EncodeErrors is the number of Submit calls the encoder rejected.
	EncodeErrors int64

	// BytesDrained is the total number of bytes the destination consumed.
	BytesDrained int64

	// DrainCount is the number of successful full drains.
	DrainCount int64

	// Stalls is the number of zero-progress writes observed.
	Stalls int64

	// LastSubmitTime is the timestamp of the last successful Submit.
	LastSubmitTime time.Time
}
