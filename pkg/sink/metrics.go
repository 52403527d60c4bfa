package sink

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/vnykmshr/framesink/pkg/channel"
	"github.com/vnykmshr/framesink/pkg/codec"
	"github.com/vnykmshr/framesink/pkg/metrics"
)

// MetricsSink wraps a FramedWriter with Prometheus metrics collection.
type MetricsSink[T any] struct {
	writer   *FramedWriter[T]
	name     string
	registry *metrics.Registry
	enabled  bool

	mu   sync.Mutex
	last Stats
}

// NewWithMetrics creates a framed writer with metrics enabled. The sink
// name becomes the sink_name label on every metric.
func NewWithMetrics[T any](ch channel.Channel, enc codec.Encoder[T], name string, config metrics.Config) *MetricsSink[T] {
	ms := &MetricsSink[T]{
		writer:  New(ch, enc),
		name:    name,
		enabled: config.Enabled,
	}
	if !config.Enabled {
		return ms
	}

	if config.Registry != nil {
		ms.registry = metrics.NewRegistry(config.Registry)
	} else {
		ms.registry = metrics.DefaultRegistry
	}
	return ms
}

// Ready implements Sink.
func (ms *MetricsSink[T]) Ready(ctx context.Context) error {
	return ms.writer.Ready(ctx)
}

// Submit implements Sink.
func (ms *MetricsSink[T]) Submit(item T) error {
	err := ms.writer.Submit(item)
	if ms.enabled {
		if err != nil {
			ms.registry.EncodeErrors.WithLabelValues(ms.name).Inc()
		} else {
			ms.registry.FramesSubmitted.WithLabelValues(ms.name).Inc()
		}
		ms.registry.BufferedBytes.WithLabelValues(ms.name).Set(float64(ms.writer.Buffered()))
	}
	return err
}

// Flush implements Sink.
func (ms *MetricsSink[T]) Flush(ctx context.Context) error {
	err := ms.writer.Flush(ctx)
	ms.observeDrain(err)
	return err
}

// Close implements Sink.
func (ms *MetricsSink[T]) Close(ctx context.Context) error {
	err := ms.writer.Close(ctx)
	ms.observeDrain(err)
	return err
}

// Release hands back the destination and encoder. See FramedWriter.Release.
func (ms *MetricsSink[T]) Release() (channel.Channel, codec.Encoder[T]) {
	return ms.writer.Release()
}

// Buffered returns the number of encoded bytes awaiting drain.
func (ms *MetricsSink[T]) Buffered() int {
	return ms.writer.Buffered()
}

// Stats returns a snapshot of the underlying writer's counters.
func (ms *MetricsSink[T]) Stats() Stats {
	return ms.writer.Stats()
}

// observeDrain records the counter deltas a drain produced.
func (ms *MetricsSink[T]) observeDrain(err error) {
	if !ms.enabled {
		return
	}

	ms.mu.Lock()
	stats := ms.writer.Stats()
	drained := stats.BytesDrained - ms.last.BytesDrained
	completed := stats.DrainCount - ms.last.DrainCount
	stalls := stats.Stalls - ms.last.Stalls
	ms.last = stats
	ms.mu.Unlock()

	labels := ms.registry
	labels.BytesDrained.WithLabelValues(ms.name).Add(float64(drained))
	labels.DrainsCompleted.WithLabelValues(ms.name).Add(float64(completed))
	labels.DrainStalls.WithLabelValues(ms.name).Add(float64(stalls))
	if err != nil && !stderrors.Is(err, ErrNoProgress) {
		labels.ChannelErrors.WithLabelValues(ms.name).Inc()
	}
	labels.BufferedBytes.WithLabelValues(ms.name).Set(float64(ms.writer.Buffered()))
}
