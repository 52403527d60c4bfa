package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for framesink components.
type Registry struct {
	FramesSubmitted *prometheus.CounterVec
	EncodeErrors    *prometheus.CounterVec
	BytesDrained    *prometheus.CounterVec
	DrainsCompleted *prometheus.CounterVec
	DrainStalls     *prometheus.CounterVec
	ChannelErrors   *prometheus.CounterVec
	BufferedBytes   *prometheus.GaugeVec
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		FramesSubmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "framesink",
				Subsystem: "sink",
				Name:      "frames_submitted_total",
				Help:      "Total number of frames accepted into the accumulation buffer",
			},
			[]string{"sink_name"},
		),

		EncodeErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "framesink",
				Subsystem: "sink",
				Name:      "encode_errors_total",
				Help:      "Total number of submissions the encoder rejected",
			},
			[]string{"sink_name"},
		),

		BytesDrained: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "framesink",
				Subsystem: "sink",
				Name:      "bytes_drained_total",
				Help:      "Total bytes the destination consumed",
			},
			[]string{"sink_name"},
		),

		DrainsCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "framesink",
				Subsystem: "sink",
				Name:      "drains_completed_total",
				Help:      "Total number of flushes that drained the buffer to empty",
			},
			[]string{"sink_name"},
		),

		DrainStalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "framesink",
				Subsystem: "sink",
				Name:      "drain_stalls_total",
				Help:      "Total number of zero-progress writes observed",
			},
			[]string{"sink_name"},
		),

		ChannelErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "framesink",
				Subsystem: "sink",
				Name:      "channel_errors_total",
				Help:      "Total number of destination write, flush and close failures",
			},
			[]string{"sink_name"},
		),

		BufferedBytes: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "framesink",
				Subsystem: "sink",
				Name:      "buffered_bytes",
				Help:      "Encoded bytes currently awaiting drain",
			},
			[]string{"sink_name"},
		),
	}
}

// DefaultRegistry is the default metrics registry used by framesink components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}
