// Package metrics provides Prometheus instrumentation for framesink components.
//
// # Overview
//
// The metrics package instruments framed writers with counters for frames
// submitted, encode failures, bytes drained, drain completions, stalls and
// destination errors, plus a gauge for the bytes currently buffered.
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructor:
//
//	w := sink.NewWithMetrics[string](ch, codec.LineCodec{}, "audit_log", metrics.DefaultConfig())
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//
// All metrics carry a sink_name label so multiple writers can share a
// registry. Pass a custom prometheus Registerer through Config.Registry to
// isolate registration, which tests typically want.
package metrics
