/*
Package framesink provides a Go library for turning byte-oriented outputs
into message-oriented sinks with buffered, partial-write-tolerant draining.

Framing (pkg/sink):
  - sink: Framed writer with accept/encode/drain protocol
  - metrics-enabled sinks and cron-scheduled auto flushing

Codecs (pkg/codec):
  - lines: Newline-delimited text frames
  - bytes: Raw byte passthrough
  - lengthprefix: 4-byte big-endian length-prefixed frames
  - json: One JSON document per line

Destinations (pkg/channel):
  - iochan: Any io.Writer (files, sockets, bufio)
  - fixed: Fixed-capacity in-memory destination
  - redis: Append to a Redis key
  - websocket: Binary websocket messages
  - s3: Single-object S3 upload on close

Example usage:

	import (
		"github.com/vnykmshr/framesink/pkg/channel"
		"github.com/vnykmshr/framesink/pkg/codec"
		"github.com/vnykmshr/framesink/pkg/sink"
	)

	ch := channel.NewIO(conn)
	w := sink.New[string](ch, codec.LineCodec{})
	defer w.Close(ctx)

	w.Submit("hello\n")
	w.Flush(ctx) // drain to the connection
*/
package framesink
