/*
Package channel abstracts byte destinations that accept partial writes.

A Channel is the output side of a framed writer: it accepts as many bytes
as it can per write, pushes internal buffering out on Flush, and releases
resources on Close. All operations take a context for cancellation; a
canceled write leaves the caller free to retry with the same bytes.

# Provided Destinations

	channel.NewIO(w)                   // any io.Writer (files, sockets, bufio)
	channel.NewFixedBuffer(16)         // fixed-capacity in-memory destination
	channel.NewRedis(cfg)              // append to a Redis key
	channel.NewWS(conn)                // binary websocket messages
	channel.NewS3(client, bucket, key) // one S3 object, uploaded on Close

# Partial Progress

Write returns the number of bytes actually accepted, which may be less
than len(p). Returning 0 with a nil error means the destination can make
no further progress at all; the framed writer treats that as a dead
destination. Destinations that always accept everything (Redis, S3,
websocket) simply report full progress.

# Quick Start

	f, _ := os.Create("frames.log")
	ch := channel.NewIO(f)

	n, _ := ch.Write(ctx, []byte("hello\n"))
	ch.Flush(ctx)
	ch.Close(ctx)
*/
package channel
