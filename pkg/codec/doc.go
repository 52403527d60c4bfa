/*
Package codec defines how application items are serialized into frames.

An Encoder turns one item into bytes appended to an accumulation buffer.
Encoders are used by the framed writer in pkg/sink, which owns the buffer
and drains it to a destination.

# Quick Start

	var buf bytes.Buffer
	c := codec.LineCodec{}
	c.Encode("hello", &buf) // buf now holds "hello\n"

# Provided Codecs

	codec.LineCodec{}            // newline-delimited text
	codec.BytesCodec{}           // raw byte passthrough
	codec.NewLengthPrefix(0)     // 4-byte big-endian length prefix
	codec.JSONCodec[Event]{}     // one JSON document per line

# Writing Your Own

Implement Encoder for your item type, or wrap a function:

	enc := codec.EncoderFunc[Point](func(p Point, buf *bytes.Buffer) error {
		_, err := fmt.Fprintf(buf, "%d,%d\n", p.X, p.Y)
		return err
	})

# Partial Output on Failure

An Encoder that fails after writing some bytes leaves those bytes in the
buffer; the framed writer does not roll them back. Encoders should validate
the item before writing, so a failed Encode writes nothing. All provided
codecs behave this way.
*/
package codec
