package codec

import "bytes"

// Encoder serializes one item into the accumulation buffer.
type Encoder[T any] interface {
	// Encode appends the encoded form of item to buf.
	// When Encode returns an error, bytes it wrote before failing remain
	// in buf. Encoders should validate before writing so a failed Encode
	// appends nothing.
	Encode(item T, buf *bytes.Buffer) error
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc[T any] func(item T, buf *bytes.Buffer) error

// Encode implements Encoder.
func (f EncoderFunc[T]) Encode(item T, buf *bytes.Buffer) error {
	return f(item, buf)
}
