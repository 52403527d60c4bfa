package codec

import "bytes"

// BytesCodec passes byte slices through without any framing.
// Frame boundaries are not recoverable from the output; use
// LengthPrefixCodec when the reader needs them back.
type BytesCodec struct{}

// Encode implements Encoder.
func (BytesCodec) Encode(item []byte, buf *bytes.Buffer) error {
	buf.Write(item)
	return nil
}
