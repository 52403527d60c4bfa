package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// ErrFrameTooLarge is returned when an item exceeds the codec's maximum frame size.
var ErrFrameTooLarge = errors.New("frame exceeds maximum size")

// DefaultMaxFrameSize is the frame size limit used when none is configured.
const DefaultMaxFrameSize = 16 * 1024 * 1024

// LengthPrefixCodec frames byte slices with a 4-byte big-endian length prefix.
type LengthPrefixCodec struct {
	maxFrame int
}

// NewLengthPrefix creates a LengthPrefixCodec with the given maximum frame
// size. A maxFrame of 0 uses DefaultMaxFrameSize.
func NewLengthPrefix(maxFrame int) *LengthPrefixCodec {
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrameSize
	}
	return &LengthPrefixCodec{maxFrame: maxFrame}
}

// Encode implements Encoder. Oversized items are rejected before any
// bytes are written.
func (c *LengthPrefixCodec) Encode(item []byte, buf *bytes.Buffer) error {
	if len(item) > c.maxFrame {
		return ErrFrameTooLarge
	}

	var header [4]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(item)))
	buf.Write(header[:])
	buf.Write(item)
	return nil
}
