package codec

import (
	"bytes"
	"strings"
)

// LineCodec frames string items as newline-delimited lines.
// Items that already end in '\n' are written verbatim; a trailing
// newline is appended otherwise.
type LineCodec struct{}

// Encode implements Encoder.
func (LineCodec) Encode(item string, buf *bytes.Buffer) error {
	buf.WriteString(item)
	if !strings.HasSuffix(item, "\n") {
		buf.WriteByte('\n')
	}
	return nil
}
