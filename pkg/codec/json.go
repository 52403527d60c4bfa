package codec

import (
	"bytes"
	"encoding/json"
)

// JSONCodec frames items as one JSON document per line.
// Marshaling happens before anything is appended, so a failed Encode
// leaves the buffer untouched.
type JSONCodec[T any] struct{}

// Encode implements Encoder.
func (JSONCodec[T]) Encode(item T, buf *bytes.Buffer) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	buf.Write(data)
	buf.WriteByte('\n')
	return nil
}
