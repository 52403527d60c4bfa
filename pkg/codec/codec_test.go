package codec

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/vnykmshr/framesink/internal/testutil"
)

func TestLineCodec(t *testing.T) {
	tests := []struct {
		name string
		item string
		want string
	}{
		{"appends newline", "hello", "hello\n"},
		{"keeps existing newline", "hello\n", "hello\n"},
		{"empty item", "", "\n"},
		{"embedded newline", "a\nb", "a\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			testutil.AssertNoError(t, LineCodec{}.Encode(tt.item, &buf))
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

func TestLineCodecAccumulates(t *testing.T) {
	var buf bytes.Buffer
	c := LineCodec{}
	testutil.AssertNoError(t, c.Encode("one", &buf))
	testutil.AssertNoError(t, c.Encode("two", &buf))
	testutil.AssertEqual(t, buf.String(), "one\ntwo\n")
}

func TestBytesCodec(t *testing.T) {
	var buf bytes.Buffer
	c := BytesCodec{}
	testutil.AssertNoError(t, c.Encode([]byte{0x01, 0x02}, &buf))
	testutil.AssertNoError(t, c.Encode([]byte{0x03}, &buf))
	testutil.AssertEqual(t, buf.String(), "\x01\x02\x03")
}

func TestLengthPrefixCodec(t *testing.T) {
	var buf bytes.Buffer
	c := NewLengthPrefix(0)

	testutil.AssertNoError(t, c.Encode([]byte("payload"), &buf))

	out := buf.Bytes()
	testutil.AssertEqual(t, len(out), 4+7)
	testutil.AssertEqual(t, binary.BigEndian.Uint32(out[:4]), uint32(7))
	testutil.AssertEqual(t, string(out[4:]), "payload")
}

func TestLengthPrefixCodecEmptyFrame(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, NewLengthPrefix(0).Encode(nil, &buf))
	testutil.AssertEqual(t, buf.Len(), 4)
	testutil.AssertEqual(t, binary.BigEndian.Uint32(buf.Bytes()), uint32(0))
}

func TestLengthPrefixCodecTooLarge(t *testing.T) {
	var buf bytes.Buffer
	c := NewLengthPrefix(4)

	err := c.Encode([]byte("too big"), &buf)
	testutil.AssertErrorIs(t, err, ErrFrameTooLarge)
	// Rejected before anything was written.
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestJSONCodec(t *testing.T) {
	type event struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	var buf bytes.Buffer
	c := JSONCodec[event]{}
	testutil.AssertNoError(t, c.Encode(event{Name: "a", Count: 1}, &buf))
	testutil.AssertNoError(t, c.Encode(event{Name: "b", Count: 2}, &buf))

	want := `{"name":"a","count":1}` + "\n" + `{"name":"b","count":2}` + "\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestJSONCodecMarshalErrorWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	c := JSONCodec[chan int]{}

	testutil.AssertError(t, c.Encode(make(chan int), &buf))
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestEncoderFunc(t *testing.T) {
	var buf bytes.Buffer
	enc := EncoderFunc[int](func(item int, buf *bytes.Buffer) error {
		buf.WriteByte(byte(item))
		return nil
	})

	testutil.AssertNoError(t, enc.Encode(0x41, &buf))
	testutil.AssertEqual(t, buf.String(), "A")
}
