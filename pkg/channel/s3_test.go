package channel

import (
	"context"
	stderrors "errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vnykmshr/framesink/internal/testutil"
	"github.com/vnykmshr/framesink/pkg/common/errors"
)

type fakePutter struct {
	puts   int
	bucket string
	key    string
	body   []byte
	err    error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.puts++
	f.bucket = *params.Bucket
	f.key = *params.Key
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

func TestNewS3Validation(t *testing.T) {
	_, err := NewS3(nil, "bucket", "key")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfiguration)

	_, err = NewS3(&fakePutter{}, "  ", "key")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfiguration)

	_, err = NewS3(&fakePutter{}, "bucket", "")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfiguration)
}

func TestS3ChannelUploadsOnClose(t *testing.T) {
	client := &fakePutter{}
	ch, err := NewS3(client, "archive", "frames/2026-08-31.log")
	testutil.AssertNoError(t, err)

	n, err := ch.Write(context.Background(), []byte("part one;"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, 9)
	_, err = ch.Write(context.Background(), []byte("part two"))
	testutil.AssertNoError(t, err)

	// Nothing uploads until Close.
	testutil.AssertEqual(t, client.puts, 0)
	testutil.AssertEqual(t, ch.Len(), 17)

	testutil.AssertNoError(t, ch.Close(context.Background()))
	testutil.AssertEqual(t, client.puts, 1)
	testutil.AssertEqual(t, client.bucket, "archive")
	testutil.AssertEqual(t, client.key, "frames/2026-08-31.log")
	testutil.AssertEqual(t, string(client.body), "part one;part two")
}

func TestS3ChannelUploadError(t *testing.T) {
	errAccess := stderrors.New("access denied")
	ch, err := NewS3(&fakePutter{err: errAccess}, "archive", "key")
	testutil.AssertNoError(t, err)

	_, err = ch.Write(context.Background(), []byte("data"))
	testutil.AssertNoError(t, err)
	testutil.AssertErrorIs(t, ch.Close(context.Background()), errAccess)
}

func TestS3ChannelClosed(t *testing.T) {
	client := &fakePutter{}
	ch, err := NewS3(client, "archive", "key")
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, ch.Close(context.Background()))

	_, err = ch.Write(context.Background(), []byte("late"))
	testutil.AssertErrorIs(t, err, errors.ErrClosed)
	testutil.AssertErrorIs(t, ch.Flush(context.Background()), errors.ErrClosed)

	// Closing twice uploads only once.
	testutil.AssertNoError(t, ch.Close(context.Background()))
	testutil.AssertEqual(t, client.puts, 1)
}
