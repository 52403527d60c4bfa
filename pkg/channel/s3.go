package channel

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vnykmshr/framesink/pkg/common/errors"
)

// ObjectPutter is the subset of the S3 API S3Channel uses.
// *s3.Client satisfies it.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Channel accumulates drained bytes and uploads them as one S3 object
// when closed.
//
// S3 objects are immutable, so nothing reaches the bucket until Close;
// Flush is a no-op. Writes always report full progress because the staging
// buffer grows as needed.
type S3Channel struct {
	client ObjectPutter
	bucket string
	key    string

	body   bytes.Buffer
	closed bool
}

// NewS3 creates an S3Channel uploading to s3://bucket/key.
func NewS3(client ObjectPutter, bucket, key string) (*S3Channel, error) {
	if client == nil {
		return nil, errors.NewValidationError("channel", "client", nil, "s3 client is required")
	}
	if strings.TrimSpace(bucket) == "" {
		return nil, errors.NewValidationError("channel", "bucket", bucket, "cannot be empty")
	}
	if strings.TrimSpace(key) == "" {
		return nil, errors.NewValidationError("channel", "key", key, "cannot be empty")
	}
	return &S3Channel{client: client, bucket: bucket, key: key}, nil
}

// Write implements Channel.
func (c *S3Channel) Write(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if c.closed {
		return 0, errors.ErrClosed
	}
	c.body.Write(p)
	return len(p), nil
}

// Flush implements Channel. The object only exists once Close uploads it.
func (c *S3Channel) Flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.closed {
		return errors.ErrClosed
	}
	return nil
}

// Close implements Channel, uploading the accumulated object.
// Closing twice is not an error; only the first Close uploads.
func (c *S3Channel) Close(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.closed {
		return nil
	}
	c.closed = true

	contentLength := int64(c.body.Len())
	input := s3.PutObjectInput{
		Bucket:        &c.bucket,
		Key:           &c.key,
		Body:          bytes.NewReader(c.body.Bytes()),
		ContentLength: &contentLength,
	}
	if _, err := c.client.PutObject(ctx, &input); err != nil {
		return fmt.Errorf("put s3 object key=%q: %w", c.key, err)
	}
	return nil
}

// Len returns the number of bytes staged for upload.
func (c *S3Channel) Len() int {
	return c.body.Len()
}
