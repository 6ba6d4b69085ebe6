package s3

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/hupe1980/unisplit/internal/resource"
	"github.com/hupe1980/unisplit/source"
)

// Client is the subset of the S3 API used by Source.
type Client interface {
	manager.DownloadAPIClient
}

// Source implements source.Source for S3.
type Source struct {
	client      Client
	rc          *resource.Controller
	partSize    int64
	concurrency int
}

// Option configures a Source.
type Option func(*Source)

// WithController charges downloaded bytes against the IO limit of rc as each
// part is written, so the limit throttles the transfer itself.
func WithController(rc *resource.Controller) Option {
	return func(s *Source) {
		s.rc = rc
	}
}

// WithPartSize sets the size of ranged GET requests.
func WithPartSize(n int64) Option {
	return func(s *Source) {
		s.partSize = n
	}
}

// WithConcurrency sets the number of parts fetched in parallel per object.
func WithConcurrency(n int) Option {
	return func(s *Source) {
		s.concurrency = n
	}
}

// New creates an S3 source.
func New(client Client, optFns ...Option) *Source {
	s := &Source{client: client}
	for _, fn := range optFns {
		fn(s)
	}
	return s
}

// Open downloads the object named "bucket/key".
func (s *Source) Open(ctx context.Context, name string) (source.Document, error) {
	bucket, key, err := source.SplitBucketKey(name)
	if err != nil {
		return nil, err
	}

	downloader := manager.NewDownloader(s.client, func(d *manager.Downloader) {
		if s.partSize > 0 {
			d.PartSize = s.partSize
		}
		if s.concurrency > 0 {
			d.Concurrency = s.concurrency
		}
	})

	buf := manager.NewWriteAtBuffer(nil)
	n, err := downloader.Download(ctx, &rateLimitedWriterAt{ctx: ctx, w: buf, rc: s.rc}, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("s3: %s: %w", name, source.ErrNotFound)
		}
		return nil, fmt.Errorf("s3: %s: %w", name, err)
	}

	return source.NewDocument(buf.Bytes()[:n]), nil
}

// rateLimitedWriterAt waits for IO budget before every write. The downloader
// copies each part through WriteAt in small blocks.
type rateLimitedWriterAt struct {
	ctx context.Context
	w   io.WriterAt
	rc  *resource.Controller
}

func (w *rateLimitedWriterAt) WriteAt(p []byte, off int64) (int, error) {
	if err := w.rc.AcquireIO(w.ctx, len(p)); err != nil {
		return 0, err
	}
	return w.w.WriteAt(p, off)
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return true
		}
	}
	return false
}
