package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"github.com/hupe1980/unisplit/internal/resource"
	"github.com/hupe1980/unisplit/source"
)

// ObjectGetter fetches object bodies.
type ObjectGetter interface {
	GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}

type clientGetter struct {
	client *minio.Client
}

func (g clientGetter) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	return g.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
}

// Source implements source.Source for MinIO.
type Source struct {
	getter ObjectGetter
	rc     *resource.Controller
}

// Option configures a Source.
type Option func(*Source)

// WithController rate-limits object reads with rc.
func WithController(rc *resource.Controller) Option {
	return func(s *Source) {
		s.rc = rc
	}
}

// New creates a MinIO source backed by client.
func New(client *minio.Client, optFns ...Option) *Source {
	return NewWithGetter(clientGetter{client: client}, optFns...)
}

// NewWithGetter creates a MinIO source backed by an arbitrary getter.
func NewWithGetter(getter ObjectGetter, optFns ...Option) *Source {
	s := &Source{getter: getter}
	for _, fn := range optFns {
		fn(s)
	}
	return s
}

// Open reads the object named "bucket/key" into memory.
func (s *Source) Open(ctx context.Context, name string) (source.Document, error) {
	bucket, key, err := source.SplitBucketKey(name)
	if err != nil {
		return nil, err
	}

	obj, err := s.getter.GetObject(ctx, bucket, key)
	if err != nil {
		return nil, translate(name, err)
	}
	defer obj.Close()

	// minio objects fetch lazily; a missing key surfaces on the first read.
	data, err := io.ReadAll(resource.NewRateLimitedReader(ctx, obj, s.rc))
	if err != nil {
		return nil, translate(name, err)
	}
	return source.NewDocument(data), nil
}

func translate(name string, err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NotFound", "NoSuchBucket":
		return fmt.Errorf("minio: %s: %w", name, source.ErrNotFound)
	}
	return fmt.Errorf("minio: %s: %w", name, err)
}
