package source

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/unisplit/internal/resource"
	"github.com/hupe1980/unisplit/vector"
)

// Loader opens documents concurrently.
type Loader struct {
	rc         *resource.Controller
	decompress bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithController bounds the loader by rc: one worker slot per open document
// and a memory reservation per resident document. A nil controller means no
// limits.
func WithController(rc *resource.Controller) LoaderOption {
	return func(l *Loader) {
		l.rc = rc
	}
}

// WithDecompression toggles decoding of ".zst" and ".lz4" documents.
// Enabled by default.
func WithDecompression(enabled bool) LoaderOption {
	return func(l *Loader) {
		l.decompress = enabled
	}
}

// NewLoader creates a Loader.
func NewLoader(optFns ...LoaderOption) *Loader {
	l := &Loader{decompress: true}
	for _, fn := range optFns {
		fn(l)
	}
	return l
}

// Load opens every name from src. On error all documents opened so far are
// closed and no batch is returned.
func (l *Loader) Load(ctx context.Context, src Source, names []string) (*Batch, error) {
	b := &Batch{
		rc:       l.rc,
		names:    names,
		docs:     make([]Document, len(names)),
		reserved: make([]int64, len(names)),
	}

	g, gctx := errgroup.WithContext(ctx)
	if l.rc != nil {
		g.SetLimit(l.rc.MaxWorkers())
	}

	for i, name := range names {
		g.Go(func() error {
			return l.load(gctx, src, b, i, name)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Join(err, b.Close())
	}
	return b, nil
}

func (l *Loader) load(ctx context.Context, src Source, b *Batch, i int, name string) error {
	if err := l.rc.AcquireWorker(ctx); err != nil {
		return err
	}
	defer l.rc.ReleaseWorker()

	doc, err := src.Open(ctx, name)
	if err != nil {
		return err
	}
	if l.decompress {
		if doc, err = decompressDocument(name, doc); err != nil {
			return err
		}
	}
	b.docs[i] = doc

	size := int64(len(doc.Bytes()))
	if err := l.rc.AcquireMemory(size); err != nil {
		return fmt.Errorf("source: %s: %w", name, err)
	}
	b.reserved[i] = size
	return nil
}

// Batch is a set of loaded documents in load order.
type Batch struct {
	rc       *resource.Controller
	names    []string
	docs     []Document
	reserved []int64
}

// Len returns the number of documents.
func (b *Batch) Len() int { return len(b.docs) }

// Names returns the document names in load order.
func (b *Batch) Names() []string { return b.names }

// Bytes returns the total size of the batch.
func (b *Batch) Bytes() int64 {
	var n int64
	for _, r := range b.reserved {
		n += r
	}
	return n
}

// Strings returns one string element per document. The strings share the
// document memory and are valid until Close. Documents that are not valid
// UTF-8 fail with vector.ErrInvalidUTF8.
func (b *Batch) Strings() (*vector.Strings, error) {
	values := make([]string, len(b.docs))
	for i, doc := range b.docs {
		if doc != nil {
			values[i] = view(doc.Bytes())
		}
	}
	v, err := vector.NewStrings(values)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	return v, nil
}

// Close releases every document and its memory reservation.
func (b *Batch) Close() error {
	var errs []error
	for i, doc := range b.docs {
		if doc == nil {
			continue
		}
		if err := doc.Close(); err != nil {
			errs = append(errs, err)
		}
		b.docs[i] = nil
		b.rc.ReleaseMemory(b.reserved[i])
		b.reserved[i] = 0
	}
	return errors.Join(errs...)
}
