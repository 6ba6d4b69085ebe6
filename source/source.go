package source

import (
	"context"
	"errors"
	"os"
	"unsafe"
)

var (
	// ErrNotFound is returned when a document does not exist.
	// It matches os.ErrNotExist.
	ErrNotFound = os.ErrNotExist

	// ErrUnsupportedScheme is returned for URIs without a registered source.
	ErrUnsupportedScheme = errors.New("source: unsupported scheme")
)

// Source opens documents by name.
type Source interface {
	Open(ctx context.Context, name string) (Document, error)
}

// Document is a loaded input document.
type Document interface {
	// Bytes returns the contents. The slice is read-only and valid until
	// Close.
	Bytes() []byte
	Close() error
}

// heapDocument is a document owned by the Go heap.
type heapDocument struct {
	data []byte
}

// NewDocument wraps data as a Document. The document takes ownership of data.
func NewDocument(data []byte) Document {
	return &heapDocument{data: data}
}

func (d *heapDocument) Bytes() []byte { return d.data }

func (d *heapDocument) Close() error { return nil }

// view returns b as a string sharing its memory.
func view(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
