package source

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hupe1980/unisplit/internal/mmap"
)

// Local opens files from the local file system by memory mapping them.
type Local struct {
	root string
}

// NewLocal creates a Local source. Relative names are resolved against root;
// an empty root uses the working directory.
func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Open maps the named file.
func (l *Local) Open(ctx context.Context, name string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := name
	if !filepath.IsAbs(path) && l.root != "" {
		path = filepath.Join(l.root, name)
	}

	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}
	// Splitting scans each document once from front to back.
	_ = m.Advise(mmap.AccessSequential)

	return &localDocument{m: m}, nil
}

type localDocument struct {
	m *mmap.Mapping
}

func (d *localDocument) Bytes() []byte { return d.m.Bytes() }

func (d *localDocument) Close() error { return d.m.Close() }
