package mmap

import "errors"

// AccessPattern provides hints to the kernel about how the data will be accessed.
type AccessPattern int

const (
	// AccessDefault is the default access pattern (no specific advice).
	AccessDefault AccessPattern = iota
	// AccessSequential suits a single front-to-back scan, as done by the
	// line and boundary splitters.
	AccessSequential
	// AccessWillNeed asks the kernel to prefetch the pages.
	AccessWillNeed
	// AccessDontNeed releases the pages once a document has been split.
	AccessDontNeed
)

var (
	// ErrClosed is returned when attempting to access a closed mapping.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned when the file size cannot be mapped.
	ErrInvalidSize = errors.New("mmap: invalid file size")
	// ErrNotRegular is returned when the path names a directory.
	ErrNotRegular = errors.New("mmap: not a regular file")
)
