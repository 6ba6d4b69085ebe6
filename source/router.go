package source

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Well-known URI schemes.
const (
	SchemeFile  = "file"
	SchemeS3    = "s3"
	SchemeMinIO = "minio"
)

// Location is a parsed document URI.
type Location struct {
	Scheme string
	// Name is passed to the source registered for Scheme. For object stores
	// it is "bucket/key".
	Name string
}

func (l Location) String() string {
	return l.Scheme + "://" + l.Name
}

// Resolve parses uri. Plain paths resolve to the file scheme.
//
//	s3://bucket/key    -> {s3, bucket/key}
//	minio://bucket/key -> {minio, bucket/key}
//	file:///tmp/a.txt  -> {file, /tmp/a.txt}
//	notes.txt          -> {file, notes.txt}
func Resolve(uri string) (Location, error) {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		if uri == "" {
			return Location{}, fmt.Errorf("source: empty location")
		}
		return Location{Scheme: SchemeFile, Name: uri}, nil
	}

	scheme = strings.ToLower(scheme)
	switch scheme {
	case SchemeFile:
		if rest == "" {
			return Location{}, fmt.Errorf("source: %q: empty path", uri)
		}
	case SchemeS3, SchemeMinIO:
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" || key == "" {
			return Location{}, fmt.Errorf("source: %q: expected %s://bucket/key", uri, scheme)
		}
	default:
		return Location{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
	return Location{Scheme: scheme, Name: rest}, nil
}

// SplitBucketKey splits an object store name into bucket and key.
func SplitBucketKey(name string) (bucket, key string, err error) {
	bucket, key, ok := strings.Cut(name, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("source: %q: expected bucket/key", name)
	}
	return bucket, key, nil
}

// Router dispatches URIs to the source registered for their scheme.
// It implements Source over URIs.
type Router struct {
	mu      sync.RWMutex
	sources map[string]Source
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{sources: make(map[string]Source)}
}

// Register binds scheme to src, replacing any previous binding.
func (r *Router) Register(scheme string, src Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[strings.ToLower(scheme)] = src
}

// Open resolves uri and opens it through the registered source.
func (r *Router) Open(ctx context.Context, uri string) (Document, error) {
	loc, err := Resolve(uri)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	src, ok := r.sources[loc.Scheme]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q has no registered source", ErrUnsupportedScheme, loc.Scheme)
	}
	return src.Open(ctx, loc.Name)
}
