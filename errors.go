package unisplit

import (
	"errors"
	"fmt"

	"github.com/hupe1980/unisplit/internal/boundary"
	"github.com/hupe1980/unisplit/vector"
)

var (
	// ErrInvalidArgument is the class of all argument errors. It is matched by
	// every *ArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRecycling is returned when vector lengths are not compatible under
	// the recycling rule.
	ErrRecycling = errors.New("incompatible vector lengths")

	// ErrInvalidBoundary is returned for an unknown boundary kind name.
	ErrInvalidBoundary = errors.New("invalid boundary kind")

	// ErrInvalidLocale is returned for a malformed locale identifier.
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrSegmenterConstruction is returned when the segmentation service
	// cannot build a segmenter. The call is aborted.
	ErrSegmenterConstruction = errors.New("segmenter construction failed")

	// ErrEmptyInput is returned when a single-string operation receives an
	// empty vector.
	ErrEmptyInput = errors.New("empty input vector")

	// ErrInvalidUTF8 is returned when a string element is not valid UTF-8.
	ErrInvalidUTF8 = vector.ErrInvalidUTF8
)

// ArgumentError describes an invalid argument of an entry point.
//
// It matches ErrInvalidArgument with errors.Is; the underlying
// error (if any) can be accessed via errors.Unwrap.
type ArgumentError struct {
	Op    Operation
	Arg   string
	cause error
}

func (e *ArgumentError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s: invalid argument %q", e.Op, e.Arg)
	}
	return fmt.Sprintf("%s: invalid argument %q: %v", e.Op, e.Arg, e.cause)
}

func (e *ArgumentError) Unwrap() error { return e.cause }

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

func argumentError(op Operation, arg string, err error) error {
	return &ArgumentError{Op: op, Arg: arg, cause: translateError(err)}
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, vector.ErrRecycling):
		return fmt.Errorf("%w: %w", ErrRecycling, err)
	case errors.Is(err, boundary.ErrInvalidBoundary):
		return fmt.Errorf("%w: %w", ErrInvalidBoundary, err)
	case errors.Is(err, boundary.ErrInvalidLocale):
		return fmt.Errorf("%w: %w", ErrInvalidLocale, err)
	case errors.Is(err, boundary.ErrSegmenterConstruction):
		return fmt.Errorf("%w: %w", ErrSegmenterConstruction, err)
	}
	return err
}
