package vector

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/RoaringBitmap/roaring/v2"
	gojson "github.com/goccy/go-json"
	"github.com/hupe1980/unisplit/internal/conv"
)

var (
	// ErrIndexOutOfRange is returned when an NA position lies outside the vector.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidUTF8 is returned when a string element is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("vector: invalid UTF-8")
)

// Vector is a fixed-length sequence of values with per-element NA markers.
//
// A nil *Vector behaves like an empty vector.
type Vector[T any] struct {
	values []T
	na     *roaring.Bitmap // nil when no element is NA
}

// Strings is a vector of UTF-8 strings.
type Strings = Vector[string]

// Ints is a vector of integers.
type Ints = Vector[int]

// Bools is a vector of booleans.
type Bools = Vector[bool]

// New creates a vector over values. The elements at the positions in na are
// marked NA; their values are ignored.
//
// The vector takes ownership of values.
func New[T any](values []T, na ...int) (*Vector[T], error) {
	if err := conv.CheckLen(len(values)); err != nil {
		return nil, err
	}
	v := &Vector[T]{values: values}
	for _, i := range na {
		if err := v.SetNA(i); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Of creates a vector without NA elements.
func Of[T any](values ...T) *Vector[T] {
	return &Vector[T]{values: values}
}

// FromPointers creates a vector where nil pointers become NA.
func FromPointers[T any](ptrs []*T) *Vector[T] {
	v := &Vector[T]{values: make([]T, len(ptrs))}
	for i, p := range ptrs {
		if p == nil {
			v.markNA(uint32(i))
			continue
		}
		v.values[i] = *p
	}
	return v
}

// NA returns a one-element vector whose only element is NA.
func NA[T any]() *Vector[T] {
	v := &Vector[T]{values: make([]T, 1)}
	v.markNA(0)
	return v
}

// NewStrings creates a string vector and checks that every non-NA element is
// valid UTF-8.
func NewStrings(values []string, na ...int) (*Strings, error) {
	v, err := New(values, na...)
	if err != nil {
		return nil, err
	}
	for i, s := range values {
		if v.IsNA(i) {
			continue
		}
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("%w: element %d", ErrInvalidUTF8, i)
		}
	}
	return v, nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return len(v.values)
}

// IsNA reports whether element i is NA.
func (v *Vector[T]) IsNA(i int) bool {
	if v == nil || v.na == nil || i < 0 {
		return false
	}
	idx, err := conv.IntToUint32(i)
	if err != nil {
		return false
	}
	return v.na.Contains(idx)
}

// Get returns element i. ok is false if the element is NA.
// Get panics if i is out of range.
func (v *Vector[T]) Get(i int) (val T, ok bool) {
	if v.IsNA(i) {
		return val, false
	}
	return v.values[i], true
}

// At returns the element at cursor position i under the recycling rule,
// i.e. element i mod Len. ok is false if the element is NA.
func (v *Vector[T]) At(i int) (T, bool) {
	return v.Get(i % len(v.values))
}

// Values returns the underlying values. NA slots hold whatever value was
// stored at construction (usually the zero value).
func (v *Vector[T]) Values() []T {
	if v == nil {
		return nil
	}
	return v.values
}

// NACount returns the number of NA elements.
func (v *Vector[T]) NACount() int {
	if v == nil || v.na == nil {
		return 0
	}
	n, err := conv.Uint64ToInt(v.na.GetCardinality())
	if err != nil {
		return len(v.values)
	}
	return n
}

// SetNA marks element i as NA.
func (v *Vector[T]) SetNA(i int) error {
	if i < 0 || i >= v.Len() {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, v.Len())
	}
	idx, err := conv.IntToUint32(i)
	if err != nil {
		return err
	}
	v.markNA(idx)
	return nil
}

func (v *Vector[T]) markNA(idx uint32) {
	if v.na == nil {
		v.na = roaring.New()
	}
	v.na.Add(idx)
}

// MarshalJSON encodes the vector as a JSON array with null for NA elements.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	out := make([]any, v.Len())
	for i := range out {
		if val, ok := v.Get(i); ok {
			out[i] = val
		}
	}
	return gojson.Marshal(out)
}

// UnmarshalJSON decodes a JSON array; null elements become NA.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var ptrs []*T
	if err := gojson.Unmarshal(data, &ptrs); err != nil {
		return err
	}
	if err := conv.CheckLen(len(ptrs)); err != nil {
		return err
	}
	*v = *FromPointers(ptrs)
	return nil
}
