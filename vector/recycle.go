package vector

import (
	"errors"
	"fmt"
)

// ErrRecycling is returned when vector lengths are not compatible under the
// recycling rule.
var ErrRecycling = errors.New("vector: incompatible lengths for recycling")

// Plan is the outcome of the recycling rule for one vectorized call.
type Plan struct {
	// Length is the shared iteration length.
	Length int
	// Uneven is set when the lengths differ but are compatible.
	Uneven bool
}

// Span is a half-open range [Start, End) of cursor positions.
type Span struct {
	Start int
	End   int
}

// Recycle computes the common iteration length of vectors with the given
// lengths. The longest length wins; every other length must divide it.
// A zero length anywhere yields a zero-length plan.
func Recycle(lengths ...int) (Plan, error) {
	maxLen := 0
	for _, n := range lengths {
		if n < 0 {
			return Plan{}, fmt.Errorf("%w: negative length %d", ErrRecycling, n)
		}
		if n == 0 {
			return Plan{}, nil
		}
		if n > maxLen {
			maxLen = n
		}
	}

	plan := Plan{Length: maxLen}
	for _, n := range lengths {
		if maxLen%n != 0 {
			return Plan{}, fmt.Errorf("%w: length %d does not divide %d", ErrRecycling, n, maxLen)
		}
		if n != maxLen {
			plan.Uneven = true
		}
	}
	return plan, nil
}

// Chunks cuts the cursor range [0, Length) into at most n contiguous spans of
// near-equal size, in ascending order.
func (p Plan) Chunks(n int) []Span {
	if p.Length == 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if n > p.Length {
		n = p.Length
	}
	spans := make([]Span, 0, n)
	size, rem := p.Length/n, p.Length%n
	start := 0
	for i := range n {
		end := start + size
		if i < rem {
			end++
		}
		spans = append(spans, Span{Start: start, End: end})
		start = end
	}
	return spans
}
