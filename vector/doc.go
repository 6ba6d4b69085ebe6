// Package vector provides the NA-aware input container and the recycling
// coordinator used by the vectorized split entry points.
//
// A Vector holds a fixed number of elements, each either a value or NA
// (missing). NA positions are tracked in a roaring bitmap so dense vectors
// without missing values pay nothing for the mask.
//
//	str, _ := vector.NewStrings([]string{"a\nb", "", "c"}, 1) // element 1 is NA
//	plan, _ := vector.Recycle(str.Len(), maxPieces.Len())
//	for i := range plan.Length {
//	    s, ok := str.At(i)
//	    ...
//	}
//
// # Recycling
//
// Auxiliary parameter vectors are cyclically repeated against the main
// vector. The iteration length is the longest length; every other length must
// divide it evenly. Any zero-length vector yields a zero-length iteration.
package vector
