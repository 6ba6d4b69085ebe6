// Package conv provides checked integer conversions between vector positions
// and the fixed-width indices used by NA bitmaps.
//
// Vector positions are Go ints; roaring bitmaps address uint32 positions.
// A vector longer than math.MaxUint32 elements cannot carry an NA mask, so the
// conversion fails instead of silently wrapping.
package conv
