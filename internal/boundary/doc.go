// Package boundary adapts an external Unicode text segmentation service to
// the split engine.
//
// A Factory builds a Segmenter for a boundary Kind and locale. The Adapter
// keeps one Segmenter alive across consecutive elements that request the same
// kind and locale and rebuilds it only when either changes. Adapters are not
// safe for concurrent use; give every worker its own.
//
// The default factory is backed by github.com/rivo/uniseg, which implements
// the root-locale rules of UAX #29 (grapheme clusters, words, sentences) and
// UAX #14 (line breaking opportunities).
package boundary
