// Package unisplit provides vectorized Unicode text segmentation for Go.
//
// A Splitter takes a vector of strings (with NA elements) plus recycled
// parameter vectors and returns one vector of pieces per position. Two
// families of splitting are offered:
//
//   - Line splitting at CR, LF, CRLF, VT, FF, NEL, LS and PS, with an
//     optional cap on the number of pieces and optional omission of empty
//     lines.
//   - Boundary splitting into grapheme clusters ("character"), line break
//     opportunities ("line_break"), sentences ("sentence") or words
//     ("word"), driven by a pluggable segmentation service.
//
// # Quick Start
//
//	s := unisplit.New()
//	str := vector.Of("a\r\nb\nc", "x\n\ny")
//	res, _ := s.SplitLines(ctx, str, unisplit.LinesParams{
//	    OmitEmpty: vector.Of(true),
//	})
//	// res[0] = ["a" "b" "c"], res[1] = ["x" "y"]
//
//	res, _ = s.SplitBoundaries(ctx, vector.Of("Hi there."), unisplit.BoundaryParams{})
//	// res[0] = ["Hi" " " "there" "."]
//
// # Recycling
//
// All vector arguments are recycled to the length of the longest one. Every
// length must divide the longest, otherwise ErrRecycling is returned. A zero
// length anywhere yields an empty Result.
//
// # NA
//
// An NA in the input or in any parameter at a position produces a
// single-element NA vector at that position. No segmentation is attempted.
//
// # Errors
//
// Argument errors (invalid boundary kind, malformed locale, incompatible
// lengths) are detected before any element is processed and match both
// ErrInvalidArgument and a specific sentinel via errors.Is. A failing
// segmentation service aborts the whole call with ErrSegmenterConstruction;
// no partial Result is returned.
package unisplit
