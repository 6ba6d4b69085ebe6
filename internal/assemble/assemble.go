package assemble

import "strings"

// Assemble copies every range of occ out of src, in range order.
//
// All pieces of one call share a single freshly allocated buffer, so the
// result never aliases src and costs one allocation for the bytes plus one for
// the slice header array, regardless of the number of pieces.
func Assemble(src string, occ *Occurrences) []string {
	ranges := occ.Ranges()
	out := make([]string, len(ranges))
	if len(ranges) == 0 {
		return out
	}

	var b strings.Builder
	b.Grow(occ.Bytes())
	for _, r := range ranges {
		b.WriteString(src[r.Start:r.End])
	}
	buf := b.String()

	off := 0
	for i, r := range ranges {
		n := r.Len()
		out[i] = buf[off : off+n]
		off += n
	}
	return out
}

// Empty returns a zero-length output sequence.
func Empty() []string { return []string{} }

// Single returns an output sequence holding exactly one copy of s.
func Single(s string) []string { return []string{strings.Clone(s)} }
