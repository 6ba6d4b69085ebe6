package assemble

// Range is a half-open byte range [Start, End) into one element's buffer.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range covers no bytes.
func (r Range) Empty() bool { return r.Start == r.End }

// Occurrences is an ordered list of non-overlapping ranges built during a
// single scan. Only the last entry may be changed after it was pushed.
type Occurrences struct {
	ranges []Range
}

// NewOccurrences returns a list with room for n ranges.
func NewOccurrences(n int) Occurrences {
	return Occurrences{ranges: make([]Range, 0, n)}
}

// Push appends a range.
func (o *Occurrences) Push(r Range) { o.ranges = append(o.ranges, r) }

// Len returns the number of ranges.
func (o *Occurrences) Len() int { return len(o.ranges) }

// Last returns the last range. It panics if the list is empty.
func (o *Occurrences) Last() Range { return o.ranges[len(o.ranges)-1] }

// SetLast replaces the last range.
func (o *Occurrences) SetLast(r Range) { o.ranges[len(o.ranges)-1] = r }

// SetLastEnd moves the end offset of the last range.
func (o *Occurrences) SetLastEnd(end int) { o.ranges[len(o.ranges)-1].End = end }

// Pop removes the last range.
func (o *Occurrences) Pop() { o.ranges = o.ranges[:len(o.ranges)-1] }

// Ranges returns the ranges in scan order.
func (o *Occurrences) Ranges() []Range { return o.ranges }

// Bytes returns the total number of bytes covered by all ranges.
func (o *Occurrences) Bytes() int {
	n := 0
	for _, r := range o.ranges {
		n += r.Len()
	}
	return n
}
