package lines

import (
	"math"
	"unicode/utf8"

	"github.com/hupe1980/unisplit/internal/assemble"
)

const (
	cr  = '\r'
	lf  = '\n'
	vt  = '\v'
	ff  = '\f'
	nel = '\u0085'
	ls  = '\u2028'
	ps  = '\u2029'
)

// Options controls a scan.
type Options struct {
	// MaxPieces caps the number of lines. Negative means unbounded; zero
	// yields no lines at all.
	MaxPieces int

	// OmitEmpty suppresses zero-length lines.
	OmitEmpty bool

	// KeepTrailingEmpty opens a final empty line after a terminator that ends
	// the input ("a\n" yields "a" and ""). Without it the terminator simply
	// closes the last line.
	KeepTrailingEmpty bool
}

// Unbounded returns options without a piece cap or suppression.
func Unbounded() Options {
	return Options{MaxPieces: -1}
}

// IsTerminator reports whether r ends a line on its own. CR is a terminator;
// the LF of a CRLF pair is folded into it by the scanner.
func IsTerminator(r rune) bool {
	switch r {
	case cr, lf, vt, ff, nel, ls, ps:
		return true
	}
	return false
}

// scanner is the accumulator threaded through one scan: the growing list
// whose last entry is the open line.
type scanner struct {
	buf    string
	occ    assemble.Occurrences
	pieces int
	limit  int
	opts   Options
}

// Split classifies buf into lines.
func Split(buf string, opts Options) assemble.Occurrences {
	if opts.MaxPieces == 0 {
		return assemble.NewOccurrences(0)
	}

	s := scanner{
		buf:    buf,
		occ:    assemble.NewOccurrences(estimate(buf)),
		pieces: 1,
		limit:  opts.MaxPieces,
		opts:   opts,
	}
	if s.limit < 0 {
		s.limit = math.MaxInt
	}
	s.scan()
	return s.occ
}

func (s *scanner) scan() {
	n := len(s.buf)
	s.occ.Push(assemble.Range{})

	// The cap is checked only after a terminator opened a new line, so the
	// last retained line swallows everything that follows.
	for j := 0; j < n && s.pieces < s.limit; {
		start := j
		r, size := decode(s.buf, j)
		j += size

		if !IsTerminator(r) {
			s.occ.SetLastEnd(j)
			continue
		}
		// CRLF is one terminator; peek at the raw byte.
		if r == cr && j < n && s.buf[j] == lf {
			j++
		}

		s.terminate(start, j)
	}

	s.finish()
}

// terminate closes the open line before the terminator at [start, next) and
// opens the following one.
func (s *scanner) terminate(start, next int) {
	if s.opts.OmitEmpty && s.occ.Last().Empty() {
		// Collapse into the next line instead of emitting an empty one.
		s.occ.SetLast(assemble.Range{Start: next, End: next})
		return
	}

	s.occ.SetLastEnd(start)
	if next < len(s.buf) || s.opts.KeepTrailingEmpty {
		s.occ.Push(assemble.Range{Start: next, End: next})
		s.pieces++
	}
}

func (s *scanner) finish() {
	if s.pieces == s.limit {
		s.occ.SetLastEnd(len(s.buf))
	}
	if s.opts.OmitEmpty && s.occ.Last().Empty() {
		s.occ.Pop()
	}
}

func decode(buf string, j int) (rune, int) {
	if c := buf[j]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRuneInString(buf[j:])
}

// estimate guesses the number of lines to size the range list.
func estimate(buf string) int {
	const avgLine = 64
	return len(buf)/avgLine + 1
}
