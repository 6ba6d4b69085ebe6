package boundary

import (
	"errors"
	"fmt"

	"github.com/rivo/uniseg"
	"golang.org/x/text/language"
)

// Done is returned by Segmenter.Next when no boundary is left.
const Done = -1

// ErrClosed is returned when a closed segmenter is used.
var ErrClosed = errors.New("boundary: segmenter closed")

// Segmenter iterates over the boundaries of one text at a time.
//
// Boundaries are byte offsets into the bound text. First rewinds to offset 0;
// Next advances to the following boundary or returns Done.
type Segmenter interface {
	// SetText binds the segmenter to text and rewinds it.
	SetText(text string)
	// First rewinds to the start of the text and returns 0.
	First() int
	// Next returns the next boundary offset, or Done.
	Next() int
	// Close releases the segmenter.
	Close() error
}

// Factory builds segmenters.
type Factory interface {
	New(kind Kind, locale language.Tag) (Segmenter, error)
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(kind Kind, locale language.Tag) (Segmenter, error)

// New calls f(kind, locale).
func (f FactoryFunc) New(kind Kind, locale language.Tag) (Segmenter, error) {
	return f(kind, locale)
}

// UnisegFactory builds segmenters backed by github.com/rivo/uniseg.
//
// uniseg implements the untailored rules, so every locale segments the same
// way; the locale is validated by the caller and kept on the segmenter.
type UnisegFactory struct{}

// New implements Factory.
func (UnisegFactory) New(kind Kind, locale language.Tag) (Segmenter, error) {
	var step stepFunc
	switch kind {
	case Character:
		step = func(s string, state int) (string, string, int) {
			cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
			return cluster, rest, newState
		}
	case LineBreak:
		step = func(s string, state int) (string, string, int) {
			segment, rest, _, newState := uniseg.FirstLineSegmentInString(s, state)
			return segment, rest, newState
		}
	case Sentence:
		step = uniseg.FirstSentenceInString
	case Word:
		step = uniseg.FirstWordInString
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidBoundary, kind)
	}
	return &unisegSegmenter{kind: kind, locale: locale, step: step, state: -1}, nil
}

type stepFunc func(s string, state int) (segment, rest string, newState int)

type unisegSegmenter struct {
	kind   Kind
	locale language.Tag
	step   stepFunc

	text   string
	pos    int
	state  int
	closed bool
}

func (s *unisegSegmenter) SetText(text string) {
	s.text = text
	s.First()
}

func (s *unisegSegmenter) First() int {
	s.pos = 0
	s.state = -1
	return 0
}

func (s *unisegSegmenter) Next() int {
	if s.closed || s.pos >= len(s.text) {
		return Done
	}
	segment, _, state := s.step(s.text[s.pos:], s.state)
	s.state = state
	if len(segment) == 0 {
		s.pos = len(s.text)
	} else {
		s.pos += len(segment)
	}
	return s.pos
}

func (s *unisegSegmenter) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	s.text = ""
	return nil
}
