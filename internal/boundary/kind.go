package boundary

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBoundary is returned for an unknown boundary kind name.
var ErrInvalidBoundary = errors.New("boundary: invalid boundary kind")

// Kind selects a segmentation granularity.
type Kind int

const (
	// Character splits into grapheme clusters.
	Character Kind = iota
	// LineBreak splits at line breaking opportunities.
	LineBreak
	// Sentence splits into sentences.
	Sentence
	// Word splits into words, whitespace runs and punctuation.
	Word
)

var kindNames = [...]string{
	Character: "character",
	LineBreak: "line_break",
	Sentence:  "sentence",
	Word:      "word",
}

// Kinds lists every boundary kind in declaration order.
func Kinds() []Kind {
	return []Kind{Character, LineBreak, Sentence, Word}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a boundary kind name. An exact name wins; otherwise
// name must be an unambiguous prefix of exactly one kind ("char", "w").
func ParseKind(name string) (Kind, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: empty name", ErrInvalidBoundary)
	}

	match := -1
	for i, candidate := range kindNames {
		if candidate == name {
			return Kind(i), nil
		}
		if strings.HasPrefix(candidate, name) {
			if match >= 0 {
				return 0, fmt.Errorf("%w: %q is ambiguous", ErrInvalidBoundary, name)
			}
			match = i
		}
	}
	if match < 0 {
		return 0, fmt.Errorf("%w: %q (expected one of %s)", ErrInvalidBoundary, name, strings.Join(kindNames[:], ", "))
	}
	return Kind(match), nil
}
