package boundary

import (
	"errors"
	"fmt"

	"github.com/hupe1980/unisplit/internal/assemble"
	"golang.org/x/text/language"
)

// ErrSegmenterConstruction wraps failures of the segmentation service while
// building a segmenter.
var ErrSegmenterConstruction = errors.New("boundary: segmenter construction failed")

// BuildHook observes every segmenter (re)build.
type BuildHook func(kind Kind, locale language.Tag, err error)

// Adapter drives a Segmenter over successive texts and reuses it while the
// requested kind and locale stay the same.
type Adapter struct {
	factory Factory
	hook    BuildHook

	handle Segmenter // nil until the first element
	kind   Kind
	locale language.Tag
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithBuildHook registers a hook called after every segmenter build attempt.
func WithBuildHook(hook BuildHook) AdapterOption {
	return func(a *Adapter) {
		a.hook = hook
	}
}

// NewAdapter creates an adapter. A nil factory selects UnisegFactory.
func NewAdapter(factory Factory, optFns ...AdapterOption) *Adapter {
	if factory == nil {
		factory = UnisegFactory{}
	}
	a := &Adapter{factory: factory}
	for _, fn := range optFns {
		fn(a)
	}
	return a
}

// Split binds text and drains the segmenter into contiguous ranges covering
// the whole text. Empty text yields no ranges.
func (a *Adapter) Split(text string, kind Kind, locale language.Tag) (assemble.Occurrences, error) {
	if err := a.ensure(kind, locale); err != nil {
		return assemble.Occurrences{}, err
	}

	a.handle.SetText(text)
	occ := assemble.NewOccurrences(len(text)/8 + 1)
	last := a.handle.First()
	for b := a.handle.Next(); b != Done; b = a.handle.Next() {
		occ.Push(assemble.Range{Start: last, End: b})
		last = b
	}
	return occ, nil
}

// Pieces splits text and copies the segments out. A text without boundaries
// yields a single empty string so callers always receive one element.
func (a *Adapter) Pieces(text string, kind Kind, locale language.Tag) ([]string, error) {
	occ, err := a.Split(text, kind, locale)
	if err != nil {
		return nil, err
	}
	if occ.Len() == 0 {
		return assemble.Single(""), nil
	}
	return assemble.Assemble(text, &occ), nil
}

// Close releases the held segmenter, if any.
func (a *Adapter) Close() error {
	if a.handle == nil {
		return nil
	}
	err := a.handle.Close()
	a.handle = nil
	return err
}

// ensure rebuilds the segmenter when kind or locale differ from the last
// element's.
func (a *Adapter) ensure(kind Kind, locale language.Tag) error {
	if a.handle != nil && a.kind == kind && a.locale == locale {
		return nil
	}
	if err := a.Close(); err != nil {
		return err
	}

	h, err := a.factory.New(kind, locale)
	if a.hook != nil {
		a.hook(kind, locale, err)
	}
	if err != nil {
		if h != nil {
			_ = h.Close()
		}
		return fmt.Errorf("%w: %s/%s: %w", ErrSegmenterConstruction, kind, locale, err)
	}

	a.handle = h
	a.kind = kind
	a.locale = locale
	return nil
}
