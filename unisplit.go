package unisplit

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/hupe1980/unisplit/internal/assemble"
	"github.com/hupe1980/unisplit/internal/boundary"
	"github.com/hupe1980/unisplit/internal/lines"
	"github.com/hupe1980/unisplit/vector"
)

// Operation names an entry point in logs, metrics and errors.
type Operation string

const (
	OpSplitLines      Operation = "split_lines"
	OpSplitLines1     Operation = "split_lines1"
	OpSplitBoundaries Operation = "split_boundaries"
)

// Result holds one output vector per cursor position. An NA input element
// yields a single-element NA vector.
type Result []*vector.Strings

// Pieces returns the total number of strings across all output vectors.
func (r Result) Pieces() int {
	n := 0
	for _, v := range r {
		n += v.Len()
	}
	return n
}

// Values flattens the result into plain slices. NA elements become nil;
// empty results are non-nil empty slices.
func (r Result) Values() [][]string {
	out := make([][]string, len(r))
	for i, v := range r {
		if v.Len() == 1 && v.IsNA(0) {
			continue
		}
		vals := v.Values()
		if vals == nil {
			vals = []string{}
		}
		out[i] = vals
	}
	return out
}

// LinesParams are the recycled parameters of SplitLines. A nil vector
// selects the default for every element.
type LinesParams struct {
	// MaxPieces caps the number of pieces per element. Negative means
	// unbounded, zero yields an empty result. Default -1.
	MaxPieces *vector.Ints
	// OmitEmpty drops empty lines. Default false.
	OmitEmpty *vector.Bools
}

// BoundaryParams are the recycled parameters of SplitBoundaries.
type BoundaryParams struct {
	// Kinds names the boundary type per element: "character",
	// "line_break", "sentence" or "word", or any unique prefix.
	// Default "word".
	Kinds *vector.Strings
	// Locales holds ICU/POSIX locale identifiers. The empty string selects
	// the default locale. Default "".
	Locales *vector.Strings
}

// Splitter splits vectors of strings into lines or text boundaries.
//
// A Splitter is safe for concurrent use; every call owns its segmenters.
type Splitter struct {
	opts options
}

// New creates a Splitter.
func New(optFns ...Option) *Splitter {
	return &Splitter{opts: applyOptions(optFns)}
}

// element computes the output vector for one cursor position.
type element interface {
	split(i int) (*vector.Strings, error)
	close() error
}

// SplitLines splits every element of str at line terminators (CR, LF, CRLF,
// VT, FF, NEL, LS, PS). The result has one vector per recycled position.
func (s *Splitter) SplitLines(ctx context.Context, str *vector.Strings, params LinesParams) (res Result, err error) {
	start := time.Now()
	defer func() { s.observe(ctx, OpSplitLines, res, start, err) }()

	maxPieces := params.MaxPieces
	if maxPieces == nil {
		maxPieces = vector.Of(-1)
	}
	omitEmpty := params.OmitEmpty
	if omitEmpty == nil {
		omitEmpty = vector.Of(false)
	}

	plan, err := s.recycle(ctx, OpSplitLines, str.Len(), maxPieces.Len(), omitEmpty.Len())
	if err != nil {
		return nil, err
	}

	return s.run(ctx, plan, func() element {
		return &lineElement{str: str, maxPieces: maxPieces, omitEmpty: omitEmpty}
	})
}

// SplitLines1 splits the first element of str at line terminators, without
// piece limit and keeping empty lines. A trailing terminator does not
// produce a trailing empty line.
func (s *Splitter) SplitLines1(ctx context.Context, str *vector.Strings) (out *vector.Strings, err error) {
	start := time.Now()
	defer func() {
		var res Result
		if out != nil {
			res = Result{out}
		}
		s.observe(ctx, OpSplitLines1, res, start, err)
	}()

	if str.Len() == 0 {
		return nil, argumentError(OpSplitLines1, "str", ErrEmptyInput)
	}
	if str.Len() > 1 {
		s.opts.logger.WarnContext(ctx, "only the first element is used",
			"op", string(OpSplitLines1),
			"length", str.Len(),
		)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, ok := str.Get(0)
	if !ok {
		return vector.NA[string](), nil
	}
	occ := lines.Split(text, lines.Unbounded())
	return vector.Of(assemble.Assemble(text, &occ)...), nil
}

// SplitBoundaries splits every element of str into text segments delimited
// by the boundaries of the requested kind. The concatenation of a non-NA
// element's pieces equals the element; the empty string yields [""].
//
// Kinds and locales are validated before any element is processed.
func (s *Splitter) SplitBoundaries(ctx context.Context, str *vector.Strings, params BoundaryParams) (res Result, err error) {
	start := time.Now()
	defer func() { s.observe(ctx, OpSplitBoundaries, res, start, err) }()

	kindNames := params.Kinds
	if kindNames == nil {
		kindNames = vector.Of(boundary.Word.String())
	}
	localeIDs := params.Locales
	if localeIDs == nil {
		localeIDs = vector.Of("")
	}

	plan, err := s.recycle(ctx, OpSplitBoundaries, str.Len(), kindNames.Len(), localeIDs.Len())
	if err != nil {
		return nil, err
	}

	kinds, err := parseKinds(kindNames)
	if err != nil {
		return nil, err
	}
	locales, err := s.parseLocales(localeIDs)
	if err != nil {
		return nil, err
	}

	return s.run(ctx, plan, func() element {
		adapter := boundary.NewAdapter(s.opts.factory, boundary.WithBuildHook(s.buildHook(ctx)))
		return &boundaryElement{
			str:       str,
			kindNames: kindNames,
			localeIDs: localeIDs,
			kinds:     kinds,
			locales:   locales,
			adapter:   adapter,
		}
	})
}

func (s *Splitter) recycle(ctx context.Context, op Operation, lengths ...int) (vector.Plan, error) {
	plan, err := vector.Recycle(lengths...)
	if err != nil {
		return vector.Plan{}, argumentError(op, "lengths", err)
	}
	if plan.Uneven && s.opts.recyclingWarnings {
		s.opts.logger.LogRecycling(ctx, op, lengths)
	}
	return plan, nil
}

// run evaluates every cursor position, sequentially or in contiguous chunks
// with one element worker per goroutine. Any error aborts the whole call.
func (s *Splitter) run(ctx context.Context, plan vector.Plan, newElement func() element) (Result, error) {
	out := make(Result, plan.Length)

	if s.opts.parallelism <= 1 || plan.Length < s.opts.parallelThreshold {
		if err := runSpan(ctx, newElement(), vector.Span{Start: 0, End: plan.Length}, out); err != nil {
			return nil, err
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, span := range plan.Chunks(s.opts.parallelism) {
		g.Go(func() error {
			return runSpan(gctx, newElement(), span, out)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func runSpan(ctx context.Context, e element, span vector.Span, out Result) (err error) {
	defer func() {
		if cerr := e.close(); err == nil {
			err = cerr
		}
	}()

	for i := span.Start; i < span.End; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := e.split(i)
		if err != nil {
			return translateError(err)
		}
		out[i] = v
	}
	return nil
}

func (s *Splitter) observe(ctx context.Context, op Operation, res Result, start time.Time, err error) {
	pieces := res.Pieces()
	s.opts.metricsCollector.RecordSplit(op, len(res), pieces, time.Since(start), err)
	s.opts.logger.LogSplit(ctx, op, len(res), pieces, err)
}

func (s *Splitter) buildHook(ctx context.Context) boundary.BuildHook {
	return func(kind boundary.Kind, locale language.Tag, err error) {
		s.opts.metricsCollector.RecordSegmenterBuild(kind.String(), err)
		s.opts.logger.LogSegmenterBuild(ctx, kind.String(), locale.String(), err)
	}
}

func (s *Splitter) defaultLocale() (language.Tag, error) {
	if s.opts.defaultLocale == "" {
		return boundary.DefaultLocale(), nil
	}
	return boundary.ResolveLocale(s.opts.defaultLocale, boundary.DefaultLocale())
}

func parseKinds(names *vector.Strings) ([]boundary.Kind, error) {
	kinds := make([]boundary.Kind, names.Len())
	for i := range kinds {
		name, ok := names.Get(i)
		if !ok {
			continue
		}
		k, err := boundary.ParseKind(name)
		if err != nil {
			return nil, argumentError(OpSplitBoundaries, "kind", err)
		}
		kinds[i] = k
	}
	return kinds, nil
}

func (s *Splitter) parseLocales(ids *vector.Strings) ([]language.Tag, error) {
	fallback, err := s.defaultLocale()
	if err != nil {
		return nil, argumentError(OpSplitBoundaries, "default locale", err)
	}
	tags := make([]language.Tag, ids.Len())
	for i := range tags {
		id, ok := ids.Get(i)
		if !ok {
			continue
		}
		tag, err := boundary.ResolveLocale(id, fallback)
		if err != nil {
			return nil, argumentError(OpSplitBoundaries, "locale", err)
		}
		tags[i] = tag
	}
	return tags, nil
}

type lineElement struct {
	str       *vector.Strings
	maxPieces *vector.Ints
	omitEmpty *vector.Bools
}

func (e *lineElement) split(i int) (*vector.Strings, error) {
	text, ok := e.str.At(i)
	if !ok {
		return vector.NA[string](), nil
	}
	// NA limit is unbounded; NA suppression counts as set.
	n, ok := e.maxPieces.At(i)
	if !ok {
		n = -1
	}
	omit, ok := e.omitEmpty.At(i)
	if !ok {
		omit = true
	}
	if n == 0 {
		return vector.Of(assemble.Empty()...), nil
	}

	occ := lines.Split(text, lines.Options{MaxPieces: n, OmitEmpty: omit, KeepTrailingEmpty: true})
	return vector.Of(assemble.Assemble(text, &occ)...), nil
}

func (e *lineElement) close() error { return nil }

type boundaryElement struct {
	str       *vector.Strings
	kindNames *vector.Strings
	localeIDs *vector.Strings
	kinds     []boundary.Kind
	locales   []language.Tag
	adapter   *boundary.Adapter
}

func (e *boundaryElement) split(i int) (*vector.Strings, error) {
	text, ok := e.str.At(i)
	if !ok {
		return vector.NA[string](), nil
	}
	j := i % len(e.kinds)
	k := i % len(e.locales)
	if e.kindNames.IsNA(j) || e.localeIDs.IsNA(k) {
		return vector.NA[string](), nil
	}

	pieces, err := e.adapter.Pieces(text, e.kinds[j], e.locales[k])
	if err != nil {
		return nil, err
	}
	return vector.Of(pieces...), nil
}

func (e *boundaryElement) close() error { return e.adapter.Close() }
