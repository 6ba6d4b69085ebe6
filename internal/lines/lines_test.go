package lines

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/hupe1980/unisplit/internal/assemble"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func split(s string, opts Options) []string {
	occ := Split(s, opts)
	return assemble.Assemble(s, &occ)
}

func TestSplit_Unbounded(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "Empty", in: "", want: []string{""}},
		{name: "NoTerminator", in: "abc", want: []string{"abc"}},
		{name: "Mixed", in: "a\r\nb\nc", want: []string{"a", "b", "c"}},
		{name: "LoneCR", in: "a\rb", want: []string{"a", "b"}},
		{name: "CRThenCRLF", in: "a\r\r\nb", want: []string{"a", "", "b"}},
		{name: "LFCR", in: "a\n\rb", want: []string{"a", "", "b"}},
		{name: "TrailingLF", in: "a\n", want: []string{"a"}},
		{name: "TrailingCR", in: "a\r", want: []string{"a"}},
		{name: "OnlyCRLF", in: "\r\n", want: []string{""}},
		{name: "EmptyMiddle", in: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "TwoTrailing", in: "a\n\n", want: []string{"a", ""}},
		{
			name: "AllTerminators",
			in:   "a\u0085b\u2028c\u2029d\ve\fg",
			want: []string{"a", "b", "c", "d", "e", "g"},
		},
		{name: "Multibyte", in: "gr\u00fc\u00dfe\nwelt", want: []string{"gr\u00fc\u00dfe", "welt"}},
		{name: "NotNEL", in: "\u00c5\u0085", want: []string{"\u00c5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, split(tt.in, Unbounded()))
		})
	}
}

func TestSplit_Bounded(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		maxPieces int
		omitEmpty bool
		want      []string
	}{
		{name: "TrailingTerminatorOpensLine", in: "a\n", maxPieces: -1, want: []string{"a", ""}},
		{name: "Empty", in: "", maxPieces: -1, want: []string{""}},
		{name: "EmptyOmitted", in: "", maxPieces: -1, omitEmpty: true, want: []string{}},
		{name: "OmitMiddle", in: "a\n\nb", maxPieces: -1, omitEmpty: true, want: []string{"a", "b"}},
		{name: "OmitLeadingAndTrailing", in: "\n\na\n\n", maxPieces: -1, omitEmpty: true, want: []string{"a"}},
		{name: "CapAbsorbsRemainder", in: "a\n\nb", maxPieces: 2, want: []string{"a", "\nb"}},
		{name: "CapOne", in: "a\r\nb\nc", maxPieces: 1, want: []string{"a\r\nb\nc"}},
		{name: "CapOneEmpty", in: "", maxPieces: 1, want: []string{""}},
		{name: "CapOneEmptyOmitted", in: "", maxPieces: 1, omitEmpty: true, want: []string{}},
		{name: "CapZero", in: "a\nb", maxPieces: 0, want: []string{}},
		{name: "CapNotReached", in: "a\nb", maxPieces: 5, want: []string{"a", "b"}},
		{name: "CapWithOmit", in: "a\n\n\nb\nc", maxPieces: 2, omitEmpty: true, want: []string{"a", "\n\nb\nc"}},
		{name: "CapAtFinalTerminatorKeepsRemainder", in: "a\n\n", maxPieces: 2, omitEmpty: true, want: []string{"a", "\n"}},
		{name: "CapAtEndDropsEmpty", in: "a\n", maxPieces: 2, omitEmpty: true, want: []string{"a"}},
		{name: "CRLFCountsOnce", in: "a\r\nb\r\nc", maxPieces: 2, want: []string{"a", "b\r\nc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{MaxPieces: tt.maxPieces, OmitEmpty: tt.omitEmpty, KeepTrailingEmpty: true}
			assert.Equal(t, tt.want, split(tt.in, opts))
		})
	}
}

func TestIsTerminator(t *testing.T) {
	for _, r := range []rune{'\r', '\n', '\v', '\f', '\u0085', '\u2028', '\u2029'} {
		assert.True(t, IsTerminator(r), "%U", r)
	}
	for _, r := range []rune{'a', ' ', '\t', '\u00a0', '\u200b'} {
		assert.False(t, IsTerminator(r), "%U", r)
	}
}

var fragments = []string{"a", "bc", "\u00e4", "\u4e16", " ", "\r", "\n", "\r\n", "\v", "\f", "\u0085", "\u2028", "\u2029"}

func randomText(rng *rand.Rand) string {
	var b strings.Builder
	for range rng.Intn(24) {
		b.WriteString(fragments[rng.Intn(len(fragments))])
	}
	return b.String()
}

func isSingleTerminator(gap string) bool {
	if gap == "\r\n" {
		return true
	}
	r, size := utf8.DecodeRuneInString(gap)
	return size == len(gap) && IsTerminator(r)
}

func countTerminators(s string) int {
	n := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if r == '\r' && i < len(s) && s[i] == '\n' {
			i++
		}
		if IsTerminator(r) {
			n++
		}
	}
	return n
}

func endsWithTerminator(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return IsTerminator(r)
}

func TestSplit_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for range 2000 {
		src := randomText(rng)
		occ := Split(src, Unbounded())
		ranges := occ.Ranges()
		require.NotEmpty(t, ranges, "%q", src)
		require.Equal(t, 0, ranges[0].Start, "%q", src)

		var rebuilt strings.Builder
		prev := 0
		for _, r := range ranges {
			if r.Start > prev {
				gap := src[prev:r.Start]
				require.True(t, isSingleTerminator(gap), "gap %q in %q", gap, src)
				rebuilt.WriteString(gap)
			}
			require.LessOrEqual(t, r.Start, r.End)
			rebuilt.WriteString(src[r.Start:r.End])
			prev = r.End
		}
		tail := src[prev:]
		if tail != "" {
			require.True(t, isSingleTerminator(tail), "tail %q in %q", tail, src)
			rebuilt.WriteString(tail)
		}
		require.Equal(t, src, rebuilt.String())

		want := countTerminators(src) + 1
		if src != "" && endsWithTerminator(src) {
			want--
		}
		require.Equal(t, want, len(ranges), "%q", src)
	}
}

func TestSplit_BoundedLineCount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	opts := Options{MaxPieces: -1, KeepTrailingEmpty: true}

	for range 2000 {
		src := randomText(rng)
		occ := Split(src, opts)
		require.Equal(t, countTerminators(src)+1, occ.Len(), "%q", src)

		for _, piece := range split(src, Options{MaxPieces: -1, OmitEmpty: true, KeepTrailingEmpty: true}) {
			require.NotEmpty(t, piece, "%q", src)
		}
	}
}

func TestSplit_Idempotent(t *testing.T) {
	for _, s := range []string{"", "abc", "\u00e4 \u4e16\t"} {
		assert.Equal(t, []string{s}, split(s, Unbounded()))
	}
}
