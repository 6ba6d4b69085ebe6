package boundary

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type mockFactory struct {
	mock.Mock
}

func (m *mockFactory) New(kind Kind, locale language.Tag) (Segmenter, error) {
	args := m.Called(kind, locale)
	s, _ := args.Get(0).(Segmenter)
	return s, args.Error(1)
}

type mockSegmenter struct {
	mock.Mock
}

func (m *mockSegmenter) SetText(text string) { m.Called(text) }
func (m *mockSegmenter) First() int          { return m.Called().Int(0) }
func (m *mockSegmenter) Next() int           { return m.Called().Int(0) }
func (m *mockSegmenter) Close() error        { return m.Called().Error(0) }

func pieces(t *testing.T, text string, kind Kind) []string {
	t.Helper()
	a := NewAdapter(nil)
	defer a.Close()
	out, err := a.Pieces(text, kind, language.Und)
	require.NoError(t, err)
	return out
}

func TestAdapter_Uniseg(t *testing.T) {
	t.Run("Word", func(t *testing.T) {
		assert.Equal(t, []string{"Hi", " ", "there", "."}, pieces(t, "Hi there.", Word))
	})

	t.Run("Character", func(t *testing.T) {
		assert.Equal(t, []string{"e\u0301", "a", "\r\n"}, pieces(t, "e\u0301a\r\n", Character))
	})

	t.Run("Sentence", func(t *testing.T) {
		assert.Equal(t, []string{"Hi. ", "You."}, pieces(t, "Hi. You.", Sentence))
	})

	t.Run("LineBreak", func(t *testing.T) {
		assert.Equal(t, []string{"hello ", "world"}, pieces(t, "hello world", LineBreak))
	})

	t.Run("EmptyYieldsOneEmptyString", func(t *testing.T) {
		for _, k := range Kinds() {
			assert.Equal(t, []string{""}, pieces(t, "", k), k.String())
		}
	})
}

func TestAdapter_FullCoverage(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	words := []string{"Hello", " ", "world", ".", "\n", "\u00e4", "e\u0301", "\U0001F1E9\U0001F1EA", "42", "?", "\u4e16\u754c", "\r\n", "\t"}
	a := NewAdapter(nil)
	defer a.Close()

	for range 500 {
		var b strings.Builder
		for range rng.Intn(20) {
			b.WriteString(words[rng.Intn(len(words))])
		}
		text := b.String()

		for _, k := range Kinds() {
			occ, err := a.Split(text, k, language.Und)
			require.NoError(t, err)

			prev := 0
			for _, r := range occ.Ranges() {
				require.Equal(t, prev, r.Start, "gap in %q (%s)", text, k)
				require.Less(t, r.Start, r.End)
				prev = r.End
			}
			require.Equal(t, len(text), prev, "coverage of %q (%s)", text, k)
			require.Equal(t, len(text), occ.Bytes())
		}
	}
}

func TestAdapter_ReusesSegmenter(t *testing.T) {
	f := new(mockFactory)
	word, _ := UnisegFactory{}.New(Word, language.Und)
	char, _ := UnisegFactory{}.New(Character, language.Und)
	word2, _ := UnisegFactory{}.New(Word, language.Und)
	f.On("New", Word, language.Und).Return(word, nil).Once()
	f.On("New", Character, language.Und).Return(char, nil).Once()
	f.On("New", Word, language.Und).Return(word2, nil).Once()

	var builds []Kind
	a := NewAdapter(f, WithBuildHook(func(kind Kind, _ language.Tag, err error) {
		require.NoError(t, err)
		builds = append(builds, kind)
	}))
	defer a.Close()

	for _, step := range []struct {
		text string
		kind Kind
	}{
		{"a b", Word},
		{"c d", Word},
		{"ef", Character},
		{"g h", Word},
		{"i", Word},
	} {
		_, err := a.Pieces(step.text, step.kind, language.Und)
		require.NoError(t, err)
	}

	assert.Equal(t, []Kind{Word, Character, Word}, builds)
	f.AssertExpectations(t)
}

func TestAdapter_RebuildsOnLocaleChange(t *testing.T) {
	var locales []language.Tag
	a := NewAdapter(nil, WithBuildHook(func(_ Kind, locale language.Tag, _ error) {
		locales = append(locales, locale)
	}))
	defer a.Close()

	for _, tag := range []language.Tag{language.German, language.German, language.French} {
		_, err := a.Pieces("x y", Word, tag)
		require.NoError(t, err)
	}
	assert.Equal(t, []language.Tag{language.German, language.French}, locales)
}

func TestAdapter_ConstructionFailure(t *testing.T) {
	partial := new(mockSegmenter)
	partial.On("Close").Return(nil).Once()

	cause := errors.New("no break rules for locale")
	f := new(mockFactory)
	f.On("New", Sentence, language.Und).Return(partial, cause).Once()

	a := NewAdapter(f)
	_, err := a.Pieces("Hi.", Sentence, language.Und)
	assert.ErrorIs(t, err, ErrSegmenterConstruction)
	assert.ErrorIs(t, err, cause)
	assert.NoError(t, a.Close())

	partial.AssertExpectations(t)
	f.AssertExpectations(t)
}

func TestAdapter_ReleasesOnKindChange(t *testing.T) {
	first := new(mockSegmenter)
	first.On("SetText", "ab").Return().Once()
	first.On("First").Return(0).Once()
	first.On("Next").Return(2).Once()
	first.On("Next").Return(Done).Once()
	first.On("Close").Return(nil).Once()

	second, _ := UnisegFactory{}.New(Character, language.Und)

	f := new(mockFactory)
	f.On("New", Word, language.Und).Return(first, nil).Once()
	f.On("New", Character, language.Und).Return(second, nil).Once()

	a := NewAdapter(f)
	out, err := a.Pieces("ab", Word, language.Und)
	require.NoError(t, err)
	assert.Equal(t, []string{"ab"}, out)

	out, err = a.Pieces("ab", Character, language.Und)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out)
	require.NoError(t, a.Close())

	first.AssertExpectations(t)
	f.AssertExpectations(t)
}

func TestUnisegSegmenter_Close(t *testing.T) {
	s, err := UnisegFactory{}.New(Word, language.Und)
	require.NoError(t, err)
	s.SetText("a b")
	require.NoError(t, s.Close())
	assert.Equal(t, Done, s.Next())
	assert.ErrorIs(t, s.Close(), ErrClosed)
}

func TestUnisegFactory_InvalidKind(t *testing.T) {
	_, err := UnisegFactory{}.New(Kind(42), language.Und)
	assert.ErrorIs(t, err, ErrInvalidBoundary)
}
