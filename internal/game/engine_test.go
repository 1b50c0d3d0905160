package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type fixedRoot struct {
	root string
	ok   bool
	err  error
}

func (f fixedRoot) PickRandomRoot() (string, bool, error) { return f.root, f.ok, f.err }

type wordSet map[string]bool

func (w wordSet) IsValidWord(word string, lang language.Tag) bool {
	return lang == language.English && w[word]
}

// anyWord accepts everything, so tests can isolate the earlier checks.
type anyWord struct{}

func (anyWord) IsValidWord(string, language.Tag) bool { return true }

func newSession(t *testing.T, root string) *Session {
	t.Helper()
	s, err := NewGame(fixedRoot{root: root, ok: true})
	require.NoError(t, err)
	return s
}

func TestNewGame(t *testing.T) {
	t.Run("uses provider root lowercased", func(t *testing.T) {
		s := newSession(t, "  EsCarGot\n")
		assert.Equal(t, "escargot", s.RootWord)
		assert.Empty(t, s.UsedWords)
		assert.NotNil(t, s.UsedWords)
		assert.Zero(t, s.Score)
		assert.Empty(t, s.Candidate)
		assert.NotEmpty(t, s.ID)
	})

	t.Run("falls back when provider has nothing", func(t *testing.T) {
		s, err := NewGame(fixedRoot{ok: false})
		require.NoError(t, err)
		assert.Equal(t, FallbackRoot, s.RootWord)
	})

	t.Run("falls back on a blank entry", func(t *testing.T) {
		s, err := NewGame(fixedRoot{root: "   ", ok: true})
		require.NoError(t, err)
		assert.Equal(t, "silkworm", s.RootWord)
	})

	t.Run("unavailable corpus is a typed error", func(t *testing.T) {
		s, err := NewGame(fixedRoot{err: errors.New("open start.txt: no such file")})
		assert.Nil(t, s)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCorpusUnavailable)
	})
}

func TestReset(t *testing.T) {
	s := newSession(t, "escargot")
	id := s.ID
	s.Submit("cargo", wordSet{"cargo": true}, language.English)
	s.Candidate = "half typed"
	require.Equal(t, 1, s.Score)

	require.NoError(t, s.Reset(fixedRoot{root: "silkworm", ok: true}))
	assert.Equal(t, id, s.ID)
	assert.Equal(t, "silkworm", s.RootWord)
	assert.Empty(t, s.UsedWords)
	assert.Zero(t, s.Score)
	assert.Empty(t, s.Candidate)

	err := s.Reset(fixedRoot{err: errors.New("gone")})
	assert.ErrorIs(t, err, ErrCorpusUnavailable)
	assert.Equal(t, "silkworm", s.RootWord, "failed reset leaves the session alone")
}

func TestEvaluateCheckOrder(t *testing.T) {
	cases := []struct {
		name   string
		root   string
		used   []string
		input  string
		dict   SpellChecker
		reason Reason
	}{
		{"short beats everything", "escargot", nil, "cat", anyWord{}, ReasonTooShort},
		{"short after trimming", "escargot", nil, "  car \n", anyWord{}, ReasonTooShort},
		{"empty input", "escargot", nil, "", anyWord{}, ReasonTooShort},
		{"root word itself", "escargot", nil, "escargot", anyWord{}, ReasonSameAsRoot},
		{"root word in caps", "escargot", nil, "ESCARGOT", anyWord{}, ReasonSameAsRoot},
		{"already used", "escargot", []string{"cargo"}, "cargo", anyWord{}, ReasonAlreadyUsed},
		{"letters missing", "escargot", nil, "xyz123", anyWord{}, ReasonNotPossible},
		{"fake and underivable", "escargot", nil, "zzzz", wordSet{}, ReasonNotPossible},
		{"derivable but not real", "escargot", nil, "gorc", wordSet{}, ReasonNotReal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSession(t, tc.root)
			s.UsedWords = append(s.UsedWords, tc.used...)
			r := s.Evaluate(tc.input, tc.dict, language.English)
			assert.False(t, r.Accepted)
			assert.Equal(t, tc.reason, r.Reason)
		})
	}
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	s := newSession(t, "escargot")
	s.Candidate = "cargo"
	r := s.Evaluate("cargo", wordSet{"cargo": true}, language.English)
	require.True(t, r.Accepted)
	assert.Zero(t, s.Score)
	assert.Empty(t, s.UsedWords)
	assert.Equal(t, "cargo", s.Candidate)
}

func TestRejectionText(t *testing.T) {
	s := newSession(t, "escargot")

	r := s.Evaluate("cat", anyWord{}, language.English)
	assert.Equal(t, "Word is too short", r.Title)
	assert.Equal(t, "Word must contain more than three letters", r.Message)

	r = s.Evaluate("escargot", anyWord{}, language.English)
	assert.Equal(t, "It's same word", r.Title)
	assert.Equal(t, "Please, change the word", r.Message)

	s.UsedWords = []string{"cargo"}
	r = s.Evaluate("cargo", anyWord{}, language.English)
	assert.Equal(t, "Word used already", r.Title)
	assert.Equal(t, "Be more original", r.Message)

	r = s.Evaluate("zzzz", anyWord{}, language.English)
	assert.Equal(t, "Word not possible", r.Title)
	assert.Equal(t, "You can't spell that word from escargot", r.Message)

	r = s.Evaluate("gorc", wordSet{}, language.English)
	assert.Equal(t, "Word not recognized", r.Title)
	assert.Equal(t, "You can't just make them up, you know", r.Message)

	r = s.Evaluate("coats", anyWord{}, language.English)
	assert.True(t, r.Accepted)
	assert.Empty(t, r.Title)
	assert.Empty(t, r.Message)
	assert.Equal(t, ReasonNone, r.Reason)
}

func TestIsDerivable(t *testing.T) {
	assert.True(t, IsDerivable("aab", "aabc"))
	assert.False(t, IsDerivable("aaab", "aabc"), "only two a's available")
	assert.True(t, IsDerivable("cargo", "escargot"))
	assert.True(t, IsDerivable("", "escargot"))
	assert.False(t, IsDerivable("worms", "silkworm"))
	assert.True(t, IsDerivable("milk", "silkworm"))
}

func TestSubmitEndToEnd(t *testing.T) {
	dict := wordSet{"cargo": true, "coast": true, "escargot": true}
	s := newSession(t, "escargot")

	r := s.Submit("cat", dict, language.English)
	assert.Equal(t, ReasonTooShort, r.Reason)
	assert.Zero(t, s.Score)

	s.Candidate = "Cargo "
	r = s.Submit("Cargo ", dict, language.English)
	require.True(t, r.Accepted)
	assert.Equal(t, "cargo", r.Word)
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, []string{"cargo"}, s.UsedWords)
	assert.Empty(t, s.Candidate)

	r = s.Submit("cargo", dict, language.English)
	assert.Equal(t, ReasonAlreadyUsed, r.Reason)

	r = s.Submit("escargot", dict, language.English)
	assert.Equal(t, ReasonSameAsRoot, r.Reason)

	r = s.Submit("xyz123", dict, language.English)
	assert.Equal(t, ReasonNotPossible, r.Reason)

	s.Candidate = "zzzz"
	r = s.Submit("zzzz", dict, language.English)
	assert.Equal(t, ReasonNotPossible, r.Reason)
	assert.Equal(t, "zzzz", s.Candidate, "rejections leave the candidate alone")

	r = s.Submit("coast", dict, language.English)
	require.True(t, r.Accepted)
	assert.Equal(t, 2, s.Score)
	assert.Equal(t, []string{"coast", "cargo"}, s.UsedWords)
}

func TestSubmitRespectsLanguage(t *testing.T) {
	s := newSession(t, "escargot")
	r := s.Submit("cargo", wordSet{"cargo": true}, language.French)
	assert.Equal(t, ReasonNotReal, r.Reason)
	assert.Zero(t, s.Score)
}

func TestDescribeUnknownReason(t *testing.T) {
	title, msg := Describe(ReasonNone, "escargot")
	assert.Empty(t, title)
	assert.Empty(t, msg)
	assert.Len(t, Reasons, 5)
}
