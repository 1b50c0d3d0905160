// internal/game/engine.go
//
// Core engine for a single word scramble session.
// Responsibilities:
//   - Start games from a RootProvider, falling back to a fixed root word.
//   - Classify candidates through the five ordered checks
//     (length, identity, originality, derivability, dictionary).
//   - Apply accepted words to the session (score, most-recent-first list).
//
// Evaluate never mutates; Apply does. Submit is the two combined.
package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// FallbackRoot is used when the provider has no usable entry.
	FallbackRoot = "silkworm"

	// MinWordLength is the shortest candidate that can be accepted.
	MinWordLength = 4
)

// DefaultLanguage is the dictionary language consulted when none is configured.
var DefaultLanguage = language.English

// NewGame constructs a fresh session with a root word from p.
// Returns an error wrapping ErrCorpusUnavailable if p cannot be read.
func NewGame(p RootProvider) (*Session, error) {
	s := &Session{ID: uuid.NewString()}
	if err := s.Reset(p); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset starts a new game in place, keeping the session ID.
// On error the session is left untouched.
func (s *Session) Reset(p RootProvider) error {
	root, ok, err := p.PickRandomRoot()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}
	root = normalize(root)
	if !ok || root == "" {
		root = FallbackRoot
	}
	s.RootWord = root
	s.UsedWords = []string{}
	s.Score = 0
	s.Candidate = ""
	return nil
}

// Evaluate classifies raw against the session without mutating it.
// Checks run in order and the first failure determines the reason.
func (s *Session) Evaluate(raw string, sc SpellChecker, lang language.Tag) Result {
	word := normalize(raw)

	switch {
	case utf8.RuneCountInString(word) < MinWordLength:
		return reject(word, ReasonTooShort, s.RootWord)
	case word == s.RootWord:
		return reject(word, ReasonSameAsRoot, s.RootWord)
	case !s.isOriginal(word):
		return reject(word, ReasonAlreadyUsed, s.RootWord)
	case !IsDerivable(word, s.RootWord):
		return reject(word, ReasonNotPossible, s.RootWord)
	case !sc.IsValidWord(word, lang):
		return reject(word, ReasonNotReal, s.RootWord)
	}
	return Result{Word: word, Accepted: true}
}

// Apply mutates the session according to r.
// Rejected results leave the session (including Candidate) unchanged.
func (s *Session) Apply(r Result) {
	if !r.Accepted {
		return
	}
	s.Score++
	s.UsedWords = append([]string{r.Word}, s.UsedWords...)
	s.Candidate = ""
}

// Submit evaluates raw and applies the result.
func (s *Session) Submit(raw string, sc SpellChecker, lang language.Tag) Result {
	r := s.Evaluate(raw, sc, lang)
	s.Apply(r)
	return r
}

// isOriginal reports whether word has not been accepted yet this game.
func (s *Session) isOriginal(word string) bool {
	for _, w := range s.UsedWords {
		if w == word {
			return false
		}
	}
	return true
}

// IsDerivable reports whether every letter of word can be matched to a
// distinct letter occurrence in root (multiset containment).
func IsDerivable(word, root string) bool {
	avail := make(map[rune]int, len(root))
	for _, r := range root {
		avail[r]++
	}
	for _, r := range word {
		if avail[r] == 0 {
			return false
		}
		avail[r]--
	}
	return true
}

// Describe returns the player-facing title and message for a reason.
func Describe(reason Reason, root string) (title, message string) {
	switch reason {
	case ReasonTooShort:
		return "Word is too short", "Word must contain more than three letters"
	case ReasonSameAsRoot:
		return "It's same word", "Please, change the word"
	case ReasonAlreadyUsed:
		return "Word used already", "Be more original"
	case ReasonNotPossible:
		return "Word not possible", "You can't spell that word from " + root
	case ReasonNotReal:
		return "Word not recognized", "You can't just make them up, you know"
	}
	return "", ""
}

func reject(word string, reason Reason, root string) Result {
	title, msg := Describe(reason, root)
	return Result{Word: word, Reason: reason, Title: title, Message: msg}
}

// normalize trims surrounding whitespace and lowercases.
// Casers are stateful, so one is built per call.
func normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}
