// internal/game/types.go
//
// Core type definitions for the word scramble engine.
// Defines:
//   - Reason: why a candidate word was rejected.
//   - Result: the outcome of evaluating one candidate.
//   - Session: state for a single game (root word, used words, score).
//   - RootProvider / SpellChecker: the oracles the engine consults.

package game

import (
	"errors"

	"golang.org/x/text/language"
)

// Reason identifies the first validation check a candidate failed.
// The string values are used on the wire and as metric labels.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonTooShort    Reason = "too_short"
	ReasonSameAsRoot  Reason = "same_as_root"
	ReasonAlreadyUsed Reason = "already_used"
	ReasonNotPossible Reason = "not_possible"
	ReasonNotReal     Reason = "not_real"
)

// Reasons lists every rejection reason in check order.
var Reasons = []Reason{
	ReasonTooShort,
	ReasonSameAsRoot,
	ReasonAlreadyUsed,
	ReasonNotPossible,
	ReasonNotReal,
}

// Result is the classification of a single submission.
// For rejections Title and Message hold the text shown to the player.
type Result struct {
	Word     string // normalized candidate (trimmed, lowercase)
	Accepted bool
	Reason   Reason // ReasonNone when Accepted
	Title    string
	Message  string
}

// Session holds the state of a single word scramble game.
type Session struct {
	ID        string   // Unique session identifier (UUID).
	RootWord  string   // Letters available this game (lowercase a–z).
	UsedWords []string // Accepted words, most recent first.
	Score     int      // Accepted submissions since the last reset.
	Candidate string   // Text currently being typed; not part of history.
}

// RootProvider supplies root words for new games.
// ok=false means the corpus had no usable entry; a non-nil error means the
// corpus itself could not be read.
type RootProvider interface {
	PickRandomRoot() (root string, ok bool, err error)
}

// SpellChecker reports whether word is a correctly spelled word in lang.
type SpellChecker interface {
	IsValidWord(word string, lang language.Tag) bool
}

// ErrCorpusUnavailable is returned by NewGame when the root word corpus
// cannot be read at all. A game cannot be started without it.
var ErrCorpusUnavailable = errors.New("game: root word corpus unavailable")
