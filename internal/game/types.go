// internal/game/types.go
//
// Core type definitions for the word scramble engine.
// Defines:
//   - Reason: why a submission was rejected.
//   - Rejection: the user-facing error for a rejected submission.
//   - Result: the outcome of an accepted (or ignored) submission.
//   - Dictionary / RootSource: collaborators injected into a Game.
//   - Game: state for a single session.

package game

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
)

// Reason identifies which validation rule rejected a submission.
type Reason string

const (
	ReasonDuplicateWord      Reason = "duplicate_word"
	ReasonImpossibleSpelling Reason = "impossible_spelling"
	ReasonUnrecognizedWord   Reason = "unrecognized_word"
	ReasonTooShort           Reason = "too_short"
	ReasonIsRootWord         Reason = "is_root_word"
)

// Sentinels matched by errors.Is against a *Rejection.
var (
	ErrDuplicateWord      = errors.New("word used already")
	ErrImpossibleSpelling = errors.New("word not possible")
	ErrUnrecognizedWord   = errors.New("word not recognized")
	ErrTooShort           = errors.New("word too short")
	ErrIsRootWord         = errors.New("word is the root word")
)

var (
	// ErrResourceLoad is returned when no root word can be selected.
	ErrResourceLoad = errors.New("game: root word source unavailable")
	// ErrNotStarted is returned by Submit on a Game that never started.
	ErrNotStarted = errors.New("game: not started")
)

// Rejection is returned by Submit when a word fails validation.
// Session state is never modified when a Rejection is returned.
type Rejection struct {
	Reason  Reason
	Word    string // normalized candidate
	Title   string
	Message string
	err     error
}

func (r *Rejection) Error() string { return r.Title + ": " + r.Message }

func (r *Rejection) Unwrap() error { return r.err }

// newRejection fills in the display text for reason.
func newRejection(reason Reason, word, root string) *Rejection {
	r := &Rejection{Reason: reason, Word: word}
	switch reason {
	case ReasonDuplicateWord:
		r.Title, r.Message, r.err = "Word used already", "Be more original!", ErrDuplicateWord
	case ReasonImpossibleSpelling:
		r.Title, r.Message, r.err = "Word not possible",
			fmt.Sprintf("You can't spell that word from '%s'!", root), ErrImpossibleSpelling
	case ReasonUnrecognizedWord:
		r.Title, r.Message, r.err = "Word not recognized", "You can't just make them up, you know!", ErrUnrecognizedWord
	case ReasonTooShort:
		r.Title, r.Message, r.err = "Word too short",
			fmt.Sprintf("Word must have at least %d letters", MinWordLength), ErrTooShort
	case ReasonIsRootWord:
		r.Title, r.Message, r.err = "Nice try...", "The answer cannot be the question", ErrIsRootWord
	}
	return r
}

// Result describes an accepted submission.
// Ignored is set (and everything else zero except Score) when the
// normalized input was empty.
type Result struct {
	Word    string // normalized word that was added
	Delta   int    // points awarded for Word
	Score   int    // running score after the submission
	Ignored bool
}

// Dictionary reports whether word is a real word in locale.
type Dictionary interface {
	IsRealWord(word, locale string) bool
}

// RootSource supplies a root word for each new session.
type RootSource interface {
	RandomRoot() (string, error)
}

// Game holds the state of a single word scramble session.
// A Game is owned by one caller and is not safe for concurrent use.
type Game struct {
	id        string   // regenerated on every Start
	rootWord  string   // lowercase, fixed until the next Start
	usedWords []string // most recent first
	score     int
	pending   string // unsubmitted input
	locale    string

	lower cases.Caser
	roots RootSource
	dict  Dictionary
}
