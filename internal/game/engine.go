// internal/game/engine.go
//
// Core game engine for a single word scramble session.
// Responsibilities:
//   - Start sessions with a random root word (Start resets all state).
//   - Normalize and validate submissions in a fixed order.
//   - Score accepted words by length.
//
// Notes:
//   - Root words come from a RootSource, real-word checks from a Dictionary;
//     both are injected so the engine never touches files or services.
//   - Letters are compared as runes after locale-aware lowercasing.
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
	// DefaultLocale is used when no WithLocale option is given.
	DefaultLocale = "en"
	// MinWordLength is the shortest word that can be accepted.
	MinWordLength = 3
)

// Option configures a Game at construction time.
type Option func(*Game)

// WithLocale sets the BCP 47 locale passed to the Dictionary and used for
// lowercasing input. An empty locale keeps DefaultLocale.
func WithLocale(locale string) Option {
	return func(g *Game) {
		if locale != "" {
			g.locale = locale
		}
	}
}

// New constructs a Game and starts its first session.
// It fails with ErrResourceLoad if roots cannot supply a root word.
func New(roots RootSource, dict Dictionary, opts ...Option) (*Game, error) {
	g := &Game{roots: roots, dict: dict, locale: DefaultLocale}
	for _, opt := range opts {
		opt(g)
	}
	g.lower = cases.Lower(language.Make(g.locale))
	if err := g.Start(); err != nil {
		return nil, err
	}
	return g, nil
}

// Start begins a new session: a fresh root word is selected, then score,
// used words and pending input are cleared. If no root word can be
// selected the previous session is left untouched.
func (g *Game) Start() error {
	if g.roots == nil {
		return ErrResourceLoad
	}
	root, err := g.roots.RandomRoot()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResourceLoad, err)
	}
	root = g.Normalize(root)
	if root == "" {
		return fmt.Errorf("%w: empty root word", ErrResourceLoad)
	}

	g.id = uuid.NewString()
	g.rootWord = root
	g.usedWords = []string{}
	g.score = 0
	g.pending = ""
	return nil
}

// Submit validates raw against the session and applies it on success.
//
// Validation rules, in order (the first failure wins):
//   - not already used
//   - spellable from the root word's letters
//   - recognized by the dictionary
//   - at least MinWordLength letters
//   - not the root word itself
//
// Empty input (after trimming) is ignored. Rejections are *Rejection.
func (g *Game) Submit(raw string) (Result, error) {
	if g.rootWord == "" {
		return Result{}, ErrNotStarted
	}
	word := g.Normalize(raw)
	if word == "" {
		return Result{Score: g.score, Ignored: true}, nil
	}
	if rej := g.validate(word); rej != nil {
		return Result{Score: g.score}, rej
	}

	delta := ScoreFor(utf8.RuneCountInString(word))
	g.usedWords = append([]string{word}, g.usedWords...)
	g.score += delta
	g.pending = ""
	return Result{Word: word, Delta: delta, Score: g.score}, nil
}

// SetPending replaces the unsubmitted input text.
func (g *Game) SetPending(text string) { g.pending = text }

// SubmitPending submits the pending input. The input is kept when the
// submission is rejected so the player can edit it.
func (g *Game) SubmitPending() (Result, error) { return g.Submit(g.pending) }

// Normalize trims surrounding whitespace and lowercases s for the
// session locale.
func (g *Game) Normalize(s string) string {
	return g.lower.String(strings.TrimSpace(s))
}

// validate returns the first failing rule for word, or nil.
func (g *Game) validate(word string) *Rejection {
	switch {
	case !g.isOriginal(word):
		return newRejection(ReasonDuplicateWord, word, g.rootWord)
	case !CanSpell(word, g.rootWord):
		return newRejection(ReasonImpossibleSpelling, word, g.rootWord)
	case !g.isReal(word):
		return newRejection(ReasonUnrecognizedWord, word, g.rootWord)
	case utf8.RuneCountInString(word) < MinWordLength:
		return newRejection(ReasonTooShort, word, g.rootWord)
	case word == g.rootWord:
		return newRejection(ReasonIsRootWord, word, g.rootWord)
	}
	return nil
}

func (g *Game) isOriginal(word string) bool {
	for _, w := range g.usedWords {
		if w == word {
			return false
		}
	}
	return true
}

func (g *Game) isReal(word string) bool {
	return g.dict != nil && g.dict.IsRealWord(word, g.locale)
}

// CanSpell reports whether every letter of word is available in root,
// each letter of root being usable at most once.
func CanSpell(word, root string) bool {
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

// ScoreFor returns the points for an accepted word of length n.
// Eight letters is checked first, so it beats the longer-than-five band.
func ScoreFor(n int) int {
	switch {
	case n == 8:
		return 100
	case n > 5:
		return 75
	case n > 3:
		return 50
	default:
		return 25
	}
}

// ID identifies the current session; it changes on every Start.
func (g *Game) ID() string { return g.id }

// RootWord returns the current root word.
func (g *Game) RootWord() string { return g.rootWord }

// UsedWords returns a copy of the accepted words, most recent first.
func (g *Game) UsedWords() []string {
	out := make([]string, len(g.usedWords))
	copy(out, g.usedWords)
	return out
}

// Score returns the running score.
func (g *Game) Score() int { return g.score }

// Pending returns the unsubmitted input text.
func (g *Game) Pending() string { return g.pending }

// Locale returns the session locale.
func (g *Game) Locale() string { return g.locale }
