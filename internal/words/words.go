// internal/words/words.go
//
// Provides word list management for the game engine.
//
// Responsibilities:
//   - Load the root word list and the dictionary from files or fall back to
//     the embedded defaults in the assets package.
//   - Pick random root words for new sessions.
//   - Report list sizes for startup logging.
//
// Word Lists:
//   - "start": candidate root words, one per line.
//   - "dictionary": words recognized as real, tagged with one language.
//
// Load behavior:
//   1. Sources.StartFile set → root words come from that file, else embedded.
//   2. Sources.DictFile set → dictionary comes from that file, else embedded.
//   3. Root words are always added to the dictionary as well.
//
// Constraints:
//   • Words must be letters only; other lines are dropped.
//   • Lists are lowercased with the dictionary locale's case rules.
//   • An empty root list is a load error.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/robalobadob/wordscramble/assets"
)

// DefaultLocale is the language of the embedded dictionary.
const DefaultLocale = "en"

// ErrNoRoots is returned when the root word list has no usable words.
var ErrNoRoots = errors.New("words: root word list is empty")

// Sources names optional files that replace the embedded lists.
type Sources struct {
	StartFile  string // root words; empty means embedded start.txt
	DictFile   string // dictionary; empty means embedded dictionary.txt
	DictLocale string // language of the dictionary; empty means DefaultLocale
}

// Lists holds the loaded root words and dictionary.
// It is read-only after Load and safe for concurrent use.
type Lists struct {
	roots []string
	dict  *Dictionary
}

// Load reads the word lists described by src.
func Load(src Sources) (*Lists, error) {
	locale := src.DictLocale
	if locale == "" {
		locale = DefaultLocale
	}

	tag, _, ok := parseLocale(locale)
	if !ok {
		return nil, fmt.Errorf("words: unsupported locale %q", locale)
	}
	lower := cases.Lower(tag)

	roots, err := loadList(src.StartFile, assets.StartList, lower)
	if err != nil {
		return nil, fmt.Errorf("words: load root words: %w", err)
	}
	if len(roots) == 0 {
		return nil, ErrNoRoots
	}

	known, err := loadList(src.DictFile, assets.DictionaryList, lower)
	if err != nil {
		return nil, fmt.Errorf("words: load dictionary: %w", err)
	}

	dict := NewDictionary()
	if err := dict.Add(locale, known...); err != nil {
		return nil, err
	}
	if err := dict.Add(locale, roots...); err != nil {
		return nil, err
	}
	return &Lists{roots: roots, dict: dict}, nil
}

// loadList reads path if set, otherwise calls embedded, and lowercases each
// word with lower.
func loadList(path string, embedded func() ([]string, error), lower cases.Caser) ([]string, error) {
	var (
		lines []string
		err   error
	)
	if path != "" {
		lines, err = readWordFile(path)
	} else {
		lines, err = embedded()
	}
	if err != nil {
		return nil, err
	}
	out := lines[:0]
	for _, w := range lines {
		w = lower.String(w)
		if isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// isAlpha reports whether s is non-empty and all letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// RandomRoot returns a cryptographically random root word.
func (l *Lists) RandomRoot() (string, error) {
	if len(l.roots) == 0 {
		return "", ErrNoRoots
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.roots))))
	if err != nil {
		return "", fmt.Errorf("words: pick root: %w", err)
	}
	return l.roots[n.Int64()], nil
}

// Roots returns a copy of the root word list.
func (l *Lists) Roots() []string {
	return append([]string(nil), l.roots...)
}

// Dictionary returns the loaded dictionary.
func (l *Lists) Dictionary() *Dictionary { return l.dict }

// Stats returns counts of loaded words: (roots, dictionary).
func (l *Lists) Stats() (rootCount int, dictCount int) {
	return len(l.roots), l.dict.Len()
}
