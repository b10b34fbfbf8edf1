package words

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Dictionary is an in-memory word set per base language.
// Lookups for "en", "en-GB" and "en-US" share one set.
type Dictionary struct {
	sets map[language.Base]map[string]struct{}
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{sets: make(map[language.Base]map[string]struct{})}
}

// Add records words as real in locale. Words are lowercased with locale's
// case rules, the same rules a game session applies to input.
func (d *Dictionary) Add(locale string, words ...string) error {
	tag, base, ok := parseLocale(locale)
	if !ok {
		return fmt.Errorf("words: unsupported locale %q", locale)
	}
	lower := cases.Lower(tag)
	set := d.sets[base]
	if set == nil {
		set = make(map[string]struct{}, len(words))
		d.sets[base] = set
	}
	for _, w := range words {
		set[lower.String(w)] = struct{}{}
	}
	return nil
}

// IsRealWord reports whether word is known for locale's language.
// An unparseable locale recognizes nothing.
func (d *Dictionary) IsRealWord(word, locale string) bool {
	base, ok := baseOf(locale)
	if !ok {
		return false
	}
	_, found := d.sets[base][word]
	return found
}

// Len returns the number of words across all languages.
func (d *Dictionary) Len() int {
	n := 0
	for _, set := range d.sets {
		n += len(set)
	}
	return n
}

func baseOf(locale string) (language.Base, bool) {
	_, base, ok := parseLocale(locale)
	return base, ok
}

func parseLocale(locale string) (language.Tag, language.Base, bool) {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, language.Base{}, false
	}
	base, conf := tag.Base()
	return tag, base, conf != language.No
}
