package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed start.txt dictionary.txt
var FS embed.FS

// ReadLines returns the non-empty, non-comment lines of r, trimmed. Case is
// kept; callers lowercase for their locale. It is shared by the embedded
// lists and file overrides.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// StartList is the embedded root word list.
func StartList() ([]string, error) {
	return readLines("start.txt")
}

// DictionaryList is the embedded English word set.
func DictionaryList() ([]string, error) {
	return readLines("dictionary.txt")
}
