package game

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRoots hands out its words in order, then repeats the last one.
type fixedRoots struct {
	words []string
	err   error
	calls int
}

func (f *fixedRoots) RandomRoot() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	i := f.calls
	if i >= len(f.words) {
		i = len(f.words) - 1
	}
	f.calls++
	return f.words[i], nil
}

// setDict recognizes a fixed set of words in any locale.
type setDict map[string]bool

func (d setDict) IsRealWord(word, _ string) bool { return d[word] }

var silkwormDict = setDict{
	"silk": true, "worm": true, "worms": true, "milk": true, "ilk": true,
	"sk": true, "silkworm": true, "skim": true, "mow": true, "owl": true,
	"worms9": true,
}

func newSilkworm(t *testing.T) *Game {
	t.Helper()
	g, err := New(&fixedRoots{words: []string{"silkworm"}}, silkwormDict)
	require.NoError(t, err)
	require.Equal(t, "silkworm", g.RootWord())
	return g
}

func TestGame_Submit_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		before    []string
		input     string
		wantErr   error
		wantDelta int
	}{
		{name: "four letters", input: "silk", wantDelta: 50},
		{name: "five letters", input: "worms", wantDelta: 50},
		{name: "three letters", input: "ilk", wantDelta: 25},
		{name: "root word", input: "silkworm", wantErr: ErrIsRootWord},
		{name: "duplicate", before: []string{"silk"}, input: "silk", wantErr: ErrDuplicateWord},
		{name: "duplicate is case-insensitive", before: []string{"silk"}, input: "  SILK ", wantErr: ErrDuplicateWord},
		{name: "too short", input: "sk", wantErr: ErrTooShort},
		{name: "letter used twice", input: "skills", wantErr: ErrImpossibleSpelling},
		{name: "letter not in root", input: "worms9", wantErr: ErrImpossibleSpelling},
		{name: "not a word", input: "wormsil", wantErr: ErrUnrecognizedWord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newSilkworm(t)
			for _, w := range tt.before {
				_, err := g.Submit(w)
				require.NoError(t, err)
			}
			used, score := g.UsedWords(), g.Score()

			res, err := g.Submit(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, used, g.UsedWords())
				assert.Equal(t, score, g.Score())
				assert.Equal(t, score, res.Score)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDelta, res.Delta)
			assert.Equal(t, score+tt.wantDelta, g.Score())
			assert.Equal(t, res.Word, g.UsedWords()[0])
		})
	}
}

func TestGame_Submit_UnrecognizedBeforeTooShort(t *testing.T) {
	g, err := New(&fixedRoots{words: []string{"wormsnine9"}}, silkwormDict)
	require.NoError(t, err)

	_, err = g.Submit("worms9")
	require.NoError(t, err)

	_, err = g.Submit("nine")
	assert.ErrorIs(t, err, ErrUnrecognizedWord)

	// "mw" is spellable but not a word: the dictionary check runs first.
	_, err = g.Submit("mw")
	assert.ErrorIs(t, err, ErrUnrecognizedWord)
}

func TestGame_Submit_Rejection(t *testing.T) {
	g := newSilkworm(t)

	_, err := g.Submit("wolf")
	var rej *Rejection
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, ReasonImpossibleSpelling, rej.Reason)
	assert.Equal(t, "wolf", rej.Word)
	assert.Equal(t, "Word not possible", rej.Title)
	assert.Equal(t, "You can't spell that word from 'silkworm'!", rej.Message)

	_, err = g.Submit("silkworm")
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, "Nice try...", rej.Title)
	assert.Equal(t, "The answer cannot be the question", rej.Message)
}

func TestGame_Submit_IgnoresBlankInput(t *testing.T) {
	g := newSilkworm(t)
	_, err := g.Submit("silk")
	require.NoError(t, err)

	for _, in := range []string{"", "   ", "\t\n"} {
		res, err := g.Submit(in)
		require.NoError(t, err)
		assert.True(t, res.Ignored)
		assert.Equal(t, 50, res.Score)
	}
	assert.Equal(t, []string{"silk"}, g.UsedWords())
}

func TestGame_Submit_MostRecentFirst(t *testing.T) {
	g := newSilkworm(t)
	for _, w := range []string{"silk", "worm", "owl"} {
		_, err := g.Submit(w)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"owl", "worm", "silk"}, g.UsedWords())
	assert.Equal(t, 50+50+25, g.Score())
}

func TestGame_UsedWordsInvariants(t *testing.T) {
	g := newSilkworm(t)
	inputs := []string{"silk", "SILK", "worms", "sk", "silkworm", "milk", "wolf", "ilk", "worm", "worm", "skim", "mow"}
	for _, in := range inputs {
		_, _ = g.Submit(in)
	}

	seen := map[string]bool{}
	for _, w := range g.UsedWords() {
		assert.False(t, seen[w], "duplicate %q", w)
		seen[w] = true
		assert.NotEqual(t, g.RootWord(), w)
		assert.GreaterOrEqual(t, utf8.RuneCountInString(w), MinWordLength)
		assert.True(t, CanSpell(w, g.RootWord()), w)
	}
}

func TestGame_UsedWordsReturnsCopy(t *testing.T) {
	g := newSilkworm(t)
	_, err := g.Submit("silk")
	require.NoError(t, err)

	used := g.UsedWords()
	used[0] = "silkworm"
	assert.Equal(t, []string{"silk"}, g.UsedWords())
}

func TestGame_Pending(t *testing.T) {
	g := newSilkworm(t)

	g.SetPending("wolf")
	_, err := g.SubmitPending()
	assert.ErrorIs(t, err, ErrImpossibleSpelling)
	assert.Equal(t, "wolf", g.Pending())

	g.SetPending(" Worm ")
	res, err := g.SubmitPending()
	require.NoError(t, err)
	assert.Equal(t, "worm", res.Word)
	assert.Empty(t, g.Pending())
}

func TestGame_Start_Resets(t *testing.T) {
	roots := &fixedRoots{words: []string{"silkworm", "absolute"}}
	g, err := New(roots, silkwormDict)
	require.NoError(t, err)
	firstID := g.ID()

	_, err = g.Submit("silk")
	require.NoError(t, err)
	g.SetPending("wor")

	require.NoError(t, g.Start())
	assert.Equal(t, "absolute", g.RootWord())
	assert.Zero(t, g.Score())
	assert.Empty(t, g.UsedWords())
	assert.Empty(t, g.Pending())
	assert.NotEqual(t, firstID, g.ID())
}

func TestGame_Start_FailureKeepsSession(t *testing.T) {
	roots := &fixedRoots{words: []string{"silkworm"}}
	g, err := New(roots, silkwormDict)
	require.NoError(t, err)
	_, err = g.Submit("silk")
	require.NoError(t, err)

	roots.err = errors.New("disk gone")
	err = g.Start()
	assert.ErrorIs(t, err, ErrResourceLoad)
	assert.Equal(t, "silkworm", g.RootWord())
	assert.Equal(t, []string{"silk"}, g.UsedWords())
	assert.Equal(t, 50, g.Score())
}

func TestNew_ResourceLoadFailure(t *testing.T) {
	_, err := New(&fixedRoots{err: errors.New("missing start.txt")}, silkwormDict)
	assert.ErrorIs(t, err, ErrResourceLoad)
	assert.ErrorContains(t, err, "missing start.txt")

	_, err = New(&fixedRoots{words: []string{"   "}}, silkwormDict)
	assert.ErrorIs(t, err, ErrResourceLoad)

	_, err = New(nil, silkwormDict)
	assert.ErrorIs(t, err, ErrResourceLoad)
}

func TestGame_Submit_NotStarted(t *testing.T) {
	var g Game
	_, err := g.Submit("silk")
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestGame_NilDictionaryRecognizesNothing(t *testing.T) {
	g, err := New(&fixedRoots{words: []string{"silkworm"}}, nil)
	require.NoError(t, err)
	_, err = g.Submit("silk")
	assert.ErrorIs(t, err, ErrUnrecognizedWord)
}

// localeDict records the locale it was asked about.
type localeDict struct{ got string }

func (d *localeDict) IsRealWord(_, locale string) bool {
	d.got = locale
	return true
}

func TestGame_Locale(t *testing.T) {
	d := &localeDict{}
	g, err := New(&fixedRoots{words: []string{"SILKWORM"}}, d, WithLocale("en-GB"))
	require.NoError(t, err)
	assert.Equal(t, "silkworm", g.RootWord())
	assert.Equal(t, "en-GB", g.Locale())

	_, err = g.Submit("Silk")
	require.NoError(t, err)
	assert.Equal(t, "en-GB", d.got)

	g, err = New(&fixedRoots{words: []string{"silkworm"}}, d, WithLocale(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultLocale, g.Locale())
}

func TestCanSpell(t *testing.T) {
	tests := []struct {
		word, root string
		want       bool
	}{
		{"silk", "silkworm", true},
		{"worms", "silkworm", true},
		{"silkworm", "silkworm", true},
		{"mirrors", "silkworm", false},
		{"wool", "silkworm", false},
		{"", "silkworm", true},
		{"tee", "teeth", true},
		{"eee", "teeth", false},
		{"ñu", "añublo", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanSpell(tt.word, tt.root), "%s from %s", tt.word, tt.root)
	}
}

func TestScoreFor(t *testing.T) {
	want := map[int]int{3: 25, 4: 50, 5: 50, 6: 75, 7: 75, 8: 100, 9: 75, 12: 75}
	for n, pts := range want {
		assert.Equal(t, pts, ScoreFor(n), "length %d", n)
		assert.Equal(t, ScoreFor(n), ScoreFor(n))
	}
}
