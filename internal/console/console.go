// internal/console/console.go
//
// Terminal front end for a word scramble session.
// Responsibilities:
//   - Read one line at a time and route it: commands (":new", ":help",
//     ":quit") or a word submission.
//   - Render the board: root word title, accepted words with their letter
//     counts, and the score readout.
//   - Render rejections as an error box with the rejection's title and
//     message.
//
// Notes:
//   - Input is read on a separate goroutine so Run returns as soon as the
//     context is cancelled, even while waiting for a line.
//   - All output goes to the writer given to New; pterm is only used to
//     build strings.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/game"
)

const (
	cmdNew  = ":new"
	cmdHelp = ":help"
	cmdQuit = ":quit"
)

// errQuit stops Run without reporting an error.
var errQuit = errors.New("quit")

// Console binds a game.Game to a line-oriented terminal.
type Console struct {
	game *game.Game
	in   io.Reader
	out  io.Writer
}

// New constructs a Console for g reading from in and writing to out.
func New(g *game.Game, in io.Reader, out io.Writer) *Console {
	return &Console{game: g, in: in, out: out}
}

// Run shows the board and processes input until ":quit", EOF, or ctx is
// cancelled. It returns ctx.Err() on cancellation and nil on a normal exit.
// A reader blocked inside in.Read is only released when in returns.
func (c *Console) Run(ctx context.Context) error {
	// Cancelled on every return so the reader stops sending.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- sc.Err()
	}()

	c.print(pterm.DefaultBox.WithTitle(pterm.LightCyan("WORD SCRAMBLE")).WithTitleTopCenter().
		Sprint("Make words from the letters of the root word.\nType "+cmdHelp+" for commands."))
	c.renderBoard()

	for {
		c.prompt()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil && ctx.Err() == nil {
					return fmt.Errorf("read input: %w", err)
				}
				return ctx.Err()
			}
			if err := c.handle(line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		}
	}
}

// handle routes one input line.
func (c *Console) handle(line string) error {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case cmdQuit, ":q":
		c.print(pterm.Info.Sprintfln("Final score: %d", c.game.Score()))
		return errQuit
	case cmdNew:
		return c.handleNewGame()
	case cmdHelp:
		c.renderHelp()
		return nil
	}
	return c.handleSubmit(line)
}

// handleNewGame resets the session. A failed reset keeps the old session
// on screen.
func (c *Console) handleNewGame() error {
	prev := c.game.ID()
	if err := c.game.Start(); err != nil {
		log.Error().Err(err).Str("session", prev).Msg("start new game")
		c.print(pterm.Error.Sprintfln("Could not start a new game: %v", err))
		return nil
	}
	log.Info().
		Str("session", c.game.ID()).
		Str("previous", prev).
		Str("root", c.game.RootWord()).
		Msg("new game")
	c.renderBoard()
	return nil
}

// handleSubmit feeds line through the pending input and submits it.
func (c *Console) handleSubmit(line string) error {
	c.game.SetPending(line)
	res, err := c.game.SubmitPending()
	if err != nil {
		var rej *game.Rejection
		if !errors.As(err, &rej) {
			return err
		}
		log.Debug().
			Str("session", c.game.ID()).
			Str("word", rej.Word).
			Str("reason", string(rej.Reason)).
			Msg("word rejected")
		c.renderRejection(rej)
		return nil
	}
	if res.Ignored {
		return nil
	}
	log.Info().
		Str("session", c.game.ID()).
		Str("word", res.Word).
		Int("delta", res.Delta).
		Int("score", res.Score).
		Msg("word accepted")
	c.print(pterm.Success.Sprintfln("%s +%d", res.Word, res.Delta))
	c.renderBoard()
	return nil
}

// renderBoard draws the root word, used words and score.
func (c *Console) renderBoard() {
	used := c.game.UsedWords()
	var body string
	if len(used) == 0 {
		body = pterm.Gray("No words yet.")
	} else {
		rows := make([]string, len(used))
		for i, w := range used {
			rows[i] = fmt.Sprintf("(%d) %s", utf8.RuneCountInString(w), w)
		}
		body = strings.Join(rows, "\n")
	}
	body = padLines(body, utf8.RuneCountInString(c.game.RootWord()))
	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	c.print(box.WithTitle(pterm.LightYellow(c.game.RootWord())).WithTitleTopCenter().Sprint(body))
	c.print(pterm.NewStyle(pterm.BgBlue, pterm.FgWhite).Sprintf(" Score: %d ", c.game.Score()) + "\n")
}

// renderRejection draws the error dialog for rej.
func (c *Console) renderRejection(rej *game.Rejection) {
	box := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2)
	c.print(box.WithTitle(pterm.LightRed(rej.Title)).WithTitleTopCenter().Sprint(rej.Message))
}

func (c *Console) renderHelp() {
	c.print(pterm.Sprintfln("%s  start a new game\n%s  show this help\n%s  quit\nAnything else is submitted as a word.",
		pterm.LightCyan(cmdNew), pterm.LightCyan(cmdHelp), pterm.LightCyan(cmdQuit)))
}

// padLines right-pads each line of s to at least width runes so a box is
// never narrower than its title.
func padLines(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if n := utf8.RuneCountInString(pterm.RemoveColorFromString(l)); n < width {
			lines[i] = l + strings.Repeat(" ", width-n)
		}
	}
	return strings.Join(lines, "\n")
}

func (c *Console) prompt() {
	fmt.Fprint(c.out, "> ")
}

func (c *Console) print(s string) {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	fmt.Fprint(c.out, s)
}
