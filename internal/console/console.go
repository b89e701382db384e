// Package console runs the game as a line-based terminal program: one prompt
// per guess and one feedback line per letter.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/daily"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

const (
	msgPrompt      = "\nGuess the word: "
	msgWrongLength = "Error! Please guess a 5 letter word!"
	msgInvalid     = "Error! That word is invalid!"
	msgWon         = "\nNice job! You guessed the correct word!"
	msgLost        = "\nAw shucks! You ran out of guesses!"
	msgPlayAgain   = "\nPlay again? [y/N] "
)

var feedback = map[game.LetterResult]string{
	game.Correct: "In the word and correct spot!",
	game.Present: "In the word but wrong spot!",
	game.Absent:  "Not in the word!",
}

type Options struct {
	ShowSecret  bool          // print the secret when a session starts
	RevealDelay time.Duration // pause after each feedback line
	Daily       *daily.Picker // non-nil: play the word of the day, once
}

// Game wires a word list to an input and an output stream.
type Game struct {
	in    *bufio.Scanner
	out   io.Writer
	words *words.List
	opts  Options
	tiles map[game.LetterResult]lipgloss.Style
	sleep func(time.Duration)
}

func New(in io.Reader, out io.Writer, list *words.List, opts Options) *Game {
	r := lipgloss.NewRenderer(out)
	tile := func(bg string) lipgloss.Style {
		return r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color(bg))
	}
	return &Game{
		in:    bufio.NewScanner(in),
		out:   out,
		words: list,
		opts:  opts,
		tiles: map[game.LetterResult]lipgloss.Style{
			game.Correct: tile("#538D4E"),
			game.Present: tile("#B59F3B"),
			game.Absent:  tile("#3A3A3C"),
		},
		sleep: time.Sleep,
	}
}

// Run plays sessions until the player declines a restart, input ends or ctx
// is cancelled. End of input is not an error.
func (g *Game) Run(ctx context.Context) error {
	for {
		sess, err := g.newSession()
		if err != nil {
			return err
		}
		log.Debug().Str("gameId", sess.ID).Str("mode", string(sess.Mode)).Msg("session started")

		if err := g.play(ctx, sess); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if g.opts.Daily != nil {
			return nil
		}
		again, err := g.ask(msgPlayAgain)
		if err != nil || !strings.HasPrefix(strings.ToLower(again), "y") {
			return ignoreEOF(err)
		}
	}
}

func (g *Game) newSession() (*game.Session, error) {
	if g.opts.Daily != nil {
		date, _, word := g.opts.Daily.Pick(g.words.Answers())
		fmt.Fprintf(g.out, "Daily puzzle %s\n", date)
		return game.New(word, g.words, game.ModeDaily)
	}
	return game.Start(g.words)
}

// play runs one session to completion.
func (g *Game) play(ctx context.Context, sess *game.Session) error {
	if g.opts.ShowSecret {
		fmt.Fprintln(g.out, strings.ToUpper(sess.Secret()))
	}

	for !sess.Status().Over() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := g.ask(msgPrompt)
		if err != nil {
			return err
		}

		res, err := sess.SubmitGuess(line)
		if reason, ok := game.Rejection(err); ok {
			if reason == game.WrongLength {
				fmt.Fprintln(g.out, msgWrongLength)
			} else {
				fmt.Fprintln(g.out, msgInvalid)
			}
			continue
		}
		if err != nil {
			return err
		}

		guess := strings.ToUpper(game.Normalize(line))
		for i, mark := range res {
			fmt.Fprintf(g.out, "%s :: %s\n", g.tiles[mark].Render(guess[i:i+1]), feedback[mark])
			if g.opts.RevealDelay > 0 {
				g.sleep(g.opts.RevealDelay)
			}
		}
	}

	if sess.Status() == game.StatusWon {
		fmt.Fprintln(g.out, msgWon)
	} else {
		fmt.Fprintln(g.out, msgLost)
	}
	fmt.Fprintf(g.out, "The word was: %s\n", strings.ToUpper(sess.Secret()))
	log.Debug().Str("gameId", sess.ID).Str("state", string(sess.Status())).Int("attempts", sess.Attempts()).Msg("session finished")
	return nil
}

// ask prints prompt and reads one line. Returns io.EOF when input ends.
func (g *Game) ask(prompt string) (string, error) {
	fmt.Fprint(g.out, prompt)
	if !g.in.Scan() {
		if err := g.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return g.in.Text(), nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
