package console

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/daily"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func testList(t *testing.T) *words.List {
	t.Helper()
	l, err := words.New([]string{"crane"}, []string{"shape", "speed", "erase", "fjord", "plumb", "gusty"})
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func run(t *testing.T, input string, opts Options) (string, []time.Duration) {
	t.Helper()
	var out bytes.Buffer
	g := New(strings.NewReader(input), &out, testList(t), opts)
	var slept []time.Duration
	g.sleep = func(d time.Duration) { slept = append(slept, d) }
	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return ansi.ReplaceAllString(out.String(), ""), slept
}

func TestWinFirstTry(t *testing.T) {
	out, _ := run(t, "crane\nn\n", Options{})
	if got := strings.Count(out, "In the word and correct spot!"); got != 5 {
		t.Errorf("correct lines = %d\n%s", got, out)
	}
	if !strings.Contains(out, "Nice job! You guessed the correct word!") {
		t.Errorf("missing win message:\n%s", out)
	}
	if !strings.Contains(out, "The word was: CRANE") {
		t.Errorf("missing reveal:\n%s", out)
	}
}

func TestRejectionsDoNotCountAsGuesses(t *testing.T) {
	in := "abc\nzzzzz\n12345\n" + strings.Repeat("shape\n", 5) + "crane\n"
	out, _ := run(t, in, Options{})
	if strings.Count(out, "Error! Please guess a 5 letter word!") != 1 {
		t.Errorf("expected one length error:\n%s", out)
	}
	if strings.Count(out, "Error! That word is invalid!") != 2 {
		t.Errorf("expected two dictionary errors:\n%s", out)
	}
	if !strings.Contains(out, "Nice job!") {
		t.Errorf("sixth accepted guess should still win:\n%s", out)
	}
}

func TestLose(t *testing.T) {
	in := "shape\nspeed\nerase\nfjord\nplumb\ngusty\n"
	out, _ := run(t, in, Options{})
	if !strings.Contains(out, "Aw shucks! You ran out of guesses!") {
		t.Errorf("missing lose message:\n%s", out)
	}
	if strings.Count(out, "Guess the word: ") != 6 {
		t.Errorf("expected 6 prompts:\n%s", out)
	}
}

func TestFeedbackLines(t *testing.T) {
	// speed vs crane: s absent, p absent, e present, e absent, d absent
	out, _ := run(t, "speed\n", Options{})
	lines := []string{}
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, " :: ") {
			// the first line shares the row with the prompt; input is not echoed
			l = strings.TrimPrefix(l, "Guess the word: ")
			lines = append(lines, strings.TrimSpace(l))
		}
	}
	want := []string{
		"S :: Not in the word!",
		"P :: Not in the word!",
		"E :: In the word but wrong spot!",
		"E :: Not in the word!",
		"D :: Not in the word!",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestShowSecretAndDelay(t *testing.T) {
	out, slept := run(t, "crane\n", Options{ShowSecret: true, RevealDelay: 300 * time.Millisecond})
	if !strings.HasPrefix(out, "CRANE\n") {
		t.Errorf("secret not printed first:\n%s", out)
	}
	if len(slept) != 5 || slept[0] != 300*time.Millisecond {
		t.Errorf("slept = %v", slept)
	}
}

func TestPlayAgain(t *testing.T) {
	out, _ := run(t, "crane\ny\ncrane\nn\n", Options{})
	if strings.Count(out, "Nice job!") != 2 {
		t.Errorf("expected two games:\n%s", out)
	}
	if strings.Count(out, "Play again? [y/N] ") != 2 {
		t.Errorf("expected two restart prompts:\n%s", out)
	}
}

func TestDailyPlaysOnce(t *testing.T) {
	p := &daily.Picker{Salt: "x", Now: func() time.Time { return time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC) }}
	out, _ := run(t, "crane\ny\n", Options{Daily: p})
	if !strings.Contains(out, "Daily puzzle 2025-01-02") {
		t.Errorf("missing daily header:\n%s", out)
	}
	if strings.Contains(out, "Play again?") {
		t.Errorf("daily mode should not offer a restart:\n%s", out)
	}
}

func TestEOFEndsCleanly(t *testing.T) {
	out, _ := run(t, "shape\n", Options{})
	if strings.Contains(out, "Aw shucks") || strings.Contains(out, "Nice job") {
		t.Errorf("unfinished game should not print a result:\n%s", out)
	}
}
