package scene

import (
	"errors"
	"testing"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

type setDict map[string]bool

func (d setDict) Contains(w string) bool { return d[w] }

var dict = setDict{"crane": true, "shape": true, "speed": true, "erase": true, "fjord": true, "plumb": true, "gusty": true}

func newMachine(t *testing.T) (*Machine, *int) {
	t.Helper()
	started := 0
	m := New(func() (*game.Session, error) {
		started++
		return game.New("crane", dict, game.ModeRandom)
	})
	return m, &started
}

func typeWord(t *testing.T, m *Machine, w string) {
	t.Helper()
	for _, r := range w {
		if err := m.Handle(Input{Key: KeyLetter, Letter: r}); err != nil {
			t.Fatal(err)
		}
	}
}

func press(t *testing.T, m *Machine, k Key) {
	t.Helper()
	if err := m.Handle(Input{Key: k}); err != nil {
		t.Fatal(err)
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		from Kind
		key  Key
		want Kind
	}{
		{Title, KeyStart, Playing},
		{Title, KeyEscape, Title},
		{Title, KeyEnter, Title},
		{Playing, KeyEscape, Title},
		{Playing, KeyStart, Playing},
		{Playing, KeyLetter, Playing},
	}
	for _, tt := range tests {
		if got := Next(tt.from, Input{Key: tt.key}); got != tt.want {
			t.Errorf("Next(%s, %d) = %s, want %s", tt.from, tt.key, got, tt.want)
		}
	}
}

func TestStartAndRestart(t *testing.T) {
	m, started := newMachine(t)
	if m.Scene() != Title || m.Session() != nil {
		t.Fatal("should begin on the title scene")
	}
	typeWord(t, m, "abc")
	if m.Draft() != "" {
		t.Error("typing on the title scene should do nothing")
	}

	press(t, m, KeyStart)
	if m.Scene() != Playing || m.Session() == nil || *started != 1 {
		t.Fatalf("scene=%s started=%d", m.Scene(), *started)
	}
	first := m.Session()

	press(t, m, KeyEscape)
	if m.Scene() != Title || m.Session() != nil {
		t.Fatal("escape should return to title and discard the session")
	}
	press(t, m, KeyStart)
	if *started != 2 || m.Session() == first {
		t.Error("restart should build a new session")
	}
}

func TestStartError(t *testing.T) {
	boom := errors.New("no words")
	m := New(func() (*game.Session, error) { return nil, boom })
	if err := m.Handle(Input{Key: KeyStart}); !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
	if m.Scene() != Title {
		t.Error("failed start should stay on title")
	}
}

func TestTypingAndBackspace(t *testing.T) {
	m, _ := newMachine(t)
	press(t, m, KeyStart)
	typeWord(t, m, "sh4ape!x")
	if m.Draft() != "SHAPE" {
		t.Errorf("draft = %q, want SHAPE", m.Draft())
	}
	press(t, m, KeyBackspace)
	press(t, m, KeyBackspace)
	if m.Draft() != "SHA" {
		t.Errorf("draft = %q", m.Draft())
	}
	g := m.Grid()
	if g[0][0].Letter != 'S' || g[0][3].Letter != 0 || g[0][0].Mark != "" {
		t.Errorf("grid row 0 = %+v", g[0])
	}
}

func TestRejectedGuessShowsFadingMessage(t *testing.T) {
	m, _ := newMachine(t)
	press(t, m, KeyStart)
	typeWord(t, m, "cra")
	press(t, m, KeyEnter)
	msg, ok := m.Message()
	if !ok || msg.Text != MsgLength || !msg.Fade {
		t.Fatalf("message = %+v, %v", msg, ok)
	}
	if m.Draft() != "CRA" || m.Session().Attempts() != 0 {
		t.Error("rejected guess must keep the draft and not consume an attempt")
	}

	typeWord(t, m, "zz")
	press(t, m, KeyEnter)
	if msg, _ := m.Message(); msg.Text != MsgInvalid {
		t.Errorf("message = %q", msg.Text)
	}

	for i := 0; i < 127; i++ {
		m.Tick()
	}
	if msg, ok := m.Message(); !ok || msg.Alpha != 1 {
		t.Fatalf("after 127 ticks: %+v %v", msg, ok)
	}
	m.Tick()
	if _, ok := m.Message(); ok {
		t.Error("message should be gone once alpha reaches zero")
	}
}

func TestWin(t *testing.T) {
	m, _ := newMachine(t)
	press(t, m, KeyStart)
	typeWord(t, m, "shape")
	press(t, m, KeyEnter)
	typeWord(t, m, "crane")
	press(t, m, KeyEnter)

	if m.Session().Status() != game.StatusWon {
		t.Fatalf("status = %s", m.Session().Status())
	}
	msg, ok := m.Message()
	if !ok || msg.Text != MsgWin || msg.Fade {
		t.Errorf("message = %+v", msg)
	}
	for i := 0; i < 300; i++ {
		m.Tick()
	}
	if _, ok := m.Message(); !ok {
		t.Error("win message should persist")
	}

	g := m.Grid()
	for c := 0; c < game.WordLength; c++ {
		if g[1][c].Mark != game.Correct {
			t.Errorf("row 1 col %d = %+v", c, g[1][c])
		}
	}
	if g[0][2] != (Cell{Letter: 'A', Mark: game.Correct}) {
		t.Errorf("row 0 col 2 = %+v", g[0][2])
	}

	typeWord(t, m, "shape")
	if m.Draft() != "" {
		t.Error("input after the game ends should be ignored")
	}
	press(t, m, KeyEscape)
	if m.Scene() != Title {
		t.Error("escape should still work after the game ends")
	}
}

func TestLoseOnSixthGuess(t *testing.T) {
	m, _ := newMachine(t)
	press(t, m, KeyStart)
	for _, w := range []string{"shape", "speed", "erase", "fjord", "plumb", "gusty"} {
		typeWord(t, m, w)
		press(t, m, KeyEnter)
	}
	if m.Session().Status() != game.StatusLost {
		t.Fatalf("status = %s", m.Session().Status())
	}
	if msg, _ := m.Message(); msg.Text != "The word was: CRANE" || msg.Fade {
		t.Errorf("message = %+v", msg)
	}
}

func TestWinOnSixthGuessIsAWin(t *testing.T) {
	m, _ := newMachine(t)
	press(t, m, KeyStart)
	for _, w := range []string{"shape", "speed", "erase", "fjord", "plumb", "crane"} {
		typeWord(t, m, w)
		press(t, m, KeyEnter)
	}
	if msg, _ := m.Message(); msg.Text != MsgWin {
		t.Errorf("message = %q, want win", msg.Text)
	}
}
