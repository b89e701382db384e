// Package scene holds the GUI's screen state: which scene is showing, the
// letters typed so far and the status message. It has no rendering code, so
// the GUI layer only translates key presses into Inputs and draws what the
// Machine reports.
package scene

import (
	"strings"
	"unicode"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

// Kind identifies the active scene.
type Kind int

const (
	Title Kind = iota
	Playing
)

func (k Kind) String() string {
	if k == Playing {
		return "playing"
	}
	return "title"
}

// Key is a logical key press.
type Key int

const (
	KeyStart Key = iota + 1 // space on the title screen
	KeyEscape
	KeyBackspace
	KeyEnter
	KeyLetter
)

type Input struct {
	Key    Key
	Letter rune // set for KeyLetter
}

// Next is the scene transition function.
func Next(k Kind, in Input) Kind {
	switch {
	case k == Title && in.Key == KeyStart:
		return Playing
	case k == Playing && in.Key == KeyEscape:
		return Title
	}
	return k
}

const (
	MsgLength  = "Word must be 5 letters!"
	MsgInvalid = "Invalid word!"
	MsgWin     = "You got it!"
)

// MsgLose is the message shown after the last failed guess.
func MsgLose(secret string) string { return "The word was: " + strings.ToUpper(secret) }

const fadeStep = 2

// Message is the line shown under the grid. Fading messages lose fadeStep
// alpha per tick and disappear at zero.
type Message struct {
	Text  string
	Alpha int // 0..255
	Fade  bool
}

// Cell is one square of the grid.
type Cell struct {
	Letter rune              // uppercase, 0 when empty
	Mark   game.LetterResult // empty until the row is scored
}

// Grid is the board: one row per attempt.
type Grid [game.MaxAttempts][game.WordLength]Cell

// Machine owns the current session and everything the GUI needs to draw.
type Machine struct {
	kind       Kind
	newSession func() (*game.Session, error)
	session    *game.Session
	draft      []rune
	message    *Message
}

// New returns a Machine on the title scene. newSession is called each time a
// game starts.
func New(newSession func() (*game.Session, error)) *Machine {
	return &Machine{kind: Title, newSession: newSession}
}

func (m *Machine) Scene() Kind { return m.kind }

func (m *Machine) Session() *game.Session { return m.session }

// Draft is the uppercase letters typed on the current row.
func (m *Machine) Draft() string { return string(m.draft) }

// Message returns the current message, if any.
func (m *Machine) Message() (Message, bool) {
	if m.message == nil {
		return Message{}, false
	}
	return *m.message, true
}

// Handle applies one input. The only error is a failure to start a session.
func (m *Machine) Handle(in Input) error {
	next := Next(m.kind, in)
	if next != m.kind {
		return m.enter(next)
	}
	if m.kind != Playing || m.session == nil || m.session.Status().Over() {
		return nil
	}

	switch in.Key {
	case KeyBackspace:
		if len(m.draft) > 0 {
			m.draft = m.draft[:len(m.draft)-1]
		}
	case KeyLetter:
		if len(m.draft) < game.WordLength && in.Letter < unicode.MaxASCII && unicode.IsLetter(in.Letter) {
			m.draft = append(m.draft, unicode.ToUpper(in.Letter))
		}
	case KeyEnter:
		m.submit()
	}
	return nil
}

func (m *Machine) enter(k Kind) error {
	m.draft = m.draft[:0]
	m.message = nil
	if k == Playing {
		s, err := m.newSession()
		if err != nil {
			return err
		}
		m.session = s
	} else {
		m.session = nil
	}
	m.kind = k
	return nil
}

func (m *Machine) submit() {
	_, err := m.session.SubmitGuess(string(m.draft))
	if reason, ok := game.Rejection(err); ok {
		text := MsgInvalid
		if reason == game.WrongLength {
			text = MsgLength
		}
		m.message = &Message{Text: text, Alpha: 255, Fade: true}
		return
	}
	if err != nil {
		return
	}
	m.draft = m.draft[:0]
	switch m.session.Status() {
	case game.StatusWon:
		m.message = &Message{Text: MsgWin, Alpha: 255}
	case game.StatusLost:
		m.message = &Message{Text: MsgLose(m.session.Secret()), Alpha: 255}
	}
}

// Tick advances cosmetic state by one frame.
func (m *Machine) Tick() {
	if m.message == nil || !m.message.Fade {
		return
	}
	m.message.Alpha -= fadeStep
	if m.message.Alpha <= 0 {
		m.message = nil
	}
}

// Grid returns the board: scored rows from history, then the draft row.
func (m *Machine) Grid() Grid {
	var g Grid
	if m.session == nil {
		return g
	}
	history := m.session.History()
	for r, turn := range history {
		for c := 0; c < game.WordLength; c++ {
			g[r][c] = Cell{Letter: unicode.ToUpper(rune(turn.Guess[c])), Mark: turn.Result[c]}
		}
	}
	if row := len(history); row < game.MaxAttempts && !m.session.Status().Over() {
		for c, r := range m.draft {
			g[row][c].Letter = r
		}
	}
	return g
}
