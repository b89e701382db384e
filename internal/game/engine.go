// internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Create sessions with a fixed secret (6 attempts x 5 letters).
//   - Validate and apply guesses (length, dictionary).
//   - Score guesses using the two-pass, duplicate-safe algorithm.
//   - Track state transitions: in_progress → won/lost.
//
// Notes:
//   - Word lists are supplied by the caller through the Dictionary and
//     WordSource interfaces; this package holds no global state.
//   - Rejections are returned as error values, never panics.
package game

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Dictionary reports whether a normalised word is a legal guess.
type Dictionary interface {
	Contains(word string) bool
}

// WordSource is a dictionary that can also draw a random secret.
type WordSource interface {
	Dictionary
	RandomAnswer() string
}

var (
	ErrWrongLength     = errors.New("word must be 5 letters")
	ErrNotInDictionary = errors.New("not in word list")
	ErrGameOver        = errors.New("game finished")
	ErrInvalidSecret   = errors.New("secret must be 5 letters a-z")
)

// RejectionReason names why a guess was refused without consuming an attempt.
type RejectionReason string

const (
	WrongLength     RejectionReason = "wrong_length"
	NotInDictionary RejectionReason = "not_in_dictionary"
)

// Rejection maps a SubmitGuess error to its RejectionReason.
// ok is false for nil and for errors that are not rejections (e.g. ErrGameOver).
func Rejection(err error) (reason RejectionReason, ok bool) {
	switch {
	case errors.Is(err, ErrWrongLength):
		return WrongLength, true
	case errors.Is(err, ErrNotInDictionary):
		return NotInDictionary, true
	}
	return "", false
}

// New constructs a session for the given secret.
func New(secret string, dict Dictionary, mode Mode) (*Session, error) {
	if dict == nil {
		return nil, errors.New("game: nil dictionary")
	}
	secret = Normalize(secret)
	if len(secret) != WordLength || !isAlpha(secret) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSecret, secret)
	}
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		Mode:      mode,
		StartedAt: now,
		UpdatedAt: now,
		secret:    secret,
		dict:      dict,
		history:   []Turn{},
		status:    StatusInProgress,
	}, nil
}

// Start constructs a session with a random secret drawn from src.
func Start(src WordSource) (*Session, error) {
	return New(src.RandomAnswer(), src, ModeRandom)
}

// Restore rebuilds a session from a Record by replaying its guesses through
// the scorer. Guesses are not re-checked against dict; they were accepted
// when first submitted.
func Restore(rec Record, dict Dictionary) (*Session, error) {
	s, err := New(rec.Secret, dict, rec.Mode)
	if err != nil {
		return nil, err
	}
	s.ID = rec.ID
	s.StartedAt = rec.StartedAt.UTC()
	s.UpdatedAt = rec.UpdatedAt.UTC()
	for i, g := range rec.Guesses {
		if s.status.Over() {
			return nil, fmt.Errorf("game: restore %s: guess %d after game over", rec.ID, i+1)
		}
		g = Normalize(g)
		if len(g) != WordLength || !isAlpha(g) {
			return nil, fmt.Errorf("game: restore %s: bad guess %q", rec.ID, g)
		}
		s.apply(g)
	}
	return s, nil
}

// SubmitGuess validates and scores a guess, mutating the session on success.
//
// Validation rules (the session is unchanged when any of them fails):
//   - Session must not be finished (ErrGameOver).
//   - Normalised guess must be exactly 5 characters (ErrWrongLength).
//   - Normalised guess must be a-z only and in the dictionary (ErrNotInDictionary).
//
// State transitions:
//   - Guess equals the secret → won.
//   - Else attempts reach MaxAttempts → lost.
func (s *Session) SubmitGuess(raw string) (GuessResult, error) {
	if s.status.Over() {
		return GuessResult{}, ErrGameOver
	}
	guess := Normalize(raw)
	if utf8.RuneCountInString(guess) != WordLength {
		return GuessResult{}, ErrWrongLength
	}
	if !isAlpha(guess) || !s.dict.Contains(guess) {
		return GuessResult{}, ErrNotInDictionary
	}
	res := s.apply(guess)
	s.UpdatedAt = time.Now().UTC()
	return res, nil
}

// apply scores an already validated guess and advances the state.
func (s *Session) apply(guess string) GuessResult {
	res := Score(guess, s.secret)
	s.history = append(s.history, Turn{Guess: guess, Result: res})
	s.attempts++
	switch {
	case guess == s.secret:
		s.status = StatusWon
	case s.attempts >= MaxAttempts:
		s.status = StatusLost
	}
	return res
}

func (s *Session) Status() Status { return s.status }
func (s *Session) Attempts() int  { return s.attempts }

// Remaining is the number of guesses left before the session is lost.
func (s *Session) Remaining() int { return MaxAttempts - s.attempts }

// Secret returns the solution word. Presentation layers use it for the
// end-of-game reveal and debug output; persistence uses it via Record.
func (s *Session) Secret() string { return s.secret }

// History returns a copy of the accepted guesses.
func (s *Session) History() []Turn {
	out := make([]Turn, len(s.history))
	copy(out, s.history)
	return out
}

// Clone returns an independent copy of the session.
func (s *Session) Clone() *Session {
	c := *s
	c.history = s.History()
	return &c
}

// Snapshot returns a presentation view of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:          s.ID,
		Mode:        s.Mode,
		Status:      s.status,
		Attempts:    s.attempts,
		MaxAttempts: MaxAttempts,
		Remaining:   s.Remaining(),
		History:     s.History(),
		StartedAt:   s.StartedAt,
	}
	if s.status.Over() {
		snap.Answer = s.secret
	}
	return snap
}

// Record returns the persistable form of the session.
func (s *Session) Record() Record {
	guesses := make([]string, len(s.history))
	for i, t := range s.history {
		guesses[i] = t.Guess
	}
	return Record{
		ID:        s.ID,
		Mode:      s.Mode,
		Secret:    s.secret,
		Guesses:   guesses,
		Status:    s.status,
		StartedAt: s.StartedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// Normalize trims surrounding whitespace and lowercases w.
func Normalize(w string) string { return strings.ToLower(strings.TrimSpace(w)) }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
