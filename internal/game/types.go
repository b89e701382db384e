// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - LetterResult: per-letter feedback for a guess (correct/present/absent).
//   - GuessResult: the five LetterResults of one guess.
//   - Status: session outcome (in_progress/won/lost).
//   - Session: state for a single in-progress or finished game.

package game

import "time"

const (
	WordLength  = 5 // letters per word
	MaxAttempts = 6 // accepted guesses before a session is lost
)

// LetterResult is the evaluation of a single guessed letter.
// Possible values:
//   - "correct": letter is in the secret at the same position.
//   - "present": letter is in the secret at another, still unclaimed position.
//   - "absent":  letter is not in the secret, or its supply is already claimed.
type LetterResult string

const (
	Correct LetterResult = "correct"
	Present LetterResult = "present"
	Absent  LetterResult = "absent"
)

// GuessResult holds one LetterResult per position of a guess.
type GuessResult [WordLength]LetterResult

// Solved reports whether every position is Correct.
func (r GuessResult) Solved() bool {
	for _, m := range r {
		if m != Correct {
			return false
		}
	}
	return true
}

// Status is the coarse state of a session.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Over reports whether the status is terminal.
func (s Status) Over() bool { return s == StatusWon || s == StatusLost }

// Mode records how the secret was chosen.
type Mode string

const (
	ModeRandom Mode = "random" // drawn from the answer pool
	ModeDaily  Mode = "daily"  // deterministic word of the day
	ModeFixed  Mode = "fixed"  // supplied by the caller (tests, debugging)
)

// Turn is one accepted guess and its feedback.
type Turn struct {
	Guess  string      `json:"guess"`
	Result GuessResult `json:"marks"`
}

// Session holds the state of a single Wordle game.
// The secret and the progress fields are only changed through SubmitGuess.
type Session struct {
	ID        string    // Unique session identifier (uuid).
	Mode      Mode      // How the secret was chosen.
	StartedAt time.Time // Creation time (UTC).
	UpdatedAt time.Time // Time of the last accepted guess (UTC).

	secret   string     // Solution word (always lowercase).
	dict     Dictionary // Valid-guess dictionary.
	attempts int        // Accepted guesses so far.
	history  []Turn     // Accepted guesses in order.
	status   Status
}

// Snapshot is a read-only view of a session for presentation layers.
// Answer is only populated once the session is over.
type Snapshot struct {
	ID          string    `json:"gameId"`
	Mode        Mode      `json:"mode"`
	Status      Status    `json:"state"`
	Attempts    int       `json:"attempts"`
	MaxAttempts int       `json:"maxAttempts"`
	Remaining   int       `json:"remaining"`
	History     []Turn    `json:"history"`
	Answer      string    `json:"answer,omitempty"`
	StartedAt   time.Time `json:"startedAt"`
}

// Record is the persistable form of a session. Restore rebuilds a Session
// from it by replaying the guesses.
type Record struct {
	ID        string
	Mode      Mode
	Secret    string
	Guesses   []string
	Status    Status
	StartedAt time.Time
	UpdatedAt time.Time
}
