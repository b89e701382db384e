// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load answer and allowed guess lists from files or fall back to the
//     embedded defaults in the assets package.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Supply RandomAnswer, Contains, IsAnswer, Answers and Stats.
//
// Word Lists:
//   - "answers": canonical solutions (exactly 5 lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//
// Loading behavior (Load):
//   1. answersPath and allowedPath both set:
//      load answers from the first and allowed guesses from the second.
//   2. Only allowedPath set:
//      load that file and use it for both answers and allowed guesses.
//   3. Neither set:
//      use the embedded assets lists.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z); anything else is dropped.
//   • Lists are normalized to lowercase and de-duplicated.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-wordle/assets"
)

const wordLength = 5

var ErrNoAnswers = errors.New("words: answers list is empty")

// List is an immutable pair of word lists. It satisfies game.WordSource.
type List struct {
	answers    []string            // canonical answers, file order
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ guesses
}

// New builds a List from raw word slices. Answers are always allowed.
func New(answers, allowed []string) (*List, error) {
	l := &List{
		answersSet: make(map[string]struct{}, len(answers)),
		allowedSet: make(map[string]struct{}, len(answers)+len(allowed)),
	}
	for _, w := range normalize(answers) {
		if _, dup := l.answersSet[w]; dup {
			continue
		}
		l.answersSet[w] = struct{}{}
		l.allowedSet[w] = struct{}{}
		l.answers = append(l.answers, w)
	}
	for _, w := range normalize(allowed) {
		l.allowedSet[w] = struct{}{}
	}
	if len(l.answers) == 0 {
		return nil, ErrNoAnswers
	}
	return l, nil
}

// Load reads the lists following the three cases documented above.
func Load(answersPath, allowedPath string) (*List, error) {
	switch {
	case answersPath != "" && allowedPath != "":
		ans, err := ReadFile(answersPath)
		if err != nil {
			return nil, err
		}
		all, err := ReadFile(allowedPath)
		if err != nil {
			return nil, err
		}
		return New(ans, all)

	case allowedPath != "":
		all, err := ReadFile(allowedPath)
		if err != nil {
			return nil, err
		}
		return New(all, all)

	case answersPath != "":
		return nil, errors.New("words: answers file set without an allowed file")

	default:
		return Default()
	}
}

// Default builds a List from the embedded assets.
func Default() (*List, error) {
	ans, err := assets.AnswersList()
	if err != nil {
		return nil, fmt.Errorf("words: embedded answers: %w", err)
	}
	all, err := assets.AllowedList()
	if err != nil {
		return nil, fmt.Errorf("words: embedded allowed: %w", err)
	}
	return New(ans, all)
}

// ReadFile loads whitespace separated words from path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()
	out, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return out, nil
}

// Parse splits r into whitespace separated words. No filtering is applied.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// normalize lowercases and trims, keeping only valid 5-letter words.
func normalize(list []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.TrimSpace(strings.ToLower(w))
		if len(w) == wordLength && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// RandomAnswer returns a cryptographically random word from the answers list.
func (l *List) RandomAnswer() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	if err != nil {
		return l.answers[0]
	}
	return l.answers[nBig.Int64()]
}

// Contains reports whether w is a valid guess (answers ∪ guesses).
func (l *List) Contains(w string) bool {
	_, ok := l.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *List) IsAnswer(w string) bool {
	_, ok := l.answersSet[strings.ToLower(w)]
	return ok
}

// Answers returns a copy of the answer list in load order.
func (l *List) Answers() []string {
	return append([]string(nil), l.answers...)
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}
