// Package daily picks a deterministic "word of the day" so every player
// gets the same secret on the same UTC date.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Picker selects the answer for the current date.
type Picker struct {
	Salt string
	Now  func() time.Time // defaults to time.Now
}

// Pick returns today's date key, the chosen index and the word.
// word is empty when answers is empty.
func (p Picker) Pick(answers []string) (date string, idx int, word string) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	t := now()
	date = DateKey(t)
	if len(answers) == 0 {
		return date, 0, ""
	}
	idx = WordIndex(t, p.Salt, len(answers))
	return date, idx, answers[idx]
}
