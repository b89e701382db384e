package daily

import (
	"testing"
	"time"
)

func TestDateKeyIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	tm := time.Date(2024, 3, 2, 5, 0, 0, 0, loc) // 2024-03-01 19:00 UTC
	if got := DateKey(tm); got != "2024-03-01" {
		t.Errorf("DateKey = %s", got)
	}
}

func TestWordIndexDeterministic(t *testing.T) {
	day := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	later := day.Add(10 * time.Hour)
	a := WordIndex(day, "salt", 500)
	if b := WordIndex(later, "salt", 500); a != b {
		t.Errorf("same day gave %d and %d", a, b)
	}
	if a < 0 || a >= 500 {
		t.Errorf("index %d out of range", a)
	}
	if WordIndex(day, "salt", 0) != 0 {
		t.Error("empty list should give 0")
	}
}

func TestWordIndexVariesWithSaltAndDate(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[WordIndex(day.AddDate(0, 0, i), "salt", 1000)] = true
	}
	if len(seen) < 20 {
		t.Errorf("only %d distinct indexes over 30 days", len(seen))
	}
}

func TestPickerPick(t *testing.T) {
	answers := []string{"crane", "shape", "speed", "erase", "plumb"}
	p := Picker{Salt: "s", Now: func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }}
	date, idx, word := p.Pick(answers)
	if date != "2025-06-01" {
		t.Errorf("date = %s", date)
	}
	if answers[idx] != word {
		t.Errorf("word %q does not match index %d", word, idx)
	}
	if _, _, again := p.Pick(answers); again != word {
		t.Errorf("second pick %q != %q", again, word)
	}
	if _, _, w := p.Pick(nil); w != "" {
		t.Errorf("empty answers gave %q", w)
	}
}
