package game

import (
	"math/rand"
	"strings"
	"testing"
)

func marks(s string) GuessResult {
	var r GuessResult
	for i, c := range s {
		switch c {
		case 'C':
			r[i] = Correct
		case 'P':
			r[i] = Present
		default:
			r[i] = Absent
		}
	}
	return r
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		secret string
		want   string
	}{
		{"all correct", "crane", "crane", "CCCCC"},
		{"all absent", "fjord", "shape", "AAAAA"},
		{"mixed", "heaps", "shape", "PPCCP"},
		{"duplicate guess letters against one supply", "speed", "erase", "PAPPA"},
		{"exact match claims before presence", "geese", "those", "AAACC"},
		{"later duplicate left without supply", "speed", "abide", "AAPAP"},
		{"both duplicates present", "eerie", "there", "PAPAC"},
		{"case insensitive", "CrAnE", "crane", "CCCCC"},
		{"surrounding whitespace", "  crane\n", "CRANE", "CCCCC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.guess, tt.secret)
			if want := marks(tt.want); got != want {
				t.Errorf("Score(%q, %q) = %v, want %v", tt.guess, tt.secret, got, want)
			}
		})
	}
}

func TestScoreMalformedInput(t *testing.T) {
	// Short or non-letter input must not panic and scores Absent where it
	// cannot match.
	got := Score("ab", "abcde")
	if want := marks("CCAAA"); got != want {
		t.Errorf("short guess: got %v, want %v", got, want)
	}
	got = Score("1!é?x", "crane")
	for i, m := range got {
		if m == Correct {
			t.Errorf("position %d: unexpected Correct for non-letters", i)
		}
	}
}

func TestScoreSelfIsSolved(t *testing.T) {
	for _, w := range []string{"crane", "speed", "eerie", "mamma", "llama"} {
		if !Score(w, w).Solved() {
			t.Errorf("Score(%q, %q) not solved", w, w)
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	a := Score("speed", "erase")
	for i := 0; i < 10; i++ {
		if b := Score("speed", "erase"); a != b {
			t.Fatalf("run %d: %v != %v", i, b, a)
		}
	}
}

// Random words over a tiny alphabet force plenty of duplicate letters.
func TestScoreLetterBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	word := func() string {
		b := make([]byte, WordLength)
		for i := range b {
			b[i] = "abcde"[rng.Intn(5)]
		}
		return string(b)
	}

	for n := 0; n < 2000; n++ {
		g, s := word(), word()
		res := Score(g, s)

		claimed := map[byte]int{}
		for i, m := range res {
			if m == Correct && g[i] != s[i] {
				t.Fatalf("Score(%q, %q): position %d Correct without exact match", g, s, i)
			}
			if g[i] == s[i] && m != Correct {
				t.Fatalf("Score(%q, %q): exact match at %d not Correct", g, s, i)
			}
			if m != Absent {
				claimed[g[i]]++
			}
		}
		for _, l := range []byte("abcde") {
			want := min(strings.Count(g, string(l)), strings.Count(s, string(l)))
			if claimed[l] != want {
				t.Fatalf("Score(%q, %q): letter %c claimed %d, want %d", g, s, l, claimed[l], want)
			}
		}
	}
}
