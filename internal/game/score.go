package game

// letterCounts is a multiset over a–z. Bytes outside a–z are never counted.
type letterCounts [26]int

func (c *letterCounts) add(b byte) {
	if b >= 'a' && b <= 'z' {
		c[b-'a']++
	}
}

// take consumes one b if any is left.
func (c *letterCounts) take(b byte) bool {
	if b < 'a' || b > 'z' || c[b-'a'] == 0 {
		return false
	}
	c[b-'a']--
	return true
}

// Score compares guess against secret, case-insensitively.
//
// Pass 1 marks exact-position matches Correct and consumes that letter from
// the secret's supply. Pass 2 walks the remaining positions left to right and
// marks Present while supply of the letter remains, Absent otherwise.
// Positions missing from a short input score Absent.
func Score(guess, secret string) GuessResult {
	g, s := Normalize(guess), Normalize(secret)
	var res GuessResult

	var supply letterCounts
	for i := 0; i < len(s) && i < WordLength; i++ {
		supply.add(s[i])
	}

	for i := 0; i < WordLength; i++ {
		if i < len(g) && i < len(s) && g[i] == s[i] {
			res[i] = Correct
			supply.take(g[i])
		}
	}

	for i := 0; i < WordLength; i++ {
		if res[i] == Correct {
			continue
		}
		if i < len(g) && supply.take(g[i]) {
			res[i] = Present
		} else {
			res[i] = Absent
		}
	}
	return res
}
