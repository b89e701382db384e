// Package assets embeds the default word lists so every front end runs
// without any files configured.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// readWords returns the whitespace separated words of an embedded file,
// lowercased. Lines starting with '#' are comments.
func readWords(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		for _, w := range strings.Fields(s) {
			out = append(out, strings.ToLower(w))
		}
	}
	return out, sc.Err()
}

func AnswersList() ([]string, error) {
	return readWords("answers.txt")
}

func AllowedList() ([]string, error) {
	return readWords("allowed.txt")
}
