package cluster

import (
	"strings"
	"unicode"
)

// tokenize lowercases text and splits it into runs of letters and digits,
// keeping runs of at least two characters that are not stop words.
func tokenize(text string) []string {
	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		w := cur.String()
		cur.Reset()
		if len([]rune(w)) < 2 || stopWords[w] {
			return
		}
		tokens = append(tokens, w)
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cur.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}

// features expands tokens into unigrams followed by adjacent bigrams.
func features(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, 0, 2*len(tokens)-1)
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}
