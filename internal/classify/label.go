package classify

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const untitledLabel = "Untitled"

var (
	sentenceEnd = regexp.MustCompile(`[.!?](\s|$)`)
	// spanBreak ends a noun-phrase-like span: a linking or reporting verb, or
	// clause punctuation.
	spanBreak = regexp.MustCompile(`(?i)\s+(is|are|was|were|refers?|means?|has|have|can|could|will|would|should|may|must|consists?|describes?|involves?|occurs?|happens?|allows?|provides?)\b|[,;:()]|\s[-–—]\s`)
)

var determiners = map[string]bool{
	"the": true, "a": true, "an": true, "this": true, "these": true, "that": true,
	"those": true, "our": true, "its": true,
}

// fillerPhrases are generic academic spans that make poor labels on their own.
var fillerPhrases = map[string]bool{
	"this study": true, "the study": true, "this paper": true, "the paper": true,
	"the data": true, "results": true, "conclusion": true, "analysis": true,
	"method": true, "methods": true, "introduction": true, "background": true,
	"we": true, "they": true, "it": true, "this": true, "that": true, "chapter": true,
	"section": true, "figure": true, "table": true, "example": true, "process": true,
	"system": true, "study": true, "paper": true, "data": true,
}

// Label extracts a short extractive label: the leading noun-phrase-like span of
// the first sentence, or its first maxWords words when that span is empty or
// generic. An opening example cue such as "For example," is skipped. The result is capitalized and cut to maxChars on a word boundary.
func Label(text string, maxWords, maxChars int) string {
	sentence := firstSentence(stripLeadingCue(strings.TrimSpace(text)))
	if sentence == "" {
		return untitledLabel
	}

	span := sentence
	if loc := spanBreak.FindStringIndex(sentence); loc != nil {
		span = sentence[:loc[0]]
	}
	words := stripDeterminers(strings.Fields(span))
	if len(words) == 0 || fillerPhrases[strings.ToLower(strings.Join(words, " "))] {
		words = stripDeterminers(strings.Fields(sentence))
	}
	if len(words) == 0 {
		return untitledLabel
	}
	if len(words) > maxWords {
		words = words[:maxWords]
	}

	label := strings.TrimRightFunc(strings.Join(words, " "), func(r rune) bool {
		return unicode.IsPunct(r) && r != ')' && r != '"'
	})
	return truncate(capitalize(label), maxChars)
}

func firstSentence(text string) string {
	text = strings.TrimSpace(text)
	if loc := sentenceEnd.FindStringIndex(text); loc != nil {
		// Keep the terminator out; a span never needs it.
		return strings.TrimSpace(text[:loc[0]])
	}
	return text
}

func stripDeterminers(words []string) []string {
	for len(words) > 0 && determiners[strings.ToLower(words[0])] {
		words = words[1:]
	}
	return words
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// truncate cuts s to at most maxChars runes, preferring a word boundary, and
// marks the cut with an ellipsis.
func truncate(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	cut := string(runes[:maxChars-1])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,;:") + "…"
}
