package classify

import (
	"regexp"
	"strings"
)

// exampleCues mark a chunk as illustrating rather than defining. Matched as
// whole words, case-insensitively.
var exampleCues = []string{
	"for example", "for instance", "such as", "e.g.", "eg.", "including",
}

// definitionCues mark a chunk that introduces or defines a topic.
var definitionCues = []string{
	"is defined as", "are defined as", "refers to", "refer to", "is called",
	"are called", "is known as", "are known as", "means", "is a", "are a",
	"is an", "definition",
}

var (
	exampleRe    = cueRegexp(exampleCues)
	definitionRe = cueRegexp(definitionCues)
	leadingCueRe = leadingCueRegexp(exampleCues)
)

// leadingCueRegexp matches an example cue that opens the text, together with
// the punctuation and spaces that follow it.
func leadingCueRegexp(cues []string) *regexp.Regexp {
	parts := make([]string, len(cues))
	for i, c := range cues {
		parts[i] = regexp.QuoteMeta(c)
	}
	return regexp.MustCompile(`(?i)^(?:` + strings.Join(parts, "|") + `)(?:[\s,:;.]+|$)`)
}

// stripLeadingCue removes an opening example cue such as "For example,".
func stripLeadingCue(text string) string {
	return leadingCueRe.ReplaceAllString(text, "")
}

// cueRegexp builds one alternation anchored on word boundaries. Cues ending in
// punctuation ("e.g.") cannot use a trailing \b, so they are matched by a
// following non-word character or end of text instead.
func cueRegexp(cues []string) *regexp.Regexp {
	parts := make([]string, len(cues))
	for i, c := range cues {
		p := `\b` + regexp.QuoteMeta(c)
		if strings.HasSuffix(c, ".") {
			p += `(?:\W|$)`
		} else {
			p += `\b`
		}
		parts[i] = p
	}
	return regexp.MustCompile(`(?i)(?:` + strings.Join(parts, "|") + `)`)
}

// IsExample reports whether text contains an example cue.
func IsExample(text string) bool {
	return exampleRe.MatchString(text)
}

// IsDefinition reports whether text contains a definitional cue.
func IsDefinition(text string) bool {
	return definitionRe.MatchString(text)
}
