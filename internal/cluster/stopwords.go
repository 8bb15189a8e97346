package cluster

// stopWords is a compact English stop list. It covers function words and the
// filler that dominates lecture transcripts and textbook prose.
var stopWords = toSet(
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an", "and",
	"any", "are", "as", "at", "be", "because", "been", "before", "being", "below",
	"between", "both", "but", "by", "can", "could", "did", "do", "does", "doing", "down",
	"during", "each", "either", "etc", "even", "every", "few", "for", "from", "further",
	"get", "gets", "had", "has", "have", "having", "he", "her", "here", "hers", "him",
	"his", "how", "however", "if", "in", "into", "is", "it", "its", "itself", "just",
	"less", "like", "many", "may", "me", "might", "more", "most", "much", "must", "my",
	"neither", "no", "nor", "not", "now", "of", "off", "often", "on", "once", "one",
	"only", "or", "other", "otherwise", "our", "ours", "out", "over", "own", "per",
	"rather", "same", "she", "should", "since", "so", "some", "such", "than", "that",
	"the", "their", "theirs", "them", "then", "there", "therefore", "these", "they",
	"this", "those", "though", "through", "thus", "to", "too", "under", "until", "up",
	"upon", "us", "use", "used", "uses", "using", "very", "via", "was", "we", "well",
	"were", "what", "when", "where", "whether", "which", "while", "who", "whom", "whose",
	"why", "will", "with", "within", "without", "would", "yet", "you", "your", "yours",
	"eg", "ie",
)

func toSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
