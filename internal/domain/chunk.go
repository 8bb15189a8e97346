package domain

import "strings"

// Chunk is a pre-segmented unit of source text handed over by the ingestion side.
type Chunk struct {
	ID        string
	Text      string
	WordCount int
}

// CountWords returns the number of whitespace-separated fields in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Topic is one cluster of chunks plus the terms that explain it.
type Topic struct {
	ID       int
	Terms    []string
	ChunkIDs []string
}

// Document is one normalized input: the chunks of a single source, in order.
type Document struct {
	Title  string
	Source string // file path or other origin, for display only
	Chunks []Chunk
}

// ChunkIDs returns the ids of chunks in slice order.
func ChunkIDs(chunks []Chunk) []string {
	ids := make([]string, len(chunks))
	for i, c := range chunks {
		ids[i] = c.ID
	}
	return ids
}
