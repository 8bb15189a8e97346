package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/studymap/internal/domain"
)

// Convert transforms a validated DocumentImport into a domain.Document.
// Call ValidateDocumentImport first; Convert assumes the document is valid.
func Convert(doc *DocumentImport, source string) *domain.Document {
	out := &domain.Document{
		Title:  strings.TrimSpace(doc.Title),
		Source: source,
		Chunks: make([]domain.Chunk, 0, len(doc.Chunks)),
	}
	for _, c := range doc.Chunks {
		out.Chunks = append(out.Chunks, domain.Chunk{
			ID:        strings.TrimSpace(c.ID),
			Text:      c.Text,
			WordCount: domain.IntFromPtrWithDefault(domain.CountWords(c.Text), c.WordCount),
		})
	}
	return out
}

// Load reads, validates and converts the document at path.
func Load(path string) (*domain.Document, error) {
	doc, err := LoadDocumentImport(path)
	if err != nil {
		return nil, fmt.Errorf("loading document %s: %w", path, err)
	}
	if errs := ValidateDocumentImport(doc); len(errs) > 0 {
		return nil, fmt.Errorf("invalid document %s: %w", path, errors.Join(errs...))
	}
	return Convert(doc, path), nil
}
