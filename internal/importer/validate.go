package importer

import (
	"fmt"
	"strings"
)

// ValidateDocumentImport checks the document for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateDocumentImport(doc *DocumentImport) []error {
	if len(doc.Chunks) == 0 {
		return []error{fmt.Errorf("chunks: at least one chunk is required")}
	}

	var errs []error
	seen := make(map[string]int)
	for i, c := range doc.Chunks {
		prefix := fmt.Sprintf("chunks[%d]", i)

		id := strings.TrimSpace(c.ID)
		if id == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if first, dup := seen[id]; dup {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q (first used by chunks[%d])", prefix, id, first))
		} else {
			seen[id] = i
		}

		if strings.TrimSpace(c.Text) == "" {
			errs = append(errs, fmt.Errorf("%s.text is required", prefix))
		}
		if c.WordCount != nil && *c.WordCount < 0 {
			errs = append(errs, fmt.Errorf("%s.word_count must be >= 0, got %d", prefix, *c.WordCount))
		}
	}
	return errs
}
