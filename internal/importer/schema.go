package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DocumentImport is the top-level structure of a chunk document file.
type DocumentImport struct {
	Title  string        `json:"title,omitempty" yaml:"title,omitempty"`
	Chunks []ChunkImport `json:"chunks" yaml:"chunks"`
}

// ChunkImport is one chunk in the document file. WordCount is computed from
// Text when omitted.
type ChunkImport struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	WordCount *int   `json:"word_count,omitempty" yaml:"word_count,omitempty"`
}

// Format is the encoding of a document file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported document extension %q (expected .json, .yaml or .yml)", filepath.Ext(path))
}

// LoadDocumentImport reads and parses a chunk document file.
func LoadDocumentImport(path string) (*DocumentImport, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDocumentImport(data, format)
}

// ParseDocumentImport decodes data in the given format.
func ParseDocumentImport(data []byte, format Format) (*DocumentImport, error) {
	var doc DocumentImport
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing document: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}
	return &doc, nil
}
