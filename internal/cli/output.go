package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

// resolveFormat validates --format. When unset, terminals get text and
// everything else gets JSON.
func resolveFormat(flag string, app *App) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(flag))); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	case "":
		if app.IsInteractive != nil && app.IsInteractive() {
			return formatText, nil
		}
		return formatJSON, nil
	}
	return "", fmt.Errorf("invalid --format %q (expected text, json or yaml)", flag)
}

// writeOutput encodes view as JSON or YAML, or writes the text rendering.
func writeOutput(w io.Writer, format outputFormat, view any, text func() string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, text())
		return err
	}
}
