package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/studymap/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `config prints the configuration after defaults, the config file, STUDYMAP_*
environment variables and flags have been applied. Text output is TOML and
can be saved as a config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolveConfig()
			if err != nil {
				return err
			}
			format, err := resolveFormat(flags.format, app)
			if err != nil {
				return err
			}

			var out []byte
			switch format {
			case formatJSON:
				out, err = configJSON(cfg)
			case formatYAML:
				out, err = config.EncodeYAML(cfg)
			default:
				out, err = config.EncodeTOML(cfg)
			}
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

// configJSON reuses the YAML field names so every format shares one key set.
func configJSON(cfg config.Config) ([]byte, error) {
	raw, err := config.EncodeYAML(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
