package cli

import (
	"fmt"
	"log/slog"

	"github.com/alexanderramin/studymap/internal/config"
	"github.com/alexanderramin/studymap/internal/domain"
	"github.com/alexanderramin/studymap/internal/importer"
	"github.com/alexanderramin/studymap/internal/pipeline"
	"github.com/spf13/cobra"
)

// App holds the process-level dependencies shared by all commands.
type App struct {
	// IsInteractive reports whether stdout is a terminal. It decides the
	// default --format; nil means not interactive.
	IsInteractive func() bool

	// PipelineOptions are passed to every pipeline the commands build.
	PipelineOptions []pipeline.Option
}

type globalFlags struct {
	configPath string
	format     string
	verbose    bool
	overrides  *config.Overrides
}

// session is the resolved state one command invocation works with.
type session struct {
	cfg      config.Config
	format   outputFormat
	logger   *slog.Logger
	pipeline *pipeline.Pipeline
}

// NewRootCmd creates the top-level "studymap" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "studymap",
		Short: "Turn study notes into a mind map, a study plan and a review quiz",
		Long: `studymap reads a document of text chunks (JSON or YAML), groups the chunks
into topics, labels and prioritizes each one, and prints a mind map, a
day-by-day study plan and a short review quiz.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (.yaml, .yml or .toml)")
	pf.StringVar(&flags.format, "format", "", "Output format: text, json or yaml (default text on a terminal, json otherwise)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log debug details to stderr")
	flags.overrides = config.BindFlags(pf)

	root.AddCommand(
		newRunCmd(app, flags),
		newClusterCmd(app, flags),
		newGraphCmd(app, flags),
		newPlanCmd(app, flags),
		newQuizCmd(app, flags),
		newWatchCmd(app, flags),
		newConfigCmd(app, flags),
	)

	return root
}

// resolveConfig layers file, environment and flags over the defaults and
// validates the result.
func (f *globalFlags) resolveConfig() (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	if err := f.overrides.Apply(&cfg); err != nil {
		return cfg, err
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (f *globalFlags) newSession(cmd *cobra.Command, app *App) (*session, error) {
	cfg, err := f.resolveConfig()
	if err != nil {
		return nil, err
	}
	format, err := resolveFormat(f.format, app)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	logger.Debug("configuration resolved", "config_file", f.configPath, "format", string(format))

	return &session{
		cfg:      cfg,
		format:   format,
		logger:   logger,
		pipeline: pipeline.New(cfg.Pipeline(), pipeline.NewSlogObserver(logger), app.PipelineOptions...),
	}, nil
}

func loadDocuments(paths []string) ([]domain.Document, error) {
	docs := make([]domain.Document, 0, len(paths))
	for _, p := range paths {
		doc, err := importer.Load(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}
