package cli

import (
	"strings"

	"github.com/alexanderramin/studymap/internal/cli/formatter"
	"github.com/alexanderramin/studymap/internal/contract"
	"github.com/alexanderramin/studymap/internal/pipeline"
	"github.com/spf13/cobra"
)

func newRunCmd(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>...",
		Short: "Run the full pipeline on one or more documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.newSession(cmd, app)
			if err != nil {
				return err
			}
			docs, err := loadDocuments(args)
			if err != nil {
				return err
			}

			if len(docs) == 1 {
				res, err := s.pipeline.Run(cmd.Context(), docs[0])
				if err != nil {
					return err
				}
				view := runView(res)
				return writeOutput(cmd.OutOrStdout(), s.format, view, func() string {
					return formatter.FormatRun(view)
				})
			}

			results, err := s.pipeline.RunBatch(cmd.Context(), docs)
			if err != nil {
				return err
			}
			views := make([]contract.RunView, len(results))
			for i, res := range results {
				views[i] = runView(res)
			}
			return writeOutput(cmd.OutOrStdout(), s.format, views, func() string {
				parts := make([]string, len(views))
				for i, v := range views {
					parts[i] = formatter.FormatRun(v)
				}
				return strings.Join(parts, "\n")
			})
		},
	}
}

func runView(res *pipeline.Result) contract.RunView {
	return contract.NewRunView(contract.RunParts{
		RunID:     res.RunID,
		Title:     res.Document.Title,
		Source:    res.Document.Source,
		Topics:    res.Topics,
		Concepts:  res.Concepts,
		Graph:     res.Graph,
		Schedule:  res.Schedule,
		Questions: res.Questions,
	})
}
