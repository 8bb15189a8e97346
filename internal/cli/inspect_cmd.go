package cli

import (
	"github.com/alexanderramin/studymap/internal/cli/formatter"
	"github.com/alexanderramin/studymap/internal/contract"
	"github.com/alexanderramin/studymap/internal/pipeline"
	"github.com/spf13/cobra"
)

// runSingle loads one document and runs the pipeline over it.
func runSingle(cmd *cobra.Command, app *App, flags *globalFlags, path string) (*session, *pipeline.Result, error) {
	s, err := flags.newSession(cmd, app)
	if err != nil {
		return nil, nil, err
	}
	docs, err := loadDocuments([]string{path})
	if err != nil {
		return nil, nil, err
	}
	res, err := s.pipeline.Run(cmd.Context(), docs[0])
	if err != nil {
		return nil, nil, err
	}
	return s, res, nil
}

func newClusterCmd(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "cluster <file>",
		Short: "Show the topics and classified concepts of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, res, err := runSingle(cmd, app, flags, args[0])
			if err != nil {
				return err
			}
			view := contract.NewClusterView(res.Topics, res.Concepts)
			return writeOutput(cmd.OutOrStdout(), s.format, view, func() string {
				return formatter.FormatTopics(view.Topics) + "\n" + formatter.FormatConcepts(view.Concepts)
			})
		},
	}
}

func newGraphCmd(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "graph <file>",
		Short: "Show the mind map of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, res, err := runSingle(cmd, app, flags, args[0])
			if err != nil {
				return err
			}
			view := contract.NewGraphView(res.Graph)
			return writeOutput(cmd.OutOrStdout(), s.format, view, func() string {
				return formatter.FormatGraph(view)
			})
		},
	}
}

func newPlanCmd(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <file>",
		Short: "Show the day-by-day study plan of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, res, err := runSingle(cmd, app, flags, args[0])
			if err != nil {
				return err
			}
			view := contract.NewScheduleView(res.Schedule)
			labels := make(map[string]string, len(res.Concepts))
			for _, c := range res.Concepts {
				labels[c.ID] = c.Label
			}
			return writeOutput(cmd.OutOrStdout(), s.format, view, func() string {
				return formatter.FormatSchedule(view, labels)
			})
		},
	}
}

func newQuizCmd(app *App, flags *globalFlags) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "quiz <file>",
		Short: "Generate a multiple-choice review quiz from a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, res, err := runSingle(cmd, app, flags, args[0])
			if err != nil {
				return err
			}
			view := contract.NewQuizView(res.Questions)
			return writeOutput(cmd.OutOrStdout(), s.format, view, func() string {
				return formatter.FormatQuiz(view, reveal)
			})
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Mark the correct answers in text output")

	return cmd
}
