package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/alexanderramin/studymap/internal/cli/formatter"
	"github.com/alexanderramin/studymap/internal/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-run the pipeline whenever a document changes",
		Long: `watch prints the full result for a document, then prints it again every
time the file is saved. Press Ctrl-C to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.newSession(cmd, app)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			render := func(ctx context.Context, _ []string) error {
				docs, err := loadDocuments(args)
				if err != nil {
					return err
				}
				res, err := s.pipeline.Run(ctx, docs[0])
				if err != nil {
					return err
				}
				view := runView(res)
				return writeOutput(cmd.OutOrStdout(), s.format, view, func() string {
					return formatter.FormatRun(view)
				})
			}

			// A broken document is reported and watched until it is fixed.
			if err := render(ctx, args); err != nil {
				s.logger.Error("initial run failed", "file", args[0], "error", err)
			}
			s.logger.Info("watching for changes", "file", args[0])

			return watch.Watch(ctx, args, watch.Options{Logger: s.logger}, render)
		},
	}
}
