package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/studymap/internal/cli"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		// Text output only when a person is reading it.
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		},
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
