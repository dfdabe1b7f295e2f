package cmd

import (
	"context"
	"io"
	"os"

	"github.com/leengari/groupbench/internal/config"
)

// App holds the process streams and settings for one invocation.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	// Config overrides the embedded configuration when set
	Config *config.Config
}

// NewApp constructs an App with default settings.
func NewApp() *App {
	return &App{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Execute runs the CLI with the provided args.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(a.Stderr)
	root.SetErr(a.Stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		printCommandError(a.Stderr, err)
		return err
	}
	return nil
}
