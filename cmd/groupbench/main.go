package main

import (
	"context"
	"os"

	"github.com/leengari/groupbench/internal/cmd"
)

func main() {
	// No signal handling: an interrupted run is terminated by the default handler.
	if err := cmd.NewApp().Execute(context.Background(), os.Args[1:]); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
