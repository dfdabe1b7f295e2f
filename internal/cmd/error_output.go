package cmd

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// printCommandError writes "Error: <message>" to w, with a red label when w
// is a color terminal. termenv honors NO_COLOR.
func printCommandError(w io.Writer, err error) {
	if err == nil {
		return
	}

	out := termenv.NewOutput(w)
	label := out.String("Error:").Foreground(termenv.ANSIRed).Bold()
	_, _ = fmt.Fprintf(out, "%s %v\n", label, err)
}
