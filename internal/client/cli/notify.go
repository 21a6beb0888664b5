package cli

import (
	"fmt"
	"io"
)

// consoleNotifier renders auth flow notices on the shell's output.
type consoleNotifier struct {
	out io.Writer
}

func (n *consoleNotifier) Success(msg string) { fmt.Fprintln(n.out, msg) }
func (n *consoleNotifier) Error(msg string)   { fmt.Fprintln(n.out, "error:", msg) }
func (n *consoleNotifier) Info(msg string)    { fmt.Fprintln(n.out, msg) }
