// Package notifier implements the user-feedback port for terminal screens.
package notifier

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Terminal writes user-visible feedback to the terminal, green for
// informational messages and red for errors.
type Terminal struct {
	out io.Writer
	err io.Writer
}

func NewTerminal() *Terminal {
	return &Terminal{out: os.Stdout, err: os.Stderr}
}

// NewTerminalWithWriters is used by tests to capture output.
func NewTerminalWithWriters(out, err io.Writer) *Terminal {
	return &Terminal{out: out, err: err}
}

func (t *Terminal) Info(msg string) {
	fmt.Fprintln(t.out, color.GreenString("✔ %s", msg))
}

func (t *Terminal) Error(msg string) {
	fmt.Fprintln(t.err, color.RedString("✘ %s", msg))
}
