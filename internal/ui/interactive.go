package ui

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// RequireTerminal returns an error when stderr is not attached to a
// terminal. The interactive components render to stderr, so piping or
// redirecting it leaves them nothing to draw on.
func RequireTerminal() error {
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return fmt.Errorf("interactive mode requires a terminal")
}
