package format

import (
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks truncated cell values.
const Ellipsis = "…"

// HomePath abbreviates the current user's home directory prefix to "~".
func HomePath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+"/") {
		return "~" + path[len(home):]
	}
	return path
}

// Truncate caps a cell value at width display columns, appending an
// ellipsis when something was cut. Width 0 means unbounded. Styled
// (ANSI-escaped) input is measured and cut by visible width.
func Truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, Ellipsis)
}
