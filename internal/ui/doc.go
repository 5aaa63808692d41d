// Package ui provides terminal UI components for repols command output.
//
// This package uses the Charm libraries (bubbletea, bubbles, lipgloss)
// for styled terminal output and the two interactive modes.
//
// # Interactive Components
//
//   - [RunSelector]: fuzzy-filtered repository picker used by cd -i.
//     Typing narrows the list, matched characters are highlighted, and
//     enter returns the repository under the cursor.
//   - [Browse]: full repository browser used by list -i. Supports
//     cursor navigation, cycling the listing style, rescanning the
//     configured roots, and selecting a repository for a status view.
//
// Both render to stderr so stdout stays clean for shell consumption,
// and both detect the color profile of stderr before drawing. Use
// [RequireTerminal] to reject interactive modes up front when stderr
// is piped.
//
// # Static Output
//
// The static subpackage renders the non-interactive listing table.
// Cell styling (bold counters, red dirty markers) follows each
// column's emphasis rule; width caps truncate with an ellipsis.
package ui
