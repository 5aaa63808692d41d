// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as tables and
// formatted text displays.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/repols/repols/internal/format"
	"github.com/repols/repols/internal/repolist"
	"github.com/repols/repols/internal/ui/styles"
)

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. rightAlign marks columns
// rendered flush right; a nil slice keeps everything left aligned. No
// borders are rendered.
func RenderTable(headers []string, rows [][]string, rightAlign []bool) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().PaddingRight(2)
			if row == table.HeaderRow {
				s = s.Bold(true)
			}
			if col < len(rightAlign) && rightAlign[col] {
				s = s.Align(lipgloss.Right)
			}
			return s
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// RenderRepoTable renders summary rows under the given columns. widths
// overrides per-column display widths by column key; columns keep their
// default width when absent.
func RenderRepoTable(cols []repolist.ColumnSpec, rows []repolist.Row, widths map[string]int) string {
	headers := make([]string, len(cols))
	rightAlign := make([]bool, len(cols))
	for i, col := range cols {
		headers[i] = col.Title
		rightAlign[i] = col.Align == repolist.AlignRight
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		line := make([]string, len(cols))
		for j, col := range cols {
			line[j] = RepoCell(col, row.Cells[j], widths[col.Key])
		}
		cells[i] = line
	}

	return RenderTable(headers, cells, rightAlign)
}

// RepoCell styles a single cell value for display. The value is
// truncated to width (or the column default when width is zero), then
// the column's emphasis rule is applied: counter cells render bold and
// a trailing dirty marker renders in the error color.
func RepoCell(col repolist.ColumnSpec, value string, width int) string {
	if width == 0 {
		width = col.Width
	}
	value = format.Truncate(value, width)

	if !col.Emphasized(value) {
		return value
	}
	if col.Emphasis == repolist.EmphasisDirty {
		rest := strings.TrimSuffix(value, repolist.DirtySuffix)
		return rest + styles.ErrorStyle.Render(repolist.DirtySuffix)
	}
	return styles.Bold.Render(value)
}
