package repolist

import (
	"context"
	"sort"

	"github.com/repols/repols/internal/scan"
)

// Row is one repository's computed summary. Cells align with the
// columns the row was built from, one cell per column.
type Row struct {
	Repo  scan.Repo
	Cells []string
}

// Build computes one row per repository. Repositories are processed
// strictly in input order, and within a repository the columns in
// column order, one compute at a time. A compute returning "" leaves an
// empty cell; every row always has exactly len(cols) cells.
func Build(ctx context.Context, repos []scan.Repo, cols []ColumnSpec) []Row {
	rows := make([]Row, 0, len(repos))
	for _, repo := range repos {
		cells := make([]string, len(cols))
		for i, col := range cols {
			if col.Compute != nil {
				cells[i] = col.Compute(ctx, repo)
			}
		}
		rows = append(rows, Row{Repo: repo, Cells: cells})
	}
	return rows
}

// SortRows stable-sorts rows in place by the named column's textual
// cell value. Reports false when the key is not among cols; the order
// is left unchanged then.
func SortRows(rows []Row, cols []ColumnSpec, key string) bool {
	idx := -1
	for i, c := range cols {
		if c.Key == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].Cells[idx] < rows[b].Cells[idx]
	})
	return true
}
