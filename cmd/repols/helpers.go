package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/repols/repols/internal/config"
	"github.com/repols/repols/internal/log"
	"github.com/repols/repols/internal/repolist"
	"github.com/repols/repols/internal/scan"
)

// scanRepos runs the discovery pipeline: walk every configured root in
// order, then uniquify display names. Fails when no roots are
// configured so listings stop before producing an empty table.
func scanRepos(ctx context.Context, cfg *config.Config) ([]scan.Repo, error) {
	if len(cfg.Roots) == 0 {
		return nil, fmt.Errorf("no roots configured (run 'repols config init' and add a [[roots]] entry)")
	}

	roots := make([]scan.Root, len(cfg.Roots))
	for i, r := range cfg.Roots {
		roots[i] = scan.Root{Path: r.Path, Depth: r.Depth}
	}

	return scan.Uniquify(scan.Scan(ctx, roots)), nil
}

// buildRows computes one row per repository for the style and orders
// them by the sort key.
func buildRows(ctx context.Context, repos []scan.Repo, style repolist.Style, sortKey string) ([]repolist.Row, []repolist.ColumnSpec, error) {
	cols, err := repolist.Columns(style.Columns)
	if err != nil {
		return nil, nil, fmt.Errorf("style %q: %w", style.Name, err)
	}

	rows := repolist.Build(ctx, repos, cols)
	sortRows(ctx, rows, cols, sortKey)
	return rows, cols, nil
}

// sortRows orders rows by the key column's textual cell value. A key
// outside the active style is computed per repository instead; an
// unregistered key leaves scan order.
func sortRows(ctx context.Context, rows []repolist.Row, cols []repolist.ColumnSpec, key string) {
	if repolist.SortRows(rows, cols, key) {
		return
	}

	col, ok := repolist.Column(key)
	if !ok {
		log.FromContext(ctx).Debug("unknown sort column, keeping scan order", "key", key)
		return
	}

	cells := make(map[string]string, len(rows))
	for _, row := range rows {
		cells[row.Repo.Path] = col.Compute(ctx, row.Repo)
	}
	sort.SliceStable(rows, func(a, b int) bool {
		return cells[rows[a].Repo.Path] < cells[rows[b].Repo.Path]
	})
}
