package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/repols/repols/internal/config"
	"github.com/repols/repols/internal/log"
	"github.com/repols/repols/internal/output"
	"github.com/repols/repols/internal/repolist"
	"github.com/repols/repols/internal/scan"
	"github.com/repols/repols/internal/ui"
	"github.com/repols/repols/internal/ui/static"
)

// RepoDisplay holds one repository row for JSON output.
type RepoDisplay struct {
	Name  string            `json:"name"`
	Path  string            `json:"path"`
	Cells map[string]string `json:"cells"`
}

func newListCmd() *cobra.Command {
	var (
		jsonOutput  bool
		interactive bool
		styleName   string
		sortKey     string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List repositories under the configured roots",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List repositories found under the configured roots.

Each row is one repository; the active style decides the columns. Rows
are sorted by the configured sort column (default: name).`,
		Example: `  repols list                  # Table with the default style
  repols list --style status   # Pick a different style
  repols list --sort version   # Sort by another column
  repols list --json           # Output as JSON
  repols list -i               # Browse interactively`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			repos, err := scanRepos(ctx, cfg)
			if err != nil {
				return err
			}

			set, err := repolist.Merged(cfg.Styles, cfg.Cycle)
			if err != nil {
				return err
			}
			session := repolist.NewSession(set)
			if styleName != "" {
				if err := session.SetActive(styleName); err != nil {
					return err
				}
			}

			sortBy := sortKey
			if sortBy == "" {
				sortBy = cfg.SortColumn
			}

			if interactive {
				return browseRepos(ctx, cfg, session, repos, sortBy)
			}

			rows, cols, err := buildRows(ctx, repos, session.Current(), sortBy)
			if err != nil {
				return err
			}

			if jsonOutput {
				display := make([]RepoDisplay, 0, len(rows))
				for _, row := range rows {
					cells := make(map[string]string, len(cols))
					for i, col := range cols {
						cells[col.Key] = row.Cells[i]
					}
					display = append(display, RepoDisplay{Name: row.Repo.Name, Path: row.Repo.Path, Cells: cells})
				}
				return out.JSON(display)
			}

			if len(rows) == 0 {
				out.Println("No repositories found")
				return nil
			}

			out.Print(static.RenderRepoTable(cols, rows, cfg.Widths))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse repositories interactively")
	cmd.Flags().StringVar(&styleName, "style", "", "Style to render (default: first configured)")
	cmd.Flags().StringVar(&sortKey, "sort", "", "Column to sort by (default: configured sort_column)")
	cmd.MarkFlagsMutuallyExclusive("json", "interactive")

	// Completions
	cmd.RegisterFlagCompletionFunc("style", completeStyleNames)
	cmd.RegisterFlagCompletionFunc("sort", completeColumnKeys)

	return cmd
}

// browseRepos runs the interactive browser and prints the status view
// of the row selected with enter. Quitting without a selection prints
// nothing.
func browseRepos(ctx context.Context, cfg *config.Config, session *repolist.Session, repos []scan.Repo, sortBy string) error {
	if err := ui.RequireTerminal(); err != nil {
		return err
	}

	l := log.FromContext(ctx)
	result, err := ui.Browse(ui.BrowseParams{
		Repos:   repos,
		Session: session,
		Widths:  cfg.Widths,
		Scan: func() []scan.Repo {
			rescanned, err := scanRepos(ctx, cfg)
			if err != nil {
				l.Debug("rescan failed", "error", err)
				return nil
			}
			return rescanned
		},
		Build: func(style repolist.Style, repos []scan.Repo) []repolist.Row {
			rows, _, err := buildRows(ctx, repos, style, sortBy)
			if err != nil {
				l.Debug("row build failed", "style", style.Name, "error", err)
				return nil
			}
			return rows
		},
	})
	if err != nil {
		return err
	}
	if result.Cancelled {
		return nil
	}

	info := gatherStatusInfo(ctx, result.Repo.Name, result.Repo.Path)
	return outputStatusText(ctx, info)
}
