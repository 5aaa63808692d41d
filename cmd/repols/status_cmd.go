package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/repols/repols/internal/config"
	"github.com/repols/repols/internal/format"
	"github.com/repols/repols/internal/git"
	"github.com/repols/repols/internal/log"
	"github.com/repols/repols/internal/output"
	"github.com/repols/repols/internal/repolist"
	"github.com/repols/repols/internal/resolve"
)

// StatusInfo contains all information displayed by repols status
type StatusInfo struct {
	Name       string   `json:"name"`
	Path       string   `json:"path"`
	NotRepo    bool     `json:"not_repo,omitempty"`
	Version    string   `json:"version,omitempty"`
	Branch     string   `json:"branch,omitempty"`
	Upstream   string   `json:"upstream,omitempty"`
	AheadUp    int      `json:"ahead_upstream"`
	BehindUp   int      `json:"behind_upstream"`
	Push       string   `json:"push,omitempty"`
	AheadPush  int      `json:"ahead_push"`
	BehindPush int      `json:"behind_push"`
	Branches   int      `json:"branches"`
	Stashes    int      `json:"stashes"`
	Staged     []string `json:"staged"`
	Unstaged   []string `json:"unstaged"`
	Untracked  []string `json:"untracked"`
}

func newStatusCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "status [name|path]",
		Short:   "Show the full status of one repository",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Show the full status of one repository: version, branch, divergence
from the upstream and push branches, branch and stash counts, and the
staged, unstaged and untracked files.

The argument is a display name from 'repols list'; anything that is not
a known name is treated as a directory path. Without an argument the
repository enclosing the working directory is shown.`,
		Example: `  repols status                # Status of the enclosing repository
  repols status api            # Status by display name
  repols status ~/src/api      # Status by path
  repols status --json api     # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			workDir := config.WorkDirFromContext(ctx)

			var name, path string
			if len(args) == 1 {
				// A path argument must resolve even when no roots are
				// configured, so a failed scan only disables name lookup.
				repos, err := scanRepos(ctx, cfg)
				if err != nil {
					log.FromContext(ctx).Debug("scan skipped", "error", err)
				}
				target, err := resolve.Repo(args[0], repos, workDir)
				if err != nil {
					return err
				}
				name, path = target.Name, target.Path
			} else {
				top, err := git.TopLevel(ctx, workDir)
				if err != nil {
					return fmt.Errorf("no repository selected (run inside a repository or pass a name, see 'repols list')")
				}
				name, path = filepath.Base(top), top
			}

			info := gatherStatusInfo(ctx, name, path)

			if jsonOutput {
				return outputStatusJSON(ctx, info)
			}
			return outputStatusText(ctx, info)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	// Register completions
	cmd.ValidArgsFunction = completeRepoNames

	return cmd
}

// gatherStatusInfo collects everything the status view shows. Failed
// queries leave their fields empty, matching the listing's empty-cell
// rule.
func gatherStatusInfo(ctx context.Context, name, path string) *StatusInfo {
	info := &StatusInfo{Name: name, Path: path}

	// A directory outside any repository gets no git queries at all.
	if _, err := git.TopLevel(ctx, path); err != nil {
		info.NotRepo = true
		return info
	}

	info.Version = git.Describe(ctx, path)
	if branch, err := git.CurrentBranch(ctx, path); err == nil {
		info.Branch = branch
	}

	info.Upstream = git.UpstreamRef(ctx, path)
	if info.Upstream != "" {
		if ahead, behind, err := git.AheadBehind(ctx, path, info.Upstream); err == nil {
			info.AheadUp, info.BehindUp = ahead, behind
		}
	}
	info.Push = git.PushRef(ctx, path)
	if info.Push != "" {
		if ahead, behind, err := git.AheadBehind(ctx, path, info.Push); err == nil {
			info.AheadPush, info.BehindPush = ahead, behind
		}
	}

	if branches, err := git.LocalBranches(ctx, path); err == nil {
		info.Branches = len(branches)
	}
	if stashes, err := git.Stashes(ctx, path); err == nil {
		info.Stashes = len(stashes)
	}

	info.Staged, _ = git.StagedFiles(ctx, path)
	info.Unstaged, _ = git.UnstagedFiles(ctx, path)
	info.Untracked, _ = git.UntrackedFiles(ctx, path)

	return info
}

func outputStatusJSON(ctx context.Context, info *StatusInfo) error {
	return output.FromContext(ctx).JSON(info)
}

func outputStatusText(ctx context.Context, info *StatusInfo) error {
	out := output.FromContext(ctx)

	// Styles
	greenStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	redStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	yellowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boldStyle := lipgloss.NewStyle().Bold(true)

	// Build all rows
	var rows [][]string
	rows = append(rows, []string{"Name", info.Name})
	rows = append(rows, []string{"Path", format.HomePath(info.Path)})

	if info.NotRepo {
		printStatusRows(out, boldStyle, rows)
		out.Println(dimStyle.Render("not a git repository"))
		return nil
	}

	if info.Version != "" {
		version := info.Version
		if strings.HasSuffix(version, repolist.DirtySuffix) {
			version = strings.TrimSuffix(version, repolist.DirtySuffix) + redStyle.Render(repolist.DirtySuffix)
		}
		rows = append(rows, []string{"Version", version})
	}
	if info.Branch != "" {
		rows = append(rows, []string{"Branch", info.Branch})
	}
	if info.Upstream != "" {
		divergence := divergenceText(info.AheadUp, info.BehindUp, greenStyle, redStyle, dimStyle)
		rows = append(rows, []string{"Upstream", info.Upstream + "  " + divergence})
	}
	if info.Push != "" && info.Push != info.Upstream {
		divergence := divergenceText(info.AheadPush, info.BehindPush, greenStyle, redStyle, dimStyle)
		rows = append(rows, []string{"Push", info.Push + "  " + divergence})
	}
	rows = append(rows, []string{"Branches", fmt.Sprintf("%d", info.Branches)})
	rows = append(rows, []string{"Stashes", fmt.Sprintf("%d", info.Stashes)})

	printStatusRows(out, boldStyle, rows)

	printFileSection(out, "Staged", info.Staged, greenStyle, boldStyle, dimStyle)
	printFileSection(out, "Unstaged", info.Unstaged, redStyle, boldStyle, dimStyle)
	printFileSection(out, "Untracked", info.Untracked, yellowStyle, boldStyle, dimStyle)

	return nil
}

// printStatusRows prints aligned key-value rows with bold keys.
func printStatusRows(out *output.Printer, boldStyle lipgloss.Style, rows [][]string) {
	maxKeyWidth := 0
	for _, row := range rows {
		if len(row[0]) > maxKeyWidth {
			maxKeyWidth = len(row[0])
		}
	}
	for _, row := range rows {
		key := fmt.Sprintf("%-*s", maxKeyWidth, row[0])
		out.Printf("%s  %s\n", boldStyle.Render(key), row[1])
	}
}

// printFileSection prints one working-tree section, collapsing an empty
// one to a single "clean" line.
func printFileSection(out *output.Printer, title string, files []string, fileStyle, boldStyle, dimStyle lipgloss.Style) {
	out.Println()
	if len(files) == 0 {
		out.Printf("%s %s\n", boldStyle.Render(title), dimStyle.Render("clean"))
		return
	}
	out.Printf("%s\n", boldStyle.Render(fmt.Sprintf("%s (%d)", title, len(files))))
	for _, f := range files {
		out.Printf("  %s\n", fileStyle.Render(f))
	}
}

// divergenceText renders ahead/behind counts against one ref.
func divergenceText(ahead, behind int, greenStyle, redStyle, dimStyle lipgloss.Style) string {
	var parts []string
	if ahead > 0 {
		parts = append(parts, greenStyle.Render(fmt.Sprintf("%d ahead", ahead)))
	}
	if behind > 0 {
		parts = append(parts, redStyle.Render(fmt.Sprintf("%d behind", behind)))
	}
	if len(parts) == 0 {
		return dimStyle.Render("up to date")
	}
	return strings.Join(parts, ", ")
}
