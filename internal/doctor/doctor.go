package doctor

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/repols/repols/internal/config"
	"github.com/repols/repols/internal/git"
	"github.com/repols/repols/internal/output"
	"github.com/repols/repols/internal/repolist"
	"github.com/repols/repols/internal/scan"
)

// Run checks the environment and configuration and prints a report.
// Returns an error when issues were found so the command exits nonzero.
func Run(ctx context.Context) error {
	out := output.FromContext(ctx)

	var stats Stats
	var issues []Issue

	// Environment: every column query shells out to git.
	if err := git.CheckGit(); err != nil {
		issues = append(issues, Issue{
			Key:         "git",
			Description: err.Error(),
			Category:    CategoryEnvironment,
		})
	} else {
		stats.GitOK = true
	}

	if path, err := config.Path(); err == nil {
		stats.ConfigPath = path
	}

	cfg, err := config.Load()
	if err != nil {
		issues = append(issues, Issue{
			Key:         "config",
			Description: err.Error(),
			Category:    CategoryConfig,
		})
	} else {
		stats.ConfigOK = true
	}

	// Checks below read the config; skip them when it did not load so a
	// single parse error does not fan out into misleading root issues.
	if stats.ConfigOK {
		issues = append(issues, checkRoots(ctx, &cfg, &stats)...)
		issues = append(issues, checkStyles(&cfg, &stats)...)
	}

	printSummary(out, stats)

	if len(issues) == 0 {
		out.Println("\n✓ No issues found")
		return nil
	}

	out.Printf("\nFound %d issues:\n", len(issues))
	printIssuesByCategory(out, issues)
	return fmt.Errorf("%d issues found", len(issues))
}

// checkRoots verifies the scan roots exist and counts the repositories
// under the reachable ones.
func checkRoots(ctx context.Context, cfg *config.Config, stats *Stats) []Issue {
	var issues []Issue

	if len(cfg.Roots) == 0 {
		return []Issue{{
			Key:         "roots",
			Description: "no roots configured (run 'repols config init' to create a config)",
			Category:    CategoryRoots,
		}}
	}

	var healthy []scan.Root
	for _, r := range cfg.Roots {
		info, err := os.Stat(r.Path)
		switch {
		case err != nil:
			issues = append(issues, Issue{
				Key:         r.Path,
				Description: "root does not exist",
				Category:    CategoryRoots,
			})
			stats.RootsBad++
		case !info.IsDir():
			issues = append(issues, Issue{
				Key:         r.Path,
				Description: "root is not a directory",
				Category:    CategoryRoots,
			})
			stats.RootsBad++
		default:
			healthy = append(healthy, scan.Root{Path: r.Path, Depth: r.Depth})
			stats.RootsOK++
		}
	}

	stats.Repos = len(scan.Scan(ctx, healthy))
	return issues
}

// checkStyles resolves styles, cycle, and sort column against the column
// registry.
func checkStyles(cfg *config.Config, stats *Stats) []Issue {
	var issues []Issue

	styles := repolist.DefaultStyles()
	for name, cols := range cfg.Styles {
		styles[name] = cols
	}

	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := repolist.Columns(styles[name]); err != nil {
			issues = append(issues, Issue{
				Key:         "styles." + name,
				Description: err.Error(),
				Category:    CategoryConfig,
			})
			stats.StylesBad++
		} else {
			stats.StylesOK++
		}
	}

	cycle := cfg.Cycle
	if len(cycle) == 0 {
		cycle = repolist.DefaultCycle()
	}
	stats.CycleOK = true
	for _, name := range cycle {
		if _, ok := styles[name]; !ok {
			issues = append(issues, Issue{
				Key:         "cycle",
				Description: fmt.Sprintf("%q is not a configured style", name),
				Category:    CategoryConfig,
			})
			stats.CycleOK = false
		}
	}

	if _, ok := repolist.Column(cfg.SortColumn); !ok {
		issues = append(issues, Issue{
			Key:         "sort_column",
			Description: fmt.Sprintf("unknown column %q (known: %s)", cfg.SortColumn, strings.Join(repolist.ColumnKeys(), ", ")),
			Category:    CategoryConfig,
		})
	} else {
		stats.SortOK = true
	}

	return issues
}

// printSummary prints a categorized summary.
func printSummary(out *output.Printer, stats Stats) {
	out.Println()

	if stats.GitOK {
		out.Println("  ✓ git found on PATH")
	}
	if stats.ConfigOK {
		out.Printf("  ✓ config valid: %s\n", stats.ConfigPath)
	}
	if stats.RootsOK > 0 {
		out.Printf("  ✓ %d roots reachable, %d repositories\n", stats.RootsOK, stats.Repos)
	}
	if stats.RootsBad > 0 {
		out.Printf("  ⚠ %d roots unreachable\n", stats.RootsBad)
	}
	if stats.StylesOK > 0 {
		out.Printf("  ✓ %d styles resolve\n", stats.StylesOK)
	}
	if stats.StylesBad > 0 {
		out.Printf("  ⚠ %d styles with unknown columns\n", stats.StylesBad)
	}
}

// printIssuesByCategory groups and prints issues.
func printIssuesByCategory(out *output.Printer, issues []Issue) {
	byCategory := make(map[IssueCategory][]Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	categoryNames := map[IssueCategory]string{
		CategoryEnvironment: "Environment issues",
		CategoryConfig:      "Config issues",
		CategoryRoots:       "Root issues",
	}

	for _, cat := range []IssueCategory{CategoryEnvironment, CategoryConfig, CategoryRoots} {
		catIssues := byCategory[cat]
		if len(catIssues) == 0 {
			continue
		}

		out.Printf("\n%s:\n", categoryNames[cat])
		for _, issue := range catIssues {
			out.Printf("  • %s: %s\n", issue.Key, issue.Description)
		}
	}
}
