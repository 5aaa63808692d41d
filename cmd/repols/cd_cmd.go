package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/repols/repols/internal/config"
	"github.com/repols/repols/internal/log"
	"github.com/repols/repols/internal/output"
	"github.com/repols/repols/internal/resolve"
	"github.com/repols/repols/internal/ui"
)

func newCdCmd() *cobra.Command {
	var interactive bool
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "cd [name|path]",
		Short:   "Print a repository path for shell scripting",
		GroupID: GroupUtility,
		Args:    cobra.MaximumNArgs(1),
		Long: `Print the path of a repository for shell scripting.

Use with shell command substitution: cd "$(repols cd api)"

The argument is a display name from 'repols list'; anything that is not
a known name is treated as a directory path.`,
		Example: `  cd "$(repols cd api)"     # cd to the repository named api
  cd "$(repols cd -i)"      # pick interactively
  repols cd --copy api      # copy the path to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			var targetPath string

			if interactive {
				if err := ui.RequireTerminal(); err != nil {
					return err
				}
				repos, err := scanRepos(ctx, cfg)
				if err != nil {
					return err
				}
				if len(repos) == 0 {
					return fmt.Errorf("no repositories found")
				}
				result, err := ui.RunSelector(repos)
				if err != nil {
					return err
				}
				if result.Cancelled {
					os.Exit(1)
				}
				targetPath = result.Repo.Path
			} else {
				if len(args) == 0 {
					return fmt.Errorf("repository name required (or -i to pick interactively)")
				}
				// A path argument must resolve even when no roots are
				// configured, so a failed scan only disables name lookup.
				repos, err := scanRepos(ctx, cfg)
				if err != nil {
					l.Debug("scan skipped", "error", err)
				}
				target, err := resolve.Repo(args[0], repos, config.WorkDirFromContext(ctx))
				if err != nil {
					return err
				}
				targetPath = target.Path
			}

			// Copy to clipboard if requested
			if copyToClipboard {
				if err := clipboard.WriteAll(targetPath); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				}
			}

			// Print path
			out.Println(targetPath)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Interactive mode with fuzzy search")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy path to clipboard")

	// Register completions
	cmd.ValidArgsFunction = completeRepoNames

	return cmd
}
