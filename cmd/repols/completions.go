package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/repols/repols/internal/config"
	"github.com/repols/repols/internal/repolist"
)

// completionContext returns the command context and config for a
// completion call, loading the config directly when the command runs
// without one.
func completionContext(cmd *cobra.Command) (context.Context, *config.Config) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg := config.FromContext(ctx); cfg != nil {
		return ctx, cfg
	}
	loaded, err := config.Load()
	if err != nil {
		return ctx, nil
	}
	return ctx, &loaded
}

// completeRepoNames offers the display names of all discovered
// repositories.
func completeRepoNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ctx, cfg := completionContext(cmd)
	if cfg == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	repos, err := scanRepos(ctx, cfg)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, r := range repos {
		if strings.HasPrefix(r.Name, toComplete) {
			matches = append(matches, r.Name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeStyleNames offers the merged style names for --style.
func completeStyleNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	_, cfg := completionContext(cmd)
	if cfg == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	set, err := repolist.Merged(cfg.Styles, cfg.Cycle)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, name := range set.Names() {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeColumnKeys offers the registered column keys for --sort.
func completeColumnKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, key := range repolist.ColumnKeys() {
		if strings.HasPrefix(key, toComplete) {
			matches = append(matches, key)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
