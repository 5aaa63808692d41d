package main

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/repols/repols/internal/config"
	"github.com/repols/repols/internal/format"
	"github.com/repols/repols/internal/output"
	"github.com/repols/repols/internal/repolist"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage repols configuration.

Config file: ~/.config/repols/config.toml (override: REPOLS_CONFIG)`,
		Example: `  repols config init    # Create default config
  repols config show    # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create a default config file at ~/.config/repols/config.toml.

The file is a commented template; uncomment and edit the [[roots]]
entries to tell repols where to look for repositories.`,
		Example: `  repols config init       # Create the config file
  repols config init -f    # Overwrite an existing config
  repols config init -s    # Print the template to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if stdout {
				out.Print(config.Template())
				return nil
			}

			path, err := config.Init(force)
			if err != nil {
				return err
			}

			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show the effective configuration: the config file location, the sort
column, every style (built-in and configured) with its columns, the
browser cycle, width overrides, and the scan roots.`,
		Example: `  repols config show           # Show effective config
  repols config show --json    # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if jsonOutput {
				return out.JSON(cfg)
			}

			path, err := config.Path()
			if err == nil {
				out.Printf("Config file: %s\n", format.HomePath(path))
				out.Println()
			}

			set, err := repolist.Merged(cfg.Styles, cfg.Cycle)
			if err != nil {
				return err
			}

			out.Printf("sort_column: %s\n", cfg.SortColumn)
			out.Printf("cycle: %s\n", strings.Join(set.Cycle(), ", "))

			out.Println("styles:")
			for _, name := range set.Names() {
				style, _ := set.Lookup(name)
				out.Printf("  %s: %s\n", name, strings.Join(style.Columns, ", "))
			}

			if len(cfg.Widths) > 0 {
				keys := make([]string, 0, len(cfg.Widths))
				for key := range cfg.Widths {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				out.Println("widths:")
				for _, key := range keys {
					out.Printf("  %s: %d\n", key, cfg.Widths[key])
				}
			}

			out.Println("roots:")
			if len(cfg.Roots) == 0 {
				out.Println("  (none - run 'repols config init' to create a config)")
			}
			for _, r := range cfg.Roots {
				out.Printf("  %s (depth %d)\n", format.HomePath(r.Path), r.Depth)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
