package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Root is one directory that is scanned for repositories.
type Root struct {
	Path  string `toml:"path" json:"path"`
	Depth int    `toml:"depth" json:"depth"` // extra directory levels below the root (0 = root itself)
}

// Config holds the repols configuration.
type Config struct {
	SortColumn string              `toml:"sort_column" json:"sort_column"`
	Cycle      []string            `toml:"cycle" json:"cycle,omitempty"`   // style names the browser cycles through
	Styles     map[string][]string `toml:"styles" json:"styles,omitempty"` // style name -> column keys
	Widths     map[string]int      `toml:"widths" json:"widths,omitempty"` // column key -> max display width
	Roots      []Root              `toml:"roots" json:"roots"`
}

// DefaultSortColumn is the column rows are ordered by when the config
// does not name one.
const DefaultSortColumn = "name"

// Default returns the default configuration
func Default() Config {
	return Config{
		SortColumn: DefaultSortColumn,
	}
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	// Allow ~ paths
	if len(path) >= 1 && path[0] == '~' {
		return nil
	}
	// Must be absolute
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// configPath returns the path to the config file.
// The REPOLS_CONFIG environment variable overrides the default location.
func configPath() (string, error) {
	if p := os.Getenv("REPOLS_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "repols", "config.toml"), nil
}

// Load reads config from ~/.config/repols/config.toml
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate and expand root paths (shell doesn't expand ~ in config files)
	for i := range cfg.Roots {
		field := fmt.Sprintf("roots[%d].path", i)
		if cfg.Roots[i].Path == "" {
			return Default(), fmt.Errorf("%s is required", field)
		}
		if err := ValidatePath(cfg.Roots[i].Path, field); err != nil {
			return Default(), err
		}
		expanded, err := expandPath(cfg.Roots[i].Path)
		if err != nil {
			return Default(), fmt.Errorf("expand %s: %w", field, err)
		}
		cfg.Roots[i].Path = expanded

		if cfg.Roots[i].Depth < 0 {
			return Default(), fmt.Errorf("roots[%d].depth must be >= 0, got: %d", i, cfg.Roots[i].Depth)
		}
	}

	// Styles must list at least one column; the column keys themselves are
	// checked where the style is resolved, so a bad style only breaks the
	// operations that use it.
	for name, cols := range cfg.Styles {
		if len(cols) == 0 {
			return Default(), fmt.Errorf("styles.%s must list at least one column", name)
		}
	}

	for col, w := range cfg.Widths {
		if w <= 0 {
			return Default(), fmt.Errorf("widths.%s must be > 0, got: %d", col, w)
		}
	}

	// Use defaults for empty values
	if cfg.SortColumn == "" {
		cfg.SortColumn = DefaultSortColumn
	}

	return cfg, nil
}

const defaultConfig = `# repols configuration

# Roots - directories scanned for git repositories.
# Each root needs an absolute path or a ~ path (no relative paths like ".").
# depth is how many directory levels below the root are searched:
#   depth = 0 checks only the root itself
#   depth = 1 checks the root's direct children (a flat ~/Code layout)
#   depth = 2 also checks grandchildren (a ~/Code/org/repo layout)
# A directory that is itself a repository is listed and not descended into.
#
# [[roots]]
# path = "~/Code"
# depth = 1
#
# [[roots]]
# path = "~/work/checkouts"
# depth = 2

# Column rows are sorted by. Any column key works, including keys that
# are not part of the active style. Default: "name".
#
# sort_column = "name"

# Custom styles - named column lists for the table views.
# Built-in styles: simple, versioned, status. Defining a style with a
# built-in name replaces it. Column keys:
#   name, path, version, branch, upstream,
#   behind-up, ahead-up, behind-pu, ahead-pu,
#   branches, stashes, flag, flags, status
#
# [styles]
# mine = ["name", "branch", "flags", "path"]

# Styles the interactive browser cycles through with "s".
# Default: ["simple", "versioned", "status"]
#
# cycle = ["simple", "mine"]

# Maximum display widths per column. Longer values are truncated.
#
# [widths]
# name = 20
# path = 40
`

// Template returns the commented default config file content.
func Template() string {
	return defaultConfig
}

// Init creates a default config file at ~/.config/repols/config.toml
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	// Check if file already exists (skip if force)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	// Create directory
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	// Write default config
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}

// Path returns the location of the config file for display purposes.
func Path() (string, error) {
	return configPath()
}

type configKey struct{}

type workDirKey struct{}

// WithConfig returns a context carrying cfg.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the config stored in ctx, or nil when none is set.
func FromContext(ctx context.Context) *Config {
	cfg, _ := ctx.Value(configKey{}).(*Config)
	return cfg
}

// WithWorkDir returns a context carrying the working directory commands
// should resolve relative input against.
func WithWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirKey{}, dir)
}

// WorkDirFromContext returns the working directory stored in ctx.
// Falls back to os.Getwd when unset or empty.
func WorkDirFromContext(ctx context.Context) string {
	if dir, ok := ctx.Value(workDirKey{}).(string); ok && dir != "" {
		return dir
	}
	wd, _ := os.Getwd()
	return wd
}
