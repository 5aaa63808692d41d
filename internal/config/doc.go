// Package config handles loading and validation of repols configuration.
//
// Configuration is read from ~/.config/repols/config.toml. The
// REPOLS_CONFIG environment variable overrides the file location.
//
// # Key Settings
//
//   - roots: Directories scanned for repositories, each with a search depth
//   - sort_column: Column rows are ordered by (default: "name")
//   - styles: Named column lists for the table views
//   - cycle: Style names the interactive browser steps through
//   - widths: Per-column display width limits
//
// A missing config file is not an error; Load returns the defaults. Style
// and cycle entries are only checked for shape here. Resolving column keys
// and style names happens where they are used, so a broken style does not
// take down operations that never touch it.
//
// # Path Validation
//
// Root paths must be absolute or start with ~ (no relative paths like "."
// or "..") to avoid confusion about the working directory.
package config
