package resolve

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/repols/repols/internal/scan"
)

// Target is the repository an argument resolved to.
type Target struct {
	Name string
	Path string
}

// Repo resolves input to a repository. An exact display name match wins;
// otherwise input is treated as a literal directory path, relative paths
// resolved against workDir.
// Returns error if the input is neither a known name nor an existing directory.
func Repo(input string, repos []scan.Repo, workDir string) (*Target, error) {
	for _, r := range repos {
		if r.Name == input {
			return &Target{Name: r.Name, Path: r.Path}, nil
		}
	}

	path, err := expandTilde(input)
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("no repository named %q and %q is not a directory (run 'repols list' to see names)", input, path)
	}

	return &Target{Name: filepath.Base(path), Path: path}, nil
}

// expandTilde expands a leading ~ to the user's home directory.
func expandTilde(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
