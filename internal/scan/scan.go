// Package scan discovers git repositories under configured root
// directories and assigns each one a unique display name.
//
// Discovery is a bounded recursive walk: a directory carrying a .git
// entry is recorded as a repository and never descended into, dot
// directories are skipped, and unreadable directories are skipped
// silently. Display names start as directory basenames and are
// disambiguated by [Uniquify] with ancestor segments.
package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/repols/repols/internal/git"
	"github.com/repols/repols/internal/log"
)

// Root is a directory to scan. Depth bounds how many directory levels
// below the root the walk may descend; 0 inspects the root itself only.
type Root struct {
	Path  string
	Depth int
}

// Repo is a discovered repository. Name starts as the directory
// basename and is rewritten by [Uniquify]; Path is absolute.
type Repo struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Scan walks each root in order and returns the repositories found, in
// walk order: roots as configured, lexical order within a directory.
// Missing or unreadable directories yield nothing. Scan never fails.
func Scan(ctx context.Context, roots []Root) []Repo {
	l := log.FromContext(ctx)

	var repos []Repo
	for _, root := range roots {
		l.Debug("scanning root", "path", root.Path, "depth", root.Depth)
		repos = append(repos, scanDir(root.Path, root.Depth)...)
	}
	return repos
}

func scanDir(dir string, depth int) []Repo {
	if git.IsRepoDir(dir) {
		return []Repo{{Name: filepath.Base(dir), Path: dir}}
	}
	if depth <= 0 {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var repos []Repo
	for _, entry := range entries {
		// Symlinks are not followed, dot directories are not entered
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		repos = append(repos, scanDir(filepath.Join(dir, entry.Name()), depth-1)...)
	}
	return repos
}
