package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsRepoDir reports whether path is the top of a git working tree,
// i.e. contains a .git entry. No subprocess is spawned.
func IsRepoDir(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	if err != nil {
		return false
	}
	// .git is a directory in a regular repo and a file in a linked worktree
	return info.IsDir() || info.Mode().IsRegular()
}

// TopLevel returns the root of the working tree enclosing dir.
func TopLevel(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %v", err)
	}
	return strings.TrimSpace(string(out)), nil
}
