package git

import (
	"context"
	"fmt"
)

// UntrackedFiles returns paths unknown to the index, honoring ignore
// rules. Works in repositories without any commits.
func UntrackedFiles(ctx context.Context, dir string) ([]string, error) {
	files, err := outputLines(ctx, dir, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, fmt.Errorf("failed to list untracked files: %v", err)
	}
	return files, nil
}

// UnstagedFiles returns tracked paths with modifications not yet
// staged.
func UnstagedFiles(ctx context.Context, dir string) ([]string, error) {
	files, err := outputLines(ctx, dir, "diff", "--name-only")
	if err != nil {
		return nil, fmt.Errorf("failed to list unstaged files: %v", err)
	}
	return files, nil
}

// StagedFiles returns paths with changes staged for the next commit.
func StagedFiles(ctx context.Context, dir string) ([]string, error) {
	files, err := outputLines(ctx, dir, "diff", "--name-only", "--cached")
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %v", err)
	}
	return files, nil
}
