package git

import (
	"context"
	"fmt"
)

// Stashes returns the stash entries of the repository, most recent
// first, as "stash@{N}" names.
func Stashes(ctx context.Context, dir string) ([]string, error) {
	stashes, err := outputLines(ctx, dir, "stash", "list", "--format=%gd")
	if err != nil {
		return nil, fmt.Errorf("failed to list stashes: %v", err)
	}
	return stashes, nil
}
