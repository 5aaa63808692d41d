package git

import (
	"context"
	"strings"
)

// Describe returns a human-readable version for the working tree: the
// output of "git describe --tags --dirty" when a tag is reachable,
// otherwise a date/hash pseudo-version like "20250811.1035-gf3c1e2a"
// built from the last commit. Empty when the repository has no commits.
func Describe(ctx context.Context, dir string) string {
	out, err := outputGit(ctx, dir, "describe", "--tags", "--dirty")
	if err == nil {
		return strings.TrimSpace(string(out))
	}

	out, err = outputGit(ctx, dir, "log", "-1", "--format=%cd-g%h", "--date=format:%Y%m%d.%H%M")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
