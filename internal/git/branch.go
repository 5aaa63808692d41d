package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// CurrentBranch returns the short name of the checked-out branch, or
// "(detached)" for a detached HEAD.
func CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %v", err)
	}
	branch := strings.TrimSpace(string(out))
	if branch == "" {
		return "(detached)", nil
	}
	return branch, nil
}

// UpstreamRef returns the short upstream ref of HEAD ("origin/main"),
// or "" when no upstream is configured.
func UpstreamRef(ctx context.Context, dir string) string {
	return abbrevRef(ctx, dir, "@{upstream}")
}

// PushRef returns the short push target ref of HEAD, or "" when none
// is configured. This differs from the upstream under triangular
// workflows (push.default, remote.pushDefault).
func PushRef(ctx context.Context, dir string) string {
	return abbrevRef(ctx, dir, "@{push}")
}

func abbrevRef(ctx context.Context, dir, ref string) string {
	out, err := outputGit(ctx, dir, "rev-parse", "--abbrev-ref", ref)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// AheadBehind returns how many commits HEAD is ahead of and behind ref.
func AheadBehind(ctx context.Context, dir, ref string) (ahead, behind int, err error) {
	out, err := outputGit(ctx, dir, "rev-list", "--count", "--left-right", "HEAD..."+ref)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count divergence from %s: %v", ref, err)
	}
	return parseAheadBehind(string(out))
}

// parseAheadBehind parses "N\tM" from rev-list --count --left-right.
func parseAheadBehind(s string) (ahead, behind int, err error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q", strings.TrimSpace(s))
	}
	if ahead, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q", strings.TrimSpace(s))
	}
	if behind, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q", strings.TrimSpace(s))
	}
	return ahead, behind, nil
}

// LocalBranches returns the short names of all local branches.
func LocalBranches(ctx context.Context, dir string) ([]string, error) {
	branches, err := outputLines(ctx, dir, "branch", "--format=%(refname:short)")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %v", err)
	}
	return branches, nil
}
