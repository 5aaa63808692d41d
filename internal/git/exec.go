package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/repols/repols/internal/log"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// runGit executes a git command with context support and verbose logging.
// On failure the trimmed stderr text becomes the error message; a
// cancelled context surfaces as the context's error.
func runGit(ctx context.Context, dir string, args ...string) error {
	_, err := execGit(ctx, dir, false, args)
	return err
}

// outputGit executes a git command with context support and verbose logging,
// returning stdout.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return execGit(ctx, dir, true, args)
}

func execGit(ctx context.Context, dir string, capture bool, args []string) ([]byte, error) {
	done := log.FromContext(ctx).Command(dir, "git", args...)
	start := time.Now()

	c := exec.CommandContext(ctx, "git", gitArgs(dir, args)...)
	var stdout, stderr bytes.Buffer
	if capture {
		c.Stdout = &stdout
	}
	c.Stderr = &stderr

	err := c.Run()
	done(time.Since(start))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s", msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

// outputLines runs a git command and splits its stdout into trimmed,
// non-empty lines. A command with no output yields nil.
func outputLines(ctx context.Context, dir string, args ...string) ([]string, error) {
	out, err := outputGit(ctx, dir, args...)
	if err != nil {
		return nil, err
	}
	return splitLines(string(out)), nil
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
