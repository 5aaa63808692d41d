//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/repols/repols/internal/config"
	"github.com/repols/repols/internal/log"
	"github.com/repols/repols/internal/output"
)

// resolvePath resolves symlinks in path. On macOS t.TempDir() returns
// /var/... which is a symlink to /private/var/..., breaking comparisons
// against git output.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// testContext returns a context carrying cfg, workDir, a discard
// logger, and a buffer capturing primary output.
func testContext(t *testing.T, cfg *config.Config, workDir string) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, false))
	ctx = output.WithPrinter(ctx, &buf)
	ctx = config.WithConfig(ctx, cfg)
	ctx = config.WithWorkDir(ctx, workDir)
	return ctx, &buf
}

// rootConfig builds a config scanning each dir one level deep.
func rootConfig(dirs ...string) *config.Config {
	cfg := config.Default()
	for _, dir := range dirs {
		cfg.Roots = append(cfg.Roots, config.Root{Path: dir, Depth: 1})
	}
	return &cfg
}

// runGitCommand runs git in dir and fails the test on error.
func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return strings.TrimSpace(string(out))
}

// setupTestRepo creates a git repo with an initial commit in dir/name.
// Returns the absolute path to the created repo (with symlinks resolved).
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)
	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGitCommand(t, repoPath, "init", "-b", "main")
	runGitCommand(t, repoPath, "config", "user.email", "test@test.com")
	runGitCommand(t, repoPath, "config", "user.name", "Test User")
	runGitCommand(t, repoPath, "config", "commit.gpgsign", "false")

	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("# "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runGitCommand(t, repoPath, "add", "README.md")
	runGitCommand(t, repoPath, "commit", "-m", "Initial commit")

	return repoPath
}

// setupTestRepoWithOrigin creates a git repo whose main branch tracks a
// local bare origin, so upstream divergence queries have a ref to
// compare against.
func setupTestRepoWithOrigin(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)
	barePath := filepath.Join(dir, name+"-origin.git")
	if err := os.MkdirAll(barePath, 0755); err != nil {
		t.Fatalf("failed to create bare repo dir: %v", err)
	}
	runGitCommand(t, barePath, "init", "--bare")

	repoPath := setupTestRepo(t, dir, name)
	runGitCommand(t, repoPath, "remote", "add", "origin", barePath)
	runGitCommand(t, repoPath, "push", "-u", "origin", "main")

	return repoPath
}

// makeDirty adds an untracked file to the working tree.
func makeDirty(t *testing.T, repoPath string) {
	t.Helper()
	filePath := filepath.Join(repoPath, "dirty.txt")
	if err := os.WriteFile(filePath, []byte("uncommitted changes\n"), 0644); err != nil {
		t.Fatalf("failed to create dirty file: %v", err)
	}
}

// modifyTracked appends to the committed README, producing an unstaged
// change (this is what makes git describe report -dirty).
func modifyTracked(t *testing.T, repoPath string) {
	t.Helper()
	readmePath := filepath.Join(repoPath, "README.md")
	f, err := os.OpenFile(readmePath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("failed to open README: %v", err)
	}
	defer f.Close()
	if _, err := f.WriteString("more\n"); err != nil {
		t.Fatalf("failed to modify README: %v", err)
	}
}

// stageFile writes and stages a new file without committing it.
func stageFile(t *testing.T, repoPath, filename string) {
	t.Helper()
	filePath := filepath.Join(repoPath, filename)
	if err := os.WriteFile(filePath, []byte("content for "+filename+"\n"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	runGitCommand(t, repoPath, "add", filename)
}
