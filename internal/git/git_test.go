package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// configureTestRepo sets git user config and disables GPG signing.
func configureTestRepo(t *testing.T, repoPath string) {
	t.Helper()
	ctx := context.Background()
	for _, args := range [][]string{
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
	} {
		if err := runGit(ctx, repoPath, args...); err != nil {
			t.Fatalf("failed to run git %v: %v", args, err)
		}
	}
}

// setupTestRepo creates a git repo with main branch, initial commit, and
// git config. Returns the resolved repo path.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	tmpDir := resolveTempDir(t)
	repoPath := filepath.Join(tmpDir, "test-repo")

	ctx := context.Background()
	if err := runGit(ctx, "", "init", "-b", "main", repoPath); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	configureTestRepo(t, repoPath)
	commitFile(t, repoPath, "README.md", "# test-repo\n", "initial commit")

	return repoPath
}

// setupEmptyRepo creates a git repo without any commits.
func setupEmptyRepo(t *testing.T) string {
	t.Helper()
	tmpDir := resolveTempDir(t)
	repoPath := filepath.Join(tmpDir, "empty-repo")

	ctx := context.Background()
	if err := runGit(ctx, "", "init", "-b", "main", repoPath); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}
	configureTestRepo(t, repoPath)

	return repoPath
}

// commitFile writes a file and commits it.
func commitFile(t *testing.T, repoPath, name, content, message string) {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(repoPath, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	if err := runGit(ctx, repoPath, "add", name); err != nil {
		t.Fatalf("failed to add %s: %v", name, err)
	}
	if err := runGit(ctx, repoPath, "commit", "-m", message); err != nil {
		t.Fatalf("failed to commit %s: %v", name, err)
	}
}

// setupTrackingRepo clones a repo so that main tracks origin/main in the
// clone. Returns (origin, clone) paths.
func setupTrackingRepo(t *testing.T) (origin, clone string) {
	t.Helper()
	ctx := context.Background()

	origin = setupTestRepo(t)
	clone = filepath.Join(resolveTempDir(t), "clone")
	if err := runGit(ctx, "", "clone", origin, clone); err != nil {
		t.Fatalf("failed to clone: %v", err)
	}
	configureTestRepo(t, clone)

	return origin, clone
}
