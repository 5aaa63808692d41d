package git

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestUntrackedFiles(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	ctx := context.Background()

	t.Run("clean", func(t *testing.T) {
		files, err := UntrackedFiles(ctx, repoPath)
		if err != nil {
			t.Fatalf("UntrackedFiles = %v, want nil", err)
		}
		if len(files) != 0 {
			t.Errorf("UntrackedFiles = %v, want none", files)
		}
	})

	t.Run("with new files", func(t *testing.T) {
		for _, name := range []string{"new.txt", "sub/also.txt"} {
			path := filepath.Join(repoPath, name)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
				t.Fatal(err)
			}
		}

		files, err := UntrackedFiles(ctx, repoPath)
		if err != nil {
			t.Fatalf("UntrackedFiles = %v, want nil", err)
		}
		if want := []string{"new.txt", "sub/also.txt"}; !reflect.DeepEqual(files, want) {
			t.Errorf("UntrackedFiles = %v, want %v", files, want)
		}
	})

	t.Run("ignored files excluded", func(t *testing.T) {
		commitFile(t, repoPath, ".gitignore", "*.log\n", "add gitignore")
		if err := os.WriteFile(filepath.Join(repoPath, "noise.log"), []byte("x\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		files, err := UntrackedFiles(ctx, repoPath)
		if err != nil {
			t.Fatalf("UntrackedFiles = %v, want nil", err)
		}
		for _, f := range files {
			if f == "noise.log" {
				t.Errorf("UntrackedFiles = %v, should exclude ignored noise.log", files)
			}
		}
	})
}

func TestUntrackedFiles_EmptyRepo(t *testing.T) {
	t.Parallel()

	// ls-files works before the first commit
	repoPath := setupEmptyRepo(t)
	ctx := context.Background()

	if err := os.WriteFile(filepath.Join(repoPath, "first.txt"), []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := UntrackedFiles(ctx, repoPath)
	if err != nil {
		t.Fatalf("UntrackedFiles = %v, want nil", err)
	}
	if want := []string{"first.txt"}; !reflect.DeepEqual(files, want) {
		t.Errorf("UntrackedFiles = %v, want %v", files, want)
	}
}

func TestUnstagedFiles(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	ctx := context.Background()

	// Modify a tracked file without staging
	if err := os.WriteFile(filepath.Join(repoPath, "README.md"), []byte("changed\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := UnstagedFiles(ctx, repoPath)
	if err != nil {
		t.Fatalf("UnstagedFiles = %v, want nil", err)
	}
	if want := []string{"README.md"}; !reflect.DeepEqual(files, want) {
		t.Errorf("UnstagedFiles = %v, want %v", files, want)
	}
}

func TestStagedFiles(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	ctx := context.Background()

	if err := os.WriteFile(filepath.Join(repoPath, "staged.txt"), []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runGit(ctx, repoPath, "add", "staged.txt"); err != nil {
		t.Fatalf("failed to add: %v", err)
	}

	files, err := StagedFiles(ctx, repoPath)
	if err != nil {
		t.Fatalf("StagedFiles = %v, want nil", err)
	}
	if want := []string{"staged.txt"}; !reflect.DeepEqual(files, want) {
		t.Errorf("StagedFiles = %v, want %v", files, want)
	}

	// The modification is staged, not unstaged
	unstaged, err := UnstagedFiles(ctx, repoPath)
	if err != nil {
		t.Fatalf("UnstagedFiles = %v, want nil", err)
	}
	if len(unstaged) != 0 {
		t.Errorf("UnstagedFiles = %v, want none after add", unstaged)
	}
}
