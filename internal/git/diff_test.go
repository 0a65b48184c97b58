package git

import (
	"context"
	"strings"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
)

func TestLastCommitDiff(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("patch against parent commit", func(t *testing.T) {
		t.Parallel()
		dir, raw := setupTestRepo(t)
		commitFile(t, raw, dir, "README.md", "# test\nmore\n", "Extend readme",
			time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC))

		repo, err := Open(dir)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		diff, err := repo.LastCommitDiff(ctx, "main")
		if err != nil {
			t.Fatalf("LastCommitDiff failed: %v", err)
		}
		if !strings.Contains(diff, "README.md") {
			t.Errorf("diff missing file name:\n%s", diff)
		}
		if !strings.Contains(diff, "+more") {
			t.Errorf("diff missing added line:\n%s", diff)
		}
	})

	t.Run("root commit diffs against empty tree", func(t *testing.T) {
		t.Parallel()
		dir, _ := setupTestRepo(t)

		repo, err := Open(dir)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		diff, err := repo.LastCommitDiff(ctx, "main")
		if err != nil {
			t.Fatalf("LastCommitDiff failed: %v", err)
		}
		if !strings.Contains(diff, "+# test") {
			t.Errorf("root diff missing added content:\n%s", diff)
		}
	})

	t.Run("empty commit yields sentinel", func(t *testing.T) {
		t.Parallel()
		dir, raw := setupTestRepo(t)
		wt, err := raw.Worktree()
		if err != nil {
			t.Fatalf("failed to get worktree: %v", err)
		}
		_, err = wt.Commit("Nothing changed", &gogit.CommitOptions{
			Author:            testSignature(time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)),
			Committer:         testSignature(time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)),
			AllowEmptyCommits: true,
		})
		if err != nil {
			t.Fatalf("failed to create empty commit: %v", err)
		}

		repo, err := Open(dir)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		diff, err := repo.LastCommitDiff(ctx, "main")
		if err != nil {
			t.Fatalf("LastCommitDiff failed: %v", err)
		}
		if diff != NoChanges {
			t.Errorf("diff = %q, want %q", diff, NoChanges)
		}
	})

	t.Run("resolves remote-tracking names", func(t *testing.T) {
		t.Parallel()
		dir, raw := setupTestRepo(t)
		head, err := raw.Head()
		if err != nil {
			t.Fatalf("failed to read HEAD: %v", err)
		}
		setupRemoteBranch(t, raw, "feature", head.Hash())

		repo, err := Open(dir)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		diff, err := repo.LastCommitDiff(ctx, "origin/feature")
		if err != nil {
			t.Fatalf("LastCommitDiff failed: %v", err)
		}
		if !strings.Contains(diff, "README.md") {
			t.Errorf("diff missing file name:\n%s", diff)
		}
	})

	t.Run("unknown branch fails", func(t *testing.T) {
		t.Parallel()
		dir, _ := setupTestRepo(t)

		repo, err := Open(dir)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		_, err = repo.LastCommitDiff(ctx, "does-not-exist")
		if err == nil {
			t.Fatal("expected error for unknown branch")
		}
		gitErr, ok := AsError(err)
		if !ok {
			t.Fatalf("error type = %T, want *Error", err)
		}
		if gitErr.Kind != OperationFailed {
			t.Errorf("Kind = %v, want %v", gitErr.Kind, OperationFailed)
		}
		if !strings.Contains(gitErr.Msg, "does-not-exist") {
			t.Errorf("Msg = %q, want branch name included", gitErr.Msg)
		}
	})
}
