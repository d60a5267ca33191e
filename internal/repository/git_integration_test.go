package repository

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/compozy/githelper/internal/domain"
	"github.com/compozy/githelper/internal/process"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git executable not available")
	}
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_TERMINAL_PROMPT", "0")
}

// setupTestRepo creates a working copy with one commit and a bare origin remote.
func setupTestRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	cfg, err := repo.Config()
	require.NoError(t, err)
	cfg.User.Name = "Test User"
	cfg.User.Email = "test@example.com"
	require.NoError(t, repo.SetConfig(cfg))

	commitFile(t, repo, dir, "test.txt", "test content")

	origin := filepath.Join(t.TempDir(), "origin.git")
	_, err = git.PlainInit(origin, true)
	require.NoError(t, err)
	_, err = repo.CreateRemote(&config.RemoteConfig{Name: "origin", URLs: []string{origin}})
	require.NoError(t, err)
	return dir, repo
}

func commitFile(t *testing.T, repo *git.Repository, dir, name, content string) {
	t.Helper()
	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	_, err = wt.Add(name)
	require.NoError(t, err)
	_, err = wt.Commit("Add "+name, &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
}

func TestNewGitRepository(t *testing.T) {
	t.Run("Should detect the working copy from a subdirectory", func(t *testing.T) {
		dir, _ := setupTestRepo(t)
		sub := filepath.Join(dir, "nested", "deeper")
		require.NoError(t, os.MkdirAll(sub, 0o750))
		root, err := WorkingCopyRoot(sub)
		require.NoError(t, err)
		assert.Equal(t, dir, root)
		gitRepo, err := NewGitRepository(process.NewExecRunner(process.WithWorkingDir(root)), sub)
		assert.NoError(t, err)
		assert.NotNil(t, gitRepo)
	})
	t.Run("Should return error for non-git directory", func(t *testing.T) {
		gitRepo, err := NewGitRepository(process.NewExecRunner(), t.TempDir())
		assert.Error(t, err)
		assert.Nil(t, gitRepo)
	})
}

func TestGitRepository_Integration(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	dir, repo := setupTestRepo(t)
	gitRepo, err := NewGitRepository(process.NewExecRunner(process.WithWorkingDir(dir)), dir)
	require.NoError(t, err)

	t.Run("Should fail LocalVersion before any tag exists", func(t *testing.T) {
		_, err := gitRepo.LocalVersion(ctx)
		assert.True(t, process.IsProcessFailed(err))
		tagged, err := gitRepo.IsTagged(ctx)
		require.NoError(t, err)
		assert.False(t, tagged)
	})
	t.Run("Should fail RemoteVersion while origin has no tags", func(t *testing.T) {
		tag := domain.NewVersion(1, 4, 2)
		require.NoError(t, gitRepo.CreateLocalTag(ctx, tag))
		local, err := gitRepo.LocalVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, "1.4.2", local.String())
		_, err = gitRepo.RemoteVersion(ctx)
		assert.ErrorIs(t, err, ErrNoRemoteVersion)
		remoteTags, err := gitRepo.RemoteTags(ctx)
		require.NoError(t, err)
		assert.Empty(t, remoteTags)
		require.NoError(t, gitRepo.RemoveLocalTag(ctx, tag))
	})
	t.Run("Should create, detect and publish tags", func(t *testing.T) {
		tag := domain.NewVersion(1, 9, 0)
		require.NoError(t, gitRepo.CreateLocalTag(ctx, tag))
		exists, err := gitRepo.LocalTagExists(ctx, tag)
		require.NoError(t, err)
		assert.True(t, exists)
		tagged, err := gitRepo.IsTagged(ctx)
		require.NoError(t, err)
		assert.True(t, tagged)

		commitFile(t, repo, dir, "second.txt", "more")
		require.NoError(t, gitRepo.CreateLocalTag(ctx, domain.NewVersion(1, 10, 0)))
		local, err := gitRepo.LocalVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, "1.10.0", local.String())

		require.NoError(t, gitRepo.PushTags(ctx))
		remote, err := gitRepo.RemoteVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, "1.10.0", remote.String())
		remoteExists, err := gitRepo.RemoteTagExists(ctx, tag)
		require.NoError(t, err)
		assert.True(t, remoteExists)
	})
	t.Run("Should remove local and remote tags", func(t *testing.T) {
		tag := domain.NewVersion(1, 9, 0)
		require.NoError(t, gitRepo.RemoveRemoteTag(ctx, tag))
		require.NoError(t, gitRepo.RemoveLocalTag(ctx, tag))
		exists, err := gitRepo.LocalTagExists(ctx, tag)
		require.NoError(t, err)
		assert.False(t, exists)
		remoteExists, err := gitRepo.RemoteTagExists(ctx, tag)
		require.NoError(t, err)
		assert.False(t, remoteExists)
	})
	t.Run("Should track local changes", func(t *testing.T) {
		changed, err := gitRepo.HasLocalChanges(ctx)
		require.NoError(t, err)
		assert.False(t, changed)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "test.txt"), []byte("edited"), 0o600))
		changed, err = gitRepo.HasLocalChanges(ctx)
		require.NoError(t, err)
		assert.True(t, changed)
		require.NoError(t, gitRepo.PushStash(ctx))
		changed, err = gitRepo.HasLocalChanges(ctx)
		require.NoError(t, err)
		assert.False(t, changed)
	})
	t.Run("Should list branches without the current one", func(t *testing.T) {
		current, err := gitRepo.LocalBranch(ctx)
		require.NoError(t, err)
		runner := process.NewExecRunner(process.WithWorkingDir(dir))
		_, err = runner.Run(ctx, "git", "branch", "feature/merged")
		require.NoError(t, err)
		branches, err := gitRepo.Branches(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"feature/merged"}, branches)
		assert.NotContains(t, branches, current)
		merged, err := gitRepo.MergedBranches(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"feature/merged"}, merged)
		require.NoError(t, gitRepo.RemoveLocalBranch(ctx, "feature/merged"))
	})
	t.Run("Should report no upstream for an unpublished branch", func(t *testing.T) {
		_, ok, err := gitRepo.UpstreamRemoteBranch(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestGitRepository_IsTaggedWithoutCommits(t *testing.T) {
	requireGit(t)
	t.Run("Should report an unborn HEAD as untagged", func(t *testing.T) {
		dir := t.TempDir()
		_, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		gitRepo, err := NewGitRepository(process.NewExecRunner(process.WithWorkingDir(dir)), dir)
		require.NoError(t, err)
		tagged, err := gitRepo.IsTagged(context.Background())
		require.NoError(t, err)
		assert.False(t, tagged)
	})
}
