package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCleanUseCase_Execute(t *testing.T) {
	excluded := []string{"master", "dev", "release"}
	t.Run("Should remove merged branches and prune origin", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		out := &bytes.Buffer{}
		uc := &CleanUseCase{GitRepo: gitRepo, ExcludedBranches: excluded, Out: out}
		ctx := context.Background()
		gitRepo.On("Fetch", ctx).Return(nil)
		gitRepo.On("MergedBranches", ctx, excluded).Return([]string{"feature-a", "feature-b"}, nil)
		gitRepo.On("RemoveLocalBranch", ctx, "feature-a").Return(nil)
		gitRepo.On("RemoveLocalBranch", ctx, "feature-b").Return(nil)
		gitRepo.On("RemotePruneOrigin", ctx).Return(nil)
		removed, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"feature-a", "feature-b"}, removed)
		assert.Equal(t, "Remove local branch: feature-a\nRemove local branch: feature-b\nRemote prune origin\n", out.String())
		gitRepo.AssertExpectations(t)
	})
	t.Run("Should do nothing when no branch is merged", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		out := &bytes.Buffer{}
		uc := &CleanUseCase{GitRepo: gitRepo, ExcludedBranches: excluded, Out: out}
		ctx := context.Background()
		gitRepo.On("Fetch", ctx).Return(nil)
		gitRepo.On("MergedBranches", ctx, excluded).Return([]string{}, nil)
		removed, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.Empty(t, removed)
		assert.Equal(t, "No branches to remove\n", out.String())
		gitRepo.AssertNotCalled(t, "RemotePruneOrigin", mock.Anything)
	})
	t.Run("Should stop at the first removal failure", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		uc := &CleanUseCase{GitRepo: gitRepo, ExcludedBranches: excluded, Out: &bytes.Buffer{}}
		ctx := context.Background()
		gitRepo.On("Fetch", ctx).Return(nil)
		gitRepo.On("MergedBranches", ctx, excluded).Return([]string{"feature-a"}, nil)
		gitRepo.On("RemoveLocalBranch", ctx, "feature-a").Return(errors.New("checked out"))
		_, err := uc.Execute(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "feature-a")
		gitRepo.AssertNotCalled(t, "RemotePruneOrigin", mock.Anything)
	})
}
