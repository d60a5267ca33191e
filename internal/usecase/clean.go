package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/compozy/githelper/internal/repository"
)

// CleanUseCase contains the logic for the clean command.
type CleanUseCase struct {
	GitRepo          repository.GitRepository
	ExcludedBranches []string
	Out              io.Writer
}

// Execute removes local branches merged into HEAD and prunes stale remote refs.
// It returns the removed branches.
func (uc *CleanUseCase) Execute(ctx context.Context) ([]string, error) {
	if err := uc.GitRepo.Fetch(ctx); err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	branches, err := uc.GitRepo.MergedBranches(ctx, uc.ExcludedBranches...)
	if err != nil {
		return nil, fmt.Errorf("failed to list merged branches: %w", err)
	}
	if len(branches) == 0 {
		fmt.Fprintln(uc.Out, "No branches to remove")
		return branches, nil
	}
	for _, branch := range branches {
		fmt.Fprintf(uc.Out, "Remove local branch: %s\n", branch)
		if err := uc.GitRepo.RemoveLocalBranch(ctx, branch); err != nil {
			return nil, fmt.Errorf("failed to remove local branch %s: %w", branch, err)
		}
	}
	fmt.Fprintln(uc.Out, "Remote prune origin")
	if err := uc.GitRepo.RemotePruneOrigin(ctx); err != nil {
		return nil, fmt.Errorf("failed to prune origin: %w", err)
	}
	return branches, nil
}
