package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/compozy/githelper/internal/prompt"
	"github.com/compozy/githelper/internal/repository"
)

var (
	// ErrNoBranches indicates there is nothing to choose from.
	ErrNoBranches = errors.New("there are no branches to remove")
	// ErrCurrentBranch indicates an attempt to remove the checked out branch.
	ErrCurrentBranch = errors.New("can not remove the current branch")
)

// RemoveBranchUseCase contains the logic for the remove-branch command.
type RemoveBranchUseCase struct {
	GitRepo  repository.GitRepository
	Prompter prompt.Prompter
	Out      io.Writer
}

// Candidates lists removable branches, failing with ErrNoBranches when there are none.
func (uc *RemoveBranchUseCase) Candidates(ctx context.Context) ([]string, error) {
	branches, err := uc.GitRepo.Branches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	if len(branches) == 0 {
		return nil, ErrNoBranches
	}
	return branches, nil
}

// Execute removes the local branch and, after confirmation, its upstream.
func (uc *RemoveBranchUseCase) Execute(ctx context.Context, branch string) error {
	current, err := uc.GitRepo.LocalBranch(ctx)
	if err != nil {
		return fmt.Errorf("failed to determine current branch: %w", err)
	}
	if branch == current {
		return fmt.Errorf("invalid value: `%s` for argument `branch`: %w", branch, ErrCurrentBranch)
	}
	upstreams, err := uc.GitRepo.BranchMap(ctx)
	if err != nil {
		return fmt.Errorf("failed to read branch upstreams: %w", err)
	}
	if err := uc.GitRepo.RemoveLocalBranch(ctx, branch); err != nil {
		return fmt.Errorf("failed to remove local branch %s: %w", branch, err)
	}
	fmt.Fprintf(uc.Out, "Local branch: %s is successfully removed.\n", branch)

	upstream, tracked := upstreams[branch]
	if !tracked || !uc.Prompter.Interactive() {
		return nil
	}
	confirmed, err := uc.Prompter.Confirm(
		fmt.Sprintf("Do you also want to remove the remote branch: `%s`?", upstream), false)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}
	if err := uc.GitRepo.RemoveRemoteBranch(ctx, upstream); err != nil {
		return fmt.Errorf("failed to remove remote branch %s: %w", upstream, err)
	}
	fmt.Fprintf(uc.Out, "Remote branch: %s is successfully removed.\n", upstream)
	return nil
}
