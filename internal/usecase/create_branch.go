package usecase

import (
	"context"
	"fmt"

	"github.com/compozy/githelper/internal/repository"
)

// CreateBranchUseCase contains the logic for the create-branch command.
type CreateBranchUseCase struct {
	GitRepo repository.GitRepository
}

// Execute pulls, then creates the branch and publishes it with upstream tracking.
func (uc *CreateBranchUseCase) Execute(ctx context.Context, name string) error {
	if err := ValidateBranchName(name); err != nil {
		return err
	}
	if err := uc.GitRepo.Pull(ctx); err != nil {
		return fmt.Errorf("failed to pull: %w", err)
	}
	if err := uc.GitRepo.CreateBranch(ctx, name); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return nil
}
