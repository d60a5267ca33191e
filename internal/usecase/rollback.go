package usecase

import (
	"context"
	"fmt"

	"github.com/compozy/githelper/internal/repository"
)

// RollbackUseCase undoes the last commit, keeping its changes staged.
type RollbackUseCase struct {
	GitRepo repository.GitRepository
}

// Execute runs the use case.
func (uc *RollbackUseCase) Execute(ctx context.Context) error {
	if err := uc.GitRepo.RollbackLastCommit(ctx); err != nil {
		return fmt.Errorf("failed to roll back last commit: %w", err)
	}
	return nil
}
