package usecase

import (
	"context"
	"fmt"

	"github.com/compozy/githelper/internal/domain"
	"github.com/compozy/githelper/internal/repository"
)

// TagStatus holds the local and remote versions; a nil version could not be determined.
type TagStatus struct {
	Local     *domain.Version
	Remote    *domain.Version
	LocalErr  error
	RemoteErr error
}

// Diverged reports whether both versions are known and differ.
func (s *TagStatus) Diverged() bool {
	return s.Local != nil && s.Remote != nil && s.Local.NotEqual(*s.Remote)
}

// ShowTagUseCase contains the logic for the show-tag command.
type ShowTagUseCase struct {
	GitRepo repository.GitRepository
}

// Execute fetches and resolves both versions. Resolution failures are
// reported in the status rather than returned.
func (uc *ShowTagUseCase) Execute(ctx context.Context) (*TagStatus, error) {
	if err := uc.GitRepo.Fetch(ctx); err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	status := &TagStatus{}
	if local, err := uc.GitRepo.LocalVersion(ctx); err != nil {
		status.LocalErr = err
	} else {
		status.Local = &local
	}
	if remote, err := uc.GitRepo.RemoteVersion(ctx); err != nil {
		status.RemoteErr = err
	} else {
		status.Remote = &remote
	}
	return status, nil
}
