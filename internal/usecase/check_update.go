package usecase

import (
	"context"
	"fmt"

	"github.com/compozy/githelper/internal/repository"
)

// CheckUpdateUseCase looks for a release newer than the running build.
type CheckUpdateUseCase struct {
	GithubRepo     repository.GithubRepository
	CurrentVersion string
}

// Execute returns the newer release version, or "" when the build is current or not a release build.
func (uc *CheckUpdateUseCase) Execute(ctx context.Context) (string, error) {
	release, err := uc.GithubRepo.LatestRelease(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get latest release: %w", err)
	}
	newer, err := NewerRelease(release, uc.CurrentVersion)
	if err != nil || !newer {
		return "", err
	}
	latest, err := ReleaseVersion(release)
	if err != nil {
		return "", err
	}
	return latest.Original(), nil
}
