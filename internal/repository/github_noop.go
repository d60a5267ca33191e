package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/compozy/githelper/internal/domain"
)

var ErrReleaseSourceDisabled = errors.New("release checks are disabled")

type githubNoopRepository struct {
	owner string
	repo  string
}

// NewGithubNoopRepository returns a GithubRepository that refuses every call.
// It backs the container when update checks are turned off.
func NewGithubNoopRepository(owner, repo string) GithubRepository {
	return &githubNoopRepository{owner: owner, repo: repo}
}

func (r *githubNoopRepository) LatestRelease(_ context.Context) (*domain.Release, error) {
	return nil, r.operationError("query the latest release")
}

func (r *githubNoopRepository) DownloadAsset(_ context.Context, asset domain.ReleaseAsset) ([]byte, error) {
	return nil, r.operationError("download " + asset.Name)
}

func (r *githubNoopRepository) operationError(action string) error {
	return fmt.Errorf("%w: unable to %s for %s/%s", ErrReleaseSourceDisabled, action, r.owner, r.repo)
}
