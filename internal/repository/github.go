package repository

import (
	"context"

	"github.com/compozy/githelper/internal/domain"
)

// GithubRepository defines the release queries used by self-update and the update notice.
type GithubRepository interface {
	LatestRelease(ctx context.Context) (*domain.Release, error)
	DownloadAsset(ctx context.Context, asset domain.ReleaseAsset) ([]byte, error)
}
