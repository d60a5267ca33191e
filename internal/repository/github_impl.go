package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/compozy/githelper/internal/config"
	"github.com/compozy/githelper/internal/domain"
	"github.com/google/go-github/v74/github"
	"github.com/sethvargo/go-retry"
	"golang.org/x/oauth2"
)

const (
	// MaxAssetSize bounds release asset downloads.
	MaxAssetSize      = 100 << 20
	releaseRetryDelay = 500 * time.Millisecond
)

// ErrNoRelease indicates the repository has no published release.
var ErrNoRelease = errors.New("no published release found")

// githubRepository is the implementation of the GithubRepository interface.
type githubRepository struct {
	client     *github.Client
	httpClient *http.Client
	owner      string
	repo       string
	retries    uint64
}

// NewGithubRepository creates a new GithubRepository with validation.
// An empty token yields an anonymous client, which is enough for public releases.
func NewGithubRepository(token, owner, repo string, retries uint64) (GithubRepository, error) {
	if err := config.ValidateGitHubOwnerRepo(owner, repo); err != nil {
		return nil, fmt.Errorf("invalid repository configuration: %w", err)
	}
	httpClient := http.DefaultClient
	if token = strings.TrimSpace(token); token != "" {
		if err := config.ValidateGitHubToken(token); err != nil {
			return nil, fmt.Errorf("invalid GitHub token: %w", err)
		}
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	return newGithubRepository(github.NewClient(httpClient), httpClient, owner, repo, retries), nil
}

func newGithubRepository(
	client *github.Client,
	httpClient *http.Client,
	owner, repo string,
	retries uint64,
) *githubRepository {
	return &githubRepository{
		client:     client,
		httpClient: httpClient,
		owner:      owner,
		repo:       repo,
		retries:    retries,
	}
}

// LatestRelease returns the most recent non-draft, non-prerelease release.
// Server errors and rate limiting are retried with exponential backoff.
func (r *githubRepository) LatestRelease(ctx context.Context) (*domain.Release, error) {
	var release *github.RepositoryRelease
	backoff := retry.WithMaxRetries(r.retries, retry.NewExponential(releaseRetryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		rel, resp, err := r.client.Repositories.GetLatestRelease(ctx, r.owner, r.repo)
		if err != nil {
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				return ErrNoRelease
			}
			if isRetryableResponse(resp) {
				return retry.RetryableError(err)
			}
			return err
		}
		release = rel
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNoRelease) {
			return nil, fmt.Errorf("%w for %s/%s", ErrNoRelease, r.owner, r.repo)
		}
		return nil, fmt.Errorf("failed to get latest release: %w", err)
	}
	return toDomainRelease(release), nil
}

func isRetryableResponse(resp *github.Response) bool {
	if resp == nil {
		return true
	}
	return resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests
}

// DownloadAsset fetches the raw content of a release asset.
func (r *githubRepository) DownloadAsset(ctx context.Context, asset domain.ReleaseAsset) ([]byte, error) {
	rc, _, err := r.client.Repositories.DownloadReleaseAsset(ctx, r.owner, r.repo, asset.ID, r.httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to download asset %s: %w", asset.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(io.LimitReader(rc, MaxAssetSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read asset %s: %w", asset.Name, err)
	}
	if len(data) > MaxAssetSize {
		return nil, fmt.Errorf("asset %s exceeds %d bytes", asset.Name, MaxAssetSize)
	}
	return data, nil
}

func toDomainRelease(rel *github.RepositoryRelease) *domain.Release {
	release := &domain.Release{
		Name:    rel.GetName(),
		TagName: rel.GetTagName(),
		Assets:  make([]domain.ReleaseAsset, 0, len(rel.Assets)),
	}
	for _, a := range rel.Assets {
		release.Assets = append(release.Assets, domain.ReleaseAsset{
			ID:          a.GetID(),
			Name:        a.GetName(),
			DownloadURL: a.GetBrowserDownloadURL(),
		})
	}
	return release
}
