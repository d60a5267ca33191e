package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/compozy/githelper/internal/domain"
	"github.com/compozy/githelper/internal/process"
	"github.com/go-git/go-git/v5"
)

const gitBinary = "git"

// gitRepository is the implementation of the GitRepository interface.
// It shells out to the git executable through a process.Runner.
type gitRepository struct {
	runner      process.Runner
	toolVersion *domain.Version
}

// WorkingCopyRoot returns the top-level directory of the git working copy containing dir.
func WorkingCopyRoot(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open git repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to open git worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// NewGitRepository creates a new GitRepository after verifying that workDir
// belongs to a git working copy. The runner is expected to run in that working copy.
func NewGitRepository(runner process.Runner, workDir string) (GitRepository, error) {
	if _, err := WorkingCopyRoot(workDir); err != nil {
		return nil, err
	}
	return newGitRepository(runner), nil
}

func newGitRepository(runner process.Runner) *gitRepository {
	return &gitRepository{runner: runner}
}

func (r *gitRepository) git(ctx context.Context, args ...string) (string, error) {
	return r.runner.Run(ctx, gitBinary, args...)
}

func (r *gitRepository) gitLines(ctx context.Context, args ...string) ([]string, error) {
	return r.runner.RunLines(ctx, gitBinary, args...)
}

// probe runs a git command whose nonzero exit means "no" rather than failure.
func (r *gitRepository) probe(ctx context.Context, args ...string) (bool, error) {
	if _, err := r.git(ctx, args...); err != nil {
		if process.IsProcessFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// OriginalRemoteRepository returns the URL of the origin remote.
func (r *gitRepository) OriginalRemoteRepository(ctx context.Context) (string, error) {
	return r.git(ctx, "config", "--get", "remote.origin.url")
}

// LocalVersion returns the most recent tag reachable from HEAD.
func (r *gitRepository) LocalVersion(ctx context.Context) (domain.Version, error) {
	out, err := r.git(ctx, "describe", "--abbrev=0", "--tags")
	if err != nil {
		return domain.Version{}, err
	}
	return domain.ParseVersion(out)
}

// RemoteVersion returns the highest tag published on origin.
func (r *gitRepository) RemoteVersion(ctx context.Context) (domain.Version, error) {
	url, err := r.OriginalRemoteRepository(ctx)
	if err != nil {
		return domain.Version{}, err
	}
	lines, err := r.gitLines(ctx, "ls-remote", "--tags", url)
	if err != nil {
		return domain.Version{}, err
	}
	names := refNames(lines)
	if len(names) == 0 {
		return domain.Version{}, ErrNoRemoteVersion
	}
	domain.SortTagNames(names)
	return domain.ParseVersion(names[len(names)-1])
}

// LocalTagExists checks whether the tag exists locally.
func (r *gitRepository) LocalTagExists(ctx context.Context, tag domain.Version) (bool, error) {
	return r.probe(ctx, "rev-parse", "--verify", "--quiet", "refs/tags/"+tag.String())
}

// RemoteTagExists checks whether origin has a tag with exactly this name.
func (r *gitRepository) RemoteTagExists(ctx context.Context, tag domain.Version) (bool, error) {
	names, err := r.remoteTagNames(ctx)
	if err != nil {
		if process.IsProcessFailed(err) {
			return false, nil
		}
		return false, err
	}
	return slices.Contains(names, tag.String()), nil
}

func (r *gitRepository) remoteTagNames(ctx context.Context) ([]string, error) {
	url, err := r.OriginalRemoteRepository(ctx)
	if err != nil {
		return nil, err
	}
	lines, err := r.gitLines(ctx, "ls-remote", "--tags", "--refs", url)
	if err != nil {
		return nil, err
	}
	return refNames(lines), nil
}

// CreateLocalTag creates an annotated tag on HEAD.
func (r *gitRepository) CreateLocalTag(ctx context.Context, tag domain.Version) error {
	_, err := r.git(ctx, "tag", "-a", tag.String(), "-m", tag.String())
	return err
}

func (r *gitRepository) RemoveLocalTag(ctx context.Context, tag domain.Version) error {
	_, err := r.git(ctx, "tag", "-d", tag.String())
	return err
}

func (r *gitRepository) RemoveRemoteTag(ctx context.Context, tag domain.Version) error {
	_, err := r.git(ctx, "push", "--delete", "origin", tag.String())
	return err
}

// LocalTags lists local tag names as git orders them.
func (r *gitRepository) LocalTags(ctx context.Context) ([]string, error) {
	return r.gitLines(ctx, "tag")
}

// RemoteTags lists the tags published on origin in ascending version order.
func (r *gitRepository) RemoteTags(ctx context.Context) ([]domain.Version, error) {
	names, err := r.remoteTagNames(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortTagNames(names)
	versions := make([]domain.Version, 0, len(names))
	for _, name := range names {
		v, err := domain.ParseVersion(name)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, nil
}

// IsTagged reports whether a tag already contains the HEAD commit.
// A repository without commits is not tagged.
func (r *gitRepository) IsTagged(ctx context.Context) (bool, error) {
	hash, err := r.git(ctx, "rev-parse", "HEAD")
	if err != nil {
		if process.IsProcessFailed(err) {
			return false, nil
		}
		return false, err
	}
	return r.probe(ctx, "describe", "--contains", hash)
}

func (r *gitRepository) Push(ctx context.Context) error {
	_, err := r.git(ctx, "push")
	return err
}

func (r *gitRepository) Pull(ctx context.Context) error {
	_, err := r.git(ctx, "pull")
	return err
}

func (r *gitRepository) PushTags(ctx context.Context) error {
	_, err := r.git(ctx, "push", "--tags")
	return err
}

func (r *gitRepository) Fetch(ctx context.Context) error {
	_, err := r.git(ctx, "fetch")
	return err
}

func (r *gitRepository) RemotePruneOrigin(ctx context.Context) error {
	_, err := r.git(ctx, "remote", "prune", "origin")
	return err
}

// CreateBranch checks out a new branch and publishes it to origin with upstream tracking.
func (r *gitRepository) CreateBranch(ctx context.Context, name string) error {
	if _, err := r.git(ctx, "checkout", "-b", name); err != nil {
		return err
	}
	_, err := r.git(ctx, "push", "--set-upstream", "origin", name)
	return err
}

// LocalBranch returns the name of the checked out branch, "HEAD" when detached.
func (r *gitRepository) LocalBranch(ctx context.Context) (string, error) {
	return r.git(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

// UpstreamRemoteBranch returns the upstream of the current branch, e.g. "origin/main".
// The boolean is false when HEAD is detached or the branch tracks nothing.
func (r *gitRepository) UpstreamRemoteBranch(ctx context.Context) (string, bool, error) {
	ref, err := r.git(ctx, "symbolic-ref", "-q", "HEAD")
	if err != nil {
		if process.IsProcessFailed(err) {
			return "", false, nil
		}
		return "", false, err
	}
	upstream, err := r.git(ctx, "for-each-ref", "--format=%(upstream:short)", ref)
	if err != nil {
		return "", false, err
	}
	if upstream == "" {
		return "", false, nil
	}
	return upstream, true, nil
}

func (r *gitRepository) RemoveLocalBranch(ctx context.Context, name string) error {
	_, err := r.git(ctx, "branch", "-d", name)
	return err
}

// RemoveRemoteBranch deletes a branch given as "remote/branch".
func (r *gitRepository) RemoveRemoteBranch(ctx context.Context, name string) error {
	remote, branch, ok := splitRemoteBranch(name)
	if !ok {
		return fmt.Errorf("invalid remote branch `%s`, expect format: remote/branch: %w", name, domain.ErrInvalidFormat)
	}
	_, err := r.git(ctx, "push", remote, "--delete", branch)
	return err
}

// MergedBranches lists local branches merged into HEAD, skipping the current branch
// and any branch whose name contains an excluded substring. A failed listing yields
// an empty result.
func (r *gitRepository) MergedBranches(ctx context.Context, excluded ...string) ([]string, error) {
	if len(excluded) == 0 {
		excluded = DefaultExcludedBranches
	}
	lines, err := r.gitLines(ctx, "branch", "--merged")
	if err != nil {
		if process.IsProcessFailed(err) {
			return []string{}, nil
		}
		return nil, err
	}
	return parseMergedBranches(lines, excluded), nil
}

// Branches lists local branches other than the current one.
func (r *gitRepository) Branches(ctx context.Context) ([]string, error) {
	lines, err := r.gitLines(ctx, "branch")
	if err != nil {
		return nil, err
	}
	return parseBranches(lines), nil
}

// BranchMap maps local branches other than the current one to their upstream.
func (r *gitRepository) BranchMap(ctx context.Context) (map[string]string, error) {
	lines, err := r.gitLines(ctx, "branch", "-vv")
	if err != nil {
		return nil, err
	}
	return parseBranchMap(lines), nil
}

// HasLocalChanges reports uncommitted changes to tracked files.
func (r *gitRepository) HasLocalChanges(ctx context.Context) (bool, error) {
	out, err := r.git(ctx, "diff-index", "--name-only", "--ignore-submodules", "HEAD", "--")
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// IsAhead reports whether the current branch has commits its upstream lacks.
func (r *gitRepository) IsAhead(ctx context.Context) (bool, error) {
	return r.trackingContains(ctx, "ahead ")
}

// IsBehind reports whether the upstream has commits the current branch lacks.
func (r *gitRepository) IsBehind(ctx context.Context) (bool, error) {
	found, err := r.gitVersion(ctx)
	if err != nil {
		return false, err
	}
	if found.LessThan(MinimumBehindGitVersion) {
		return false, &UnsupportedToolVersionError{Found: found, Required: MinimumBehindGitVersion}
	}
	return r.trackingContains(ctx, "behind ")
}

func (r *gitRepository) trackingContains(ctx context.Context, word string) (bool, error) {
	lines, err := r.gitLines(ctx, "status", "-sb")
	if err != nil {
		return false, err
	}
	return strings.Contains(statusTracking(lines), word), nil
}

// RollbackLastCommit undoes the last commit and keeps its changes staged.
func (r *gitRepository) RollbackLastCommit(ctx context.Context) error {
	_, err := r.git(ctx, "reset", "--soft", "HEAD~")
	return err
}

func (r *gitRepository) HardResetBranch(ctx context.Context, remoteBranch string) error {
	_, err := r.git(ctx, "reset", "--hard", remoteBranch)
	return err
}

// PushStash stashes local changes. A failed stash is ignored.
func (r *gitRepository) PushStash(ctx context.Context) error {
	if _, err := r.git(ctx, "stash"); err != nil && !process.IsProcessFailed(err) {
		return err
	}
	return nil
}

// gitVersion resolves the installed git version once per repository instance.
func (r *gitRepository) gitVersion(ctx context.Context) (domain.Version, error) {
	if r.toolVersion != nil {
		return *r.toolVersion, nil
	}
	out, err := r.git(ctx, "--version")
	if err != nil {
		return domain.Version{}, err
	}
	v, err := parseToolVersion(out)
	if err != nil {
		return domain.Version{}, fmt.Errorf("failed to parse git version: %w", err)
	}
	r.toolVersion = &v
	return v, nil
}

var _ GitRepository = (*gitRepository)(nil)

