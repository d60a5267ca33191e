package repository

import (
	"context"

	"github.com/compozy/githelper/internal/domain"
)

// GitRepository defines the queries and mutations githelper performs on a git working copy.
// Every method blocks until the underlying git invocations complete.
type GitRepository interface {
	// Remote and versions
	OriginalRemoteRepository(ctx context.Context) (string, error)
	LocalVersion(ctx context.Context) (domain.Version, error)
	RemoteVersion(ctx context.Context) (domain.Version, error)
	// Tag operations
	LocalTagExists(ctx context.Context, tag domain.Version) (bool, error)
	RemoteTagExists(ctx context.Context, tag domain.Version) (bool, error)
	CreateLocalTag(ctx context.Context, tag domain.Version) error
	RemoveLocalTag(ctx context.Context, tag domain.Version) error
	RemoveRemoteTag(ctx context.Context, tag domain.Version) error
	LocalTags(ctx context.Context) ([]string, error)
	RemoteTags(ctx context.Context) ([]domain.Version, error)
	IsTagged(ctx context.Context) (bool, error)
	// Synchronization
	Push(ctx context.Context) error
	Pull(ctx context.Context) error
	PushTags(ctx context.Context) error
	Fetch(ctx context.Context) error
	RemotePruneOrigin(ctx context.Context) error
	// Branch operations
	CreateBranch(ctx context.Context, name string) error
	LocalBranch(ctx context.Context) (string, error)
	UpstreamRemoteBranch(ctx context.Context) (string, bool, error)
	RemoveLocalBranch(ctx context.Context, name string) error
	RemoveRemoteBranch(ctx context.Context, name string) error
	MergedBranches(ctx context.Context, excluded ...string) ([]string, error)
	Branches(ctx context.Context) ([]string, error)
	BranchMap(ctx context.Context) (map[string]string, error)
	// Working tree state
	HasLocalChanges(ctx context.Context) (bool, error)
	IsAhead(ctx context.Context) (bool, error)
	IsBehind(ctx context.Context) (bool, error)
	RollbackLastCommit(ctx context.Context) error
	HardResetBranch(ctx context.Context, remoteBranch string) error
	PushStash(ctx context.Context) error
}

// DefaultExcludedBranches are never reported by MergedBranches when no exclusions are given.
var DefaultExcludedBranches = []string{"master", "dev", "release"}

// MinimumBehindGitVersion is the oldest git whose short status reports "behind" reliably.
var MinimumBehindGitVersion = domain.NewVersion(2, 17, 0)
