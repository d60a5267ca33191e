package usecase

import (
	"context"

	"github.com/compozy/githelper/internal/domain"
	"github.com/stretchr/testify/mock"
)

// Mock for GitRepository
type mockGitRepository struct {
	mock.Mock
}

func (m *mockGitRepository) OriginalRemoteRepository(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockGitRepository) LocalVersion(ctx context.Context) (domain.Version, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Version), args.Error(1)
}

func (m *mockGitRepository) RemoteVersion(ctx context.Context) (domain.Version, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Version), args.Error(1)
}

func (m *mockGitRepository) LocalTagExists(ctx context.Context, tag domain.Version) (bool, error) {
	args := m.Called(ctx, tag)
	return args.Bool(0), args.Error(1)
}

func (m *mockGitRepository) RemoteTagExists(ctx context.Context, tag domain.Version) (bool, error) {
	args := m.Called(ctx, tag)
	return args.Bool(0), args.Error(1)
}

func (m *mockGitRepository) CreateLocalTag(ctx context.Context, tag domain.Version) error {
	return m.Called(ctx, tag).Error(0)
}

func (m *mockGitRepository) RemoveLocalTag(ctx context.Context, tag domain.Version) error {
	return m.Called(ctx, tag).Error(0)
}

func (m *mockGitRepository) RemoveRemoteTag(ctx context.Context, tag domain.Version) error {
	return m.Called(ctx, tag).Error(0)
}

func (m *mockGitRepository) LocalTags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockGitRepository) RemoteTags(ctx context.Context) ([]domain.Version, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Version), args.Error(1)
}

func (m *mockGitRepository) IsTagged(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *mockGitRepository) Push(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockGitRepository) Pull(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockGitRepository) PushTags(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockGitRepository) Fetch(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockGitRepository) RemotePruneOrigin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockGitRepository) CreateBranch(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *mockGitRepository) LocalBranch(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockGitRepository) UpstreamRemoteBranch(ctx context.Context) (string, bool, error) {
	args := m.Called(ctx)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockGitRepository) RemoveLocalBranch(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *mockGitRepository) RemoveRemoteBranch(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *mockGitRepository) MergedBranches(ctx context.Context, excluded ...string) ([]string, error) {
	args := m.Called(ctx, excluded)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockGitRepository) Branches(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockGitRepository) BranchMap(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *mockGitRepository) HasLocalChanges(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *mockGitRepository) IsAhead(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *mockGitRepository) IsBehind(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *mockGitRepository) RollbackLastCommit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockGitRepository) HardResetBranch(ctx context.Context, remoteBranch string) error {
	return m.Called(ctx, remoteBranch).Error(0)
}

func (m *mockGitRepository) PushStash(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// Mock for GithubRepository
type mockGithubRepository struct {
	mock.Mock
}

func (m *mockGithubRepository) LatestRelease(ctx context.Context) (*domain.Release, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Release), args.Error(1)
}

func (m *mockGithubRepository) DownloadAsset(ctx context.Context, asset domain.ReleaseAsset) ([]byte, error) {
	args := m.Called(ctx, asset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Mock for Prompter
type mockPrompter struct {
	mock.Mock
}

func (m *mockPrompter) Interactive() bool {
	return m.Called().Bool(0)
}

func (m *mockPrompter) Select(message string, options []string, def string) (string, error) {
	args := m.Called(message, options, def)
	return args.String(0), args.Error(1)
}

func (m *mockPrompter) Input(message, def string) (string, error) {
	args := m.Called(message, def)
	return args.String(0), args.Error(1)
}

func (m *mockPrompter) Confirm(message string, def bool) (bool, error) {
	args := m.Called(message, def)
	return args.Bool(0), args.Error(1)
}
