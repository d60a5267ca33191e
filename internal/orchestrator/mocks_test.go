package orchestrator

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

// Mock for StateRepository
type mockStateRepository struct{ mock.Mock }

func (m *mockStateRepository) Save(ctx context.Context, state *domain.RollbackState) error {
	return m.Called(ctx, state).Error(0)
}

func (m *mockStateRepository) Load(ctx context.Context, sessionID string) (*domain.RollbackState, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RollbackState), args.Error(1)
}

func (m *mockStateRepository) LoadLatest(ctx context.Context) (*domain.RollbackState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RollbackState), args.Error(1)
}

func (m *mockStateRepository) Delete(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *mockStateRepository) Path(sessionID string) string {
	return m.Called(sessionID).String(0)
}
