package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/compozy/githelper/internal/domain"
	"github.com/compozy/githelper/internal/repository"
	"go.uber.org/zap"
)

// ErrAlreadyTagged indicates HEAD is already contained in a tag.
var ErrAlreadyTagged = errors.New("already tagged")

// VersionMismatchError reports local and remote versions that differ.
type VersionMismatchError struct {
	Local  domain.Version
	Remote domain.Version
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("local version: %s and remote version: %s are not equal", e.Local, e.Remote)
}

// TagReleaseConfig holds the inputs of a create-tag run.
type TagReleaseConfig struct {
	Mode domain.BumpMode
}

// TagReleaseResult describes a successful create-tag run.
type TagReleaseResult struct {
	Previous domain.Version
	Created  domain.Version
}

// TagReleaseOrchestrator bumps the current version, tags HEAD and publishes
// the tag, undoing the tag when publishing fails.
type TagReleaseOrchestrator struct {
	gitRepo    repository.GitRepository
	stateRepo  repository.StateRepository
	retryCount uint64
	log        *zap.Logger
	out        io.Writer
}

// NewTagReleaseOrchestrator creates a new create-tag orchestrator. stateRepo may be nil.
func NewTagReleaseOrchestrator(
	gitRepo repository.GitRepository,
	stateRepo repository.StateRepository,
	retryCount uint64,
	log *zap.Logger,
	out io.Writer,
) *TagReleaseOrchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &TagReleaseOrchestrator{
		gitRepo:    gitRepo,
		stateRepo:  stateRepo,
		retryCount: retryCount,
		log:        log,
		out:        out,
	}
}

// Execute runs the create-tag workflow.
func (o *TagReleaseOrchestrator) Execute(ctx context.Context, cfg TagReleaseConfig) (*TagReleaseResult, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultWorkflowTimeout)
	defer cancel()
	local, err := o.checkVersions(ctx)
	if err != nil {
		return nil, err
	}
	next, err := local.Bump(cfg.Mode)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(o.out, "Updating %s to %s\n", local, next)

	saga := NewSagaExecutor(o.stateRepo, o.retryCount, o.log)
	saga.SetVersion(next.String())
	o.addSteps(saga, next)
	if err := saga.Execute(ctx); err != nil {
		return nil, err
	}
	return &TagReleaseResult{Previous: local, Created: next}, nil
}

// checkVersions requires local and remote versions to agree and HEAD to be untagged.
func (o *TagReleaseOrchestrator) checkVersions(ctx context.Context) (domain.Version, error) {
	if err := o.gitRepo.Fetch(ctx); err != nil {
		return domain.Version{}, fmt.Errorf("failed to fetch: %w", err)
	}
	local, err := o.gitRepo.LocalVersion(ctx)
	if err != nil {
		return domain.Version{}, fmt.Errorf("failed to determine local version: %w", err)
	}
	remote, err := o.gitRepo.RemoteVersion(ctx)
	if err != nil {
		return domain.Version{}, fmt.Errorf("failed to determine remote version: %w", err)
	}
	if local.NotEqual(remote) {
		return domain.Version{}, &VersionMismatchError{Local: local, Remote: remote}
	}
	tagged, err := o.gitRepo.IsTagged(ctx)
	if err != nil {
		return domain.Version{}, fmt.Errorf("failed to check tags of HEAD: %w", err)
	}
	if tagged {
		return domain.Version{}, ErrAlreadyTagged
	}
	fmt.Fprintf(o.out, "Local version: %s\nRemote version: %s\n", local, remote)
	return local, nil
}

func (o *TagReleaseOrchestrator) addSteps(saga *SagaExecutor, next domain.Version) {
	compensations := NewCompensatingActions(o.gitRepo, o.log)
	saga.AddStep(SagaStep{
		Name: "Create tag",
		Type: domain.OperationTypeCreateTag,
		Execute: func(ctx context.Context) (map[string]any, error) {
			if err := o.gitRepo.CreateLocalTag(ctx, next); err != nil {
				return nil, err
			}
			fmt.Fprintf(o.out, "Tag: %s created\n", next)
			return map[string]any{"tag": next.String()}, nil
		},
		Compensate: compensations.DeleteTag,
	})
	saga.AddStep(SagaStep{
		Name: "Push branch",
		Type: domain.OperationTypePushBranch,
		Execute: func(ctx context.Context) (map[string]any, error) {
			return nil, o.gitRepo.Push(ctx)
		},
		Retryable: true,
	})
	saga.AddStep(SagaStep{
		Name: "Push tags",
		Type: domain.OperationTypePushTags,
		Execute: func(ctx context.Context) (map[string]any, error) {
			if err := o.gitRepo.PushTags(ctx); err != nil {
				return nil, err
			}
			return map[string]any{"tag": next.String()}, nil
		},
		Compensate: compensations.DeleteTag,
		Retryable:  true,
	})
}
