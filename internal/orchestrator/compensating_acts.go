package orchestrator

import (
	"context"
	"fmt"

	"github.com/compozy/githelper/internal/domain"
	"github.com/compozy/githelper/internal/repository"
	"go.uber.org/zap"
)

// CompensatingActions provides idempotent rollback operations for tagging steps
type CompensatingActions struct {
	gitRepo repository.GitRepository
	log     *zap.Logger
}

// NewCompensatingActions creates a new compensating actions handler
func NewCompensatingActions(gitRepo repository.GitRepository, log *zap.Logger) *CompensatingActions {
	if log == nil {
		log = zap.NewNop()
	}
	return &CompensatingActions{gitRepo: gitRepo, log: log}
}

// DeleteTag removes a tag created in this session from origin, when it got
// there, and from the local repository.
func (ca *CompensatingActions) DeleteTag(ctx context.Context, rollbackData map[string]any) error {
	tag, err := tagFromRollbackData(rollbackData)
	if err != nil {
		return err
	}
	remoteExists, err := ca.gitRepo.RemoteTagExists(ctx, tag)
	if err != nil {
		return fmt.Errorf("failed to check remote tag %s: %w", tag, err)
	}
	if remoteExists {
		ca.log.Info("removing remote tag", zap.Stringer("tag", tag))
		if err := ca.gitRepo.RemoveRemoteTag(ctx, tag); err != nil {
			return fmt.Errorf("failed to remove remote tag %s: %w", tag, err)
		}
	}
	localExists, err := ca.gitRepo.LocalTagExists(ctx, tag)
	if err != nil {
		return fmt.Errorf("failed to check local tag %s: %w", tag, err)
	}
	if localExists {
		ca.log.Info("removing local tag", zap.Stringer("tag", tag))
		if err := ca.gitRepo.RemoveLocalTag(ctx, tag); err != nil {
			return fmt.Errorf("failed to remove local tag %s: %w", tag, err)
		}
	}
	return nil
}

func tagFromRollbackData(rollbackData map[string]any) (domain.Version, error) {
	text, ok := rollbackData["tag"].(string)
	if !ok {
		return domain.Version{}, fmt.Errorf("tag not found in rollback data")
	}
	return domain.ParseVersion(text)
}
