package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/compozy/githelper/internal/domain"
	"github.com/compozy/githelper/internal/repository"
)

// ErrTagNotFound indicates the tag exists neither locally nor on origin.
var ErrTagNotFound = errors.New("tag not found")

// RemoveTagUseCase contains the logic for the remove-tag command.
type RemoveTagUseCase struct {
	GitRepo repository.GitRepository
	Out     io.Writer
}

// Candidates lists the local tags a user can pick from.
func (uc *RemoveTagUseCase) Candidates(ctx context.Context) ([]string, error) {
	tags, err := uc.GitRepo.LocalTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list local tags: %w", err)
	}
	return tags, nil
}

// Execute removes the tag locally and on origin, wherever it exists.
func (uc *RemoveTagUseCase) Execute(ctx context.Context, text string) error {
	tag, err := domain.ParseVersion(strings.TrimSpace(text))
	if err != nil {
		return err
	}
	if err := uc.GitRepo.Fetch(ctx); err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	localExists, err := uc.GitRepo.LocalTagExists(ctx, tag)
	if err != nil {
		return fmt.Errorf("failed to check local tag: %w", err)
	}
	remoteExists, err := uc.GitRepo.RemoteTagExists(ctx, tag)
	if err != nil {
		return fmt.Errorf("failed to check remote tag: %w", err)
	}
	if !localExists && !remoteExists {
		return fmt.Errorf("%w: %s doesn't exist locally and also not remotely", ErrTagNotFound, tag)
	}
	if localExists {
		fmt.Fprintf(uc.Out, "Local tag: %s exists\n", tag)
		if err := uc.GitRepo.RemoveLocalTag(ctx, tag); err != nil {
			return fmt.Errorf("failed to remove local tag: %w", err)
		}
		fmt.Fprintln(uc.Out, "Local tag successfully removed")
	}
	if remoteExists {
		fmt.Fprintf(uc.Out, "Remote tag: %s exists\n", tag)
		if err := uc.GitRepo.RemoveRemoteTag(ctx, tag); err != nil {
			return fmt.Errorf("failed to remove remote tag: %w", err)
		}
		fmt.Fprintln(uc.Out, "Remote tag successfully removed")
	}
	return nil
}
