package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/compozy/githelper/internal/prompt"
	"github.com/compozy/githelper/internal/repository"
)

var (
	// ErrForceRequired indicates a non-interactive run without --force.
	ErrForceRequired = errors.New("interaction is disabled and force is NOT enabled so this command will quit")
	// ErrNoUpstream indicates the current branch tracks no remote branch.
	ErrNoUpstream = errors.New("no upstream branch available")
)

// HardResetOutcome describes how a hard-reset run ended.
type HardResetOutcome int

const (
	HardResetNotDiverged HardResetOutcome = iota
	HardResetAborted
	HardResetDone
)

// HardResetUseCase contains the logic for the hard-reset command.
type HardResetUseCase struct {
	GitRepo  repository.GitRepository
	Prompter prompt.Prompter
	Out      io.Writer
}

// Execute resets the current branch to its upstream. Local changes are
// stashed first; local commits are lost.
func (uc *HardResetUseCase) Execute(ctx context.Context, force bool) (HardResetOutcome, error) {
	if !force && !uc.Prompter.Interactive() {
		return HardResetAborted, ErrForceRequired
	}
	local, err := uc.GitRepo.LocalBranch(ctx)
	if err != nil {
		return HardResetAborted, fmt.Errorf("failed to determine current branch: %w", err)
	}
	upstream, ok, err := uc.GitRepo.UpstreamRemoteBranch(ctx)
	if err != nil {
		return HardResetAborted, fmt.Errorf("failed to determine upstream branch: %w", err)
	}
	if !ok {
		return HardResetAborted, fmt.Errorf("%w for the local branch: %s", ErrNoUpstream, local)
	}
	if err := uc.GitRepo.Fetch(ctx); err != nil {
		return HardResetAborted, fmt.Errorf("failed to fetch: %w", err)
	}
	ahead, err := uc.GitRepo.IsAhead(ctx)
	if err != nil {
		return HardResetAborted, err
	}
	behind, err := uc.GitRepo.IsBehind(ctx)
	if err != nil {
		return HardResetAborted, err
	}
	switch {
	case !ahead && !behind:
		fmt.Fprintln(uc.Out, "Local branch and remote branch are not diverged")
		return HardResetNotDiverged, nil
	case ahead && !behind:
		fmt.Fprintln(uc.Out, "Local branch is only ahead so only a push is needed")
	case behind && !ahead:
		fmt.Fprintln(uc.Out, "Local branch is only behind so only a pull is needed")
	}
	if !force {
		fmt.Fprintln(uc.Out, "Local changes will be stashed, but local commits are lost.")
		confirmed, err := uc.Prompter.Confirm(fmt.Sprintf(
			"Are you sure you want to hard reset the local branch: `%s` from the remote branch: `%s`?",
			local, upstream), false)
		if err != nil {
			return HardResetAborted, err
		}
		if !confirmed {
			fmt.Fprintln(uc.Out, "Aborted.")
			return HardResetAborted, nil
		}
	}
	changed, err := uc.GitRepo.HasLocalChanges(ctx)
	if err != nil {
		return HardResetAborted, fmt.Errorf("failed to check local changes: %w", err)
	}
	if changed {
		fmt.Fprintln(uc.Out, "There are local changes, so push them to the stash stack.")
		if err := uc.GitRepo.PushStash(ctx); err != nil {
			return HardResetAborted, fmt.Errorf("failed to stash local changes: %w", err)
		}
	}
	if err := uc.GitRepo.HardResetBranch(ctx, upstream); err != nil {
		return HardResetAborted, fmt.Errorf("failed to reset to %s: %w", upstream, err)
	}
	return HardResetDone, nil
}
