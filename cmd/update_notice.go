package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/compozy/githelper/internal/orchestrator"
	"github.com/compozy/githelper/internal/repository"
	"github.com/compozy/githelper/internal/usecase"
	"github.com/compozy/githelper/pkg/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// printUpdateNotice warns about a newer release. The lookup is best effort.
func (c *container) printUpdateNotice(cmd *cobra.Command) {
	if c.noticeSrc == nil || !version.IsRelease() {
		return
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), orchestrator.UpdateCheckTimeout)
	defer cancel()
	uc := &usecase.CheckUpdateUseCase{GithubRepo: c.noticeSrc, CurrentVersion: version.Version}
	latest, err := uc.Execute(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrReleaseSourceDisabled) {
			c.log.Debug("update check failed", zap.Error(err))
		}
		return
	}
	if latest == "" {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(),
		"Warning: There is a new update available: %s. "+
			"It is recommended to update it by running \"%s %s\" to get the latest version.\n",
		latest, cmd.Root().Name(), selfUpdateCommandName)
}
