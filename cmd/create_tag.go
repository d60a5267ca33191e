package cmd

import (
	"github.com/compozy/githelper/internal/domain"
	"github.com/compozy/githelper/internal/orchestrator"
	"github.com/spf13/cobra"
)

func newCreateTagCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:       "create-tag [patch|minor|major]",
		Short:     "Bump the current version and push the new tag",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: domain.BumpModeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			modeName := ""
			if len(args) == 1 {
				modeName = args[0]
			} else {
				selected, err := c.prompter.Select("Select the version part to bump", domain.BumpModeNames(), string(domain.BumpPatch))
				if err != nil {
					return err
				}
				modeName = selected
			}
			mode, err := domain.ParseBumpMode(modeName)
			if err != nil {
				return err
			}
			l, err := c.lock(cmd)
			if err != nil {
				return err
			}
			defer l.Release()
			gitRepo, err := c.git()
			if err != nil {
				return err
			}
			orch := orchestrator.NewTagReleaseOrchestrator(gitRepo, c.stateRepo, c.cfg.RetryCount, c.log, cmd.OutOrStdout())
			_, err = orch.Execute(cmd.Context(), orchestrator.TagReleaseConfig{Mode: mode})
			return err
		},
	}
}
