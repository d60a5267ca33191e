package cmd

import (
	"github.com/compozy/githelper/internal/usecase"
	"github.com/spf13/cobra"
)

func newCleanCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove local branches merged into the current branch and prune origin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gitRepo, err := c.git()
			if err != nil {
				return err
			}
			uc := &usecase.CleanUseCase{
				GitRepo:          gitRepo,
				ExcludedBranches: c.cfg.ExcludedBranches,
				Out:              cmd.OutOrStdout(),
			}
			_, err = uc.Execute(cmd.Context())
			return err
		},
	}
}
