package cmd

import (
	"github.com/compozy/githelper/internal/usecase"
	"github.com/spf13/cobra"
)

func newRemoveBranchCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-branch [branch]",
		Short: "Remove a local branch and optionally its remote branch",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gitRepo, err := c.git()
			if err != nil {
				return err
			}
			uc := &usecase.RemoveBranchUseCase{GitRepo: gitRepo, Prompter: c.prompter, Out: cmd.OutOrStdout()}
			branch := ""
			if len(args) == 1 {
				branch = args[0]
			} else {
				branches, err := uc.Candidates(cmd.Context())
				if err != nil {
					return err
				}
				if branch, err = c.prompter.Select("Select the branch to remove", branches, ""); err != nil {
					return err
				}
			}
			return uc.Execute(cmd.Context(), branch)
		},
	}
}
