package cmd

import (
	"fmt"

	"github.com/compozy/githelper/internal/usecase"
	"github.com/spf13/cobra"
)

func newCreateBranchCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "create-branch [branch]",
		Short: "Create a branch from the updated current branch and push it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			} else {
				var err error
				if name, err = c.prompter.Input("Branch name", ""); err != nil {
					return err
				}
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
			uc := &usecase.CreateBranchUseCase{GitRepo: gitRepo}
			err = c.spin(cmd.ErrOrStderr(), "Creating branch", func() error {
				return uc.Execute(cmd.Context(), name)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Branch %s is successfully created.\n", name)
			return nil
		},
	}
}
