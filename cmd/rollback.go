package cmd

import (
	"github.com/compozy/githelper/internal/usecase"
	"github.com/spf13/cobra"
)

func newRollbackCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "rollback",
		Short: "Undo the last commit and keep its changes staged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gitRepo, err := c.git()
			if err != nil {
				return err
			}
			return (&usecase.RollbackUseCase{GitRepo: gitRepo}).Execute(cmd.Context())
		},
	}
}
