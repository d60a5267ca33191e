package cmd

import (
	"errors"

	"github.com/compozy/githelper/internal/usecase"
	"github.com/spf13/cobra"
)

// Exit statuses of hard-reset.
const (
	exitForceRequired = 2
	exitNoUpstream    = 3
)

func newHardResetCmd(c *container) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "hard-reset",
		Short: "Reset the current branch to its upstream branch",
		Long: `Reset the current branch to its upstream branch.

Local changes are pushed to the stash stack first, local commits are lost.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := c.lock(cmd)
			if err != nil {
				return err
			}
			defer l.Release()
			gitRepo, err := c.git()
			if err != nil {
				return err
			}
			uc := &usecase.HardResetUseCase{GitRepo: gitRepo, Prompter: c.prompter, Out: cmd.OutOrStdout()}
			_, err = uc.Execute(cmd.Context(), force)
			switch {
			case errors.Is(err, usecase.ErrForceRequired):
				return &ExitError{Code: exitForceRequired, Err: err}
			case errors.Is(err, usecase.ErrNoUpstream):
				return &ExitError{Code: exitNoUpstream, Err: err}
			}
			return err
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Reset without asking for confirmation")
	return cmd
}
