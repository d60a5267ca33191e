package cmd

import (
	"errors"

	"github.com/compozy/githelper/internal/usecase"
	"github.com/spf13/cobra"
)

var errNoTags = errors.New("there are no tags to remove")

func newRemoveTagCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-tag [tag]",
		Short: "Remove a version tag locally and from origin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gitRepo, err := c.git()
			if err != nil {
				return err
			}
			uc := &usecase.RemoveTagUseCase{GitRepo: gitRepo, Out: cmd.OutOrStdout()}
			tag := ""
			if len(args) == 1 {
				tag = args[0]
			} else {
				tags, err := uc.Candidates(cmd.Context())
				if err != nil {
					return err
				}
				if len(tags) == 0 {
					return errNoTags
				}
				if tag, err = c.prompter.Select("Select the tag to remove", tags, ""); err != nil {
					return err
				}
			}
			l, err := c.lock(cmd)
			if err != nil {
				return err
			}
			defer l.Release()
			return uc.Execute(cmd.Context(), tag)
		},
	}
}
