package cmd

import (
	"fmt"
	"io"

	"github.com/compozy/githelper/internal/domain"
	"github.com/compozy/githelper/internal/usecase"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newShowTagCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "show-tag",
		Short: "Show the local and remote version tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gitRepo, err := c.git()
			if err != nil {
				return err
			}
			uc := &usecase.ShowTagUseCase{GitRepo: gitRepo}
			var status *usecase.TagStatus
			err = c.spin(cmd.ErrOrStderr(), "Fetching tags", func() error {
				status, err = uc.Execute(cmd.Context())
				return err
			})
			if err != nil {
				return err
			}
			renderTagStatus(cmd.OutOrStdout(), status)
			return nil
		},
	}
}

func renderTagStatus(out io.Writer, status *usecase.TagStatus) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Side", "Version"})
	t.AppendRow(table.Row{"Local", versionCell(status.Local)})
	t.AppendRow(table.Row{"Remote", versionCell(status.Remote)})
	t.SetStyle(table.StyleRounded)
	t.Render()
	if status.Diverged() {
		fmt.Fprintln(out, "Local and remote versions are NOT equal")
	}
}

func versionCell(v *domain.Version) string {
	if v == nil {
		return "could not be determined"
	}
	return v.String()
}
