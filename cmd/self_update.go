package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/compozy/githelper/internal/usecase"
	"github.com/compozy/githelper/pkg/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSelfUpdateCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   selfUpdateCommandName,
		Short: "Update githelper to the latest release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exe, err := os.Executable()
			if err != nil {
				return fmt.Errorf("failed to locate executable: %w", err)
			}
			if resolved, err := filepath.EvalSymlinks(exe); err == nil {
				exe = resolved
			}
			uc := &usecase.SelfUpdateUseCase{
				GithubRepo:     c.ghRepo,
				FS:             c.fs,
				Executable:     exe,
				CurrentVersion: version.Version,
			}
			var updated bool
			err = c.spin(cmd.ErrOrStderr(), "Checking for updates", func() error {
				updated, err = uc.Execute(cmd.Context())
				return err
			})
			if err != nil {
				c.log.Error("self-update failed", zap.Error(err))
				return &ExitError{
					Code: 1,
					Err:  fmt.Errorf("well, something happened! Either an oopsie or something involving hackers: %w", err),
				}
			}
			if updated {
				fmt.Fprintln(cmd.OutOrStdout(), "Updated!")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No update needed!")
			}
			return nil
		},
	}
}
