package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

const selfUpdateCommandName = "self-update"

var app = &container{}

var rootCmd = newRootCmd(app)

func newRootCmd(c *container) *cobra.Command {
	root := &cobra.Command{
		Use:           "githelper",
		Short:         "Everyday git chores for release-tagged repositories",
		Long:          `githelper tags releases, cleans up branches and resets diverged branches in the current git working copy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if cmd.Name() == selfUpdateCommandName {
				return
			}
			c.printUpdateNotice(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&c.opts.configFile, "config", "", "Config file (default is .githelper.yaml in the working directory or $HOME)")
	flags.BoolVarP(&c.opts.noInteraction, "no-interaction", "n", false, "Do not ask any interactive question")
	flags.BoolVarP(&c.opts.verbose, "verbose", "v", false, "Enable debug logging")
	return root
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	addCommands(rootCmd, app)
	return nil
}

func addCommands(root *cobra.Command, c *container) {
	root.AddCommand(
		newShowTagCmd(c),
		newCreateTagCmd(c),
		newRemoveTagCmd(c),
		newCreateBranchCmd(c),
		newRemoveBranchCmd(c),
		newCleanCmd(c),
		newHardResetCmd(c),
		newRollbackCmd(c),
		newSelfUpdateCmd(c),
		newVersionCmd(),
	)
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	defer app.close()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
