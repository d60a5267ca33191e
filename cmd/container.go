package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/compozy/githelper/internal/config"
	"github.com/compozy/githelper/internal/logger"
	"github.com/compozy/githelper/internal/process"
	"github.com/compozy/githelper/internal/prompt"
	"github.com/compozy/githelper/internal/repository"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	sessionsDir     = "sessions"
	lockHeldMessage = "The command is already running in another process."
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configFile    string
	noInteraction bool
	verbose       bool
}

// container holds all the dependencies for the application.
// It is filled in once flags are parsed; the git repository is opened on
// first use so commands outside a working copy still run.
type container struct {
	opts globalOptions

	cfg       *config.Config
	log       *zap.Logger
	closeLog  func() error
	fs        afero.Fs
	prompter  prompt.Prompter
	locker    *repository.CommandLocker
	stateRepo repository.StateRepository
	ghRepo    repository.GithubRepository
	noticeSrc repository.GithubRepository
	gitRepo   repository.GitRepository
}

// init loads configuration and builds the shared dependencies.
func (c *container) init(errOut io.Writer) error {
	cfg, err := config.LoadConfig(c.opts.configFile)
	if err != nil {
		return err
	}
	log, closeLog, err := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Verbose: c.opts.verbose,
		File:    cfg.LogFile,
		Console: errOut,
	})
	if err != nil {
		return err
	}
	if cfg.GithubToken != "" {
		if err := config.ValidateGitHubToken(cfg.GithubToken); err != nil {
			log.Warn("github token has an unrecognized format", zap.Error(err))
		}
	}
	ghRepo, err := repository.NewGithubRepository(cfg.GithubToken, cfg.GithubOwner, cfg.GithubRepo, cfg.RetryCount)
	if err != nil {
		_ = closeLog()
		return err
	}
	noticeSrc := ghRepo
	if !cfg.UpdateCheck {
		noticeSrc = repository.NewGithubNoopRepository(cfg.GithubOwner, cfg.GithubRepo)
	}
	stateDir := ""
	if cfg.LockDir != "" {
		stateDir = filepath.Join(cfg.LockDir, sessionsDir)
	}
	fs := afero.NewOsFs()

	c.cfg = cfg
	c.log = log
	c.closeLog = closeLog
	c.fs = fs
	c.prompter = prompt.New(c.opts.noInteraction)
	c.locker = repository.NewCommandLocker(fs, cfg.LockDir)
	c.stateRepo = repository.NewJSONStateRepository(fs, stateDir)
	c.ghRepo = ghRepo
	c.noticeSrc = noticeSrc
	return nil
}

// git opens the working copy containing the current directory.
func (c *container) git() (repository.GitRepository, error) {
	if c.gitRepo != nil {
		return c.gitRepo, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	root, err := repository.WorkingCopyRoot(cwd)
	if err != nil {
		return nil, err
	}
	runner := process.NewExecRunner(
		process.WithWorkingDir(root),
		process.WithTimeout(c.cfg.CommandTimeout),
		process.WithLogger(c.log),
	)
	gitRepo, err := repository.NewGitRepository(runner, root)
	if err != nil {
		return nil, err
	}
	c.gitRepo = gitRepo
	return gitRepo, nil
}

// lock takes the per-command lock. A held lock exits with status 1.
func (c *container) lock(cmd *cobra.Command) (*repository.CommandLock, error) {
	l, err := c.locker.TryAcquire(cmd.Name())
	if errors.Is(err, repository.ErrLockHeld) {
		fmt.Fprintln(cmd.ErrOrStderr(), lockHeldMessage)
		return nil, &ExitError{Code: 1, Err: err, Quiet: true}
	}
	if err != nil {
		return nil, &ExitError{Code: 1, Err: err}
	}
	return l, nil
}

// spin runs fn behind a spinner when a terminal is attached.
func (c *container) spin(w io.Writer, suffix string, fn func() error) error {
	return prompt.Spin(w, c.prompter.Interactive(), suffix, fn)
}

func (c *container) close() {
	if c.closeLog != nil {
		_ = c.closeLog()
	}
}
