package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"
)

const (
	// LockDirPermissions is the mode used when creating the lock directory.
	LockDirPermissions = 0o750
	lockFilePrefix     = "githelper-"
	lockFileSuffix     = ".lock"
)

// ErrLockHeld indicates another process holds the command lock.
var ErrLockHeld = errors.New("the command is already running in another process")

// CommandLocker hands out per-command advisory file locks.
type CommandLocker struct {
	fs  afero.Fs
	dir string
}

// NewCommandLocker creates a locker storing lock files in dir.
// An empty dir means the OS temp directory.
func NewCommandLocker(fs afero.Fs, dir string) *CommandLocker {
	if dir == "" {
		dir = os.TempDir()
	}
	return &CommandLocker{fs: fs, dir: dir}
}

// Path returns the lock file used for name.
func (l *CommandLocker) Path(name string) string {
	return filepath.Join(l.dir, lockFilePrefix+name+lockFileSuffix)
}

// CommandLock is a held lock; Release it when the command finishes.
type CommandLock struct {
	lock *flock.Flock
}

// TryAcquire takes the lock for name without blocking.
// It returns ErrLockHeld when another holder exists.
func (l *CommandLocker) TryAcquire(name string) (*CommandLock, error) {
	if err := l.fs.MkdirAll(l.dir, LockDirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	lock := flock.New(l.Path(name))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, ErrLockHeld
	}
	return &CommandLock{lock: lock}, nil
}

// Release unlocks and closes the lock file.
func (c *CommandLock) Release() error {
	if c == nil || c.lock == nil {
		return nil
	}
	if err := c.lock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return nil
}
