package usecase

import (
	"bytes"
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/compozy/githelper/internal/domain"
	"github.com/compozy/githelper/internal/repository"
	"github.com/spf13/afero"
)

const checksumSuffix = ".sha384"

var (
	// ErrAssetNotFound indicates the release carries no binary for this platform.
	ErrAssetNotFound = errors.New("release asset not found")
	// ErrChecksumMismatch indicates the downloaded binary does not match its published digest.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// AssetName returns the release asset name of the binary for a platform.
func AssetName(goos, goarch string) string {
	name := fmt.Sprintf("githelper_%s_%s", goos, goarch)
	if goos == "windows" {
		name += ".exe"
	}
	return name
}

// ReleaseVersion parses the version of a release from its tag, falling back to its name.
func ReleaseVersion(release *domain.Release) (*semver.Version, error) {
	text := strings.TrimSpace(release.TagName)
	if text == "" {
		text = strings.TrimSpace(release.Name)
	}
	v, err := semver.NewVersion(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse release version %q: %w", text, err)
	}
	return v, nil
}

// NewerRelease reports whether the release is newer than the running build.
// A current version that is not semver, such as "dev", is never updated.
func NewerRelease(release *domain.Release, current string) (bool, error) {
	cur, err := semver.NewVersion(current)
	if err != nil {
		return false, nil
	}
	latest, err := ReleaseVersion(release)
	if err != nil {
		return false, err
	}
	return latest.GreaterThan(cur), nil
}

// SelfUpdateUseCase replaces the running executable with the latest release binary.
type SelfUpdateUseCase struct {
	GithubRepo     repository.GithubRepository
	FS             afero.Fs
	Executable     string
	CurrentVersion string
	GOOS           string
	GOARCH         string
}

// Execute returns true when the executable was replaced.
func (uc *SelfUpdateUseCase) Execute(ctx context.Context) (bool, error) {
	release, err := uc.GithubRepo.LatestRelease(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get latest release: %w", err)
	}
	newer, err := NewerRelease(release, uc.CurrentVersion)
	if err != nil || !newer {
		return false, err
	}
	name := AssetName(uc.platform())
	binary, err := uc.download(ctx, release, name)
	if err != nil {
		return false, err
	}
	sum, err := uc.download(ctx, release, name+checksumSuffix)
	if err != nil {
		return false, err
	}
	if err := verifySHA384(binary, sum); err != nil {
		return false, fmt.Errorf("failed to verify %s: %w", name, err)
	}
	if err := uc.replace(binary); err != nil {
		return false, fmt.Errorf("failed to replace executable: %w", err)
	}
	return true, nil
}

func (uc *SelfUpdateUseCase) platform() (string, string) {
	goos, goarch := uc.GOOS, uc.GOARCH
	if goos == "" {
		goos = runtime.GOOS
	}
	if goarch == "" {
		goarch = runtime.GOARCH
	}
	return goos, goarch
}

func (uc *SelfUpdateUseCase) download(ctx context.Context, release *domain.Release, name string) ([]byte, error) {
	asset, ok := release.Asset(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	data, err := uc.GithubRepo.DownloadAsset(ctx, asset)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", name, err)
	}
	return data, nil
}

// replace writes the new binary next to the executable and swaps it in,
// keeping the old one until the swap succeeded.
func (uc *SelfUpdateUseCase) replace(binary []byte) error {
	exe := filepath.Clean(uc.Executable)
	next, old := exe+".new", exe+".old"
	if err := afero.WriteFile(uc.FS, next, binary, 0o755); err != nil {
		return err
	}
	_ = uc.FS.Remove(old)
	if err := uc.FS.Rename(exe, old); err != nil {
		_ = uc.FS.Remove(next)
		return err
	}
	if err := uc.FS.Rename(next, exe); err != nil {
		_ = uc.FS.Rename(old, exe)
		return err
	}
	// Windows keeps the running image locked
	_ = uc.FS.Remove(old)
	return nil
}

// verifySHA384 accepts either a bare hex digest or a "digest  filename" line.
func verifySHA384(data, sum []byte) error {
	fields := strings.Fields(string(sum))
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty checksum", ErrChecksumMismatch)
	}
	want, err := hex.DecodeString(fields[0])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrChecksumMismatch, err)
	}
	got := sha512.Sum384(data)
	if !bytes.Equal(got[:], want) {
		return ErrChecksumMismatch
	}
	return nil
}
