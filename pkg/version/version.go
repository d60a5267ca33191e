package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Summary returns a human-friendly version string for CLI output.
func Summary() string {
	return Version
}

// IsRelease reports whether the binary was built from a release tag.
// Development and snapshot builds never look for updates.
func IsRelease() bool {
	v := strings.TrimSpace(Version)
	if v == "" || v == "dev" {
		return false
	}
	parsed, err := semver.NewVersion(v)
	return err == nil && parsed.Prerelease() == ""
}
