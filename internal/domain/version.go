package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const versionFormat = "%d.%d.%d"

// Version is an immutable major.minor.patch release number.
type Version struct {
	major int
	minor int
	patch int
}

// NewVersion creates a Version from its three components.
func NewVersion(major, minor, patch int) Version {
	return Version{major: major, minor: minor, patch: patch}
}

// ParseVersion parses text of the form "1.2.3". Exactly three dot-separated
// numeric components are accepted; prefixes, pre-release and build metadata are not.
func ParseVersion(text string) (Version, error) {
	parts := strings.Split(text, ".")
	if len(parts) != 3 {
		return Version{}, NewInvalidFormatError(text)
	}
	var nums [3]int
	for i, part := range parts {
		if part == "" || strings.TrimLeft(part, "0123456789") != "" {
			return Version{}, NewInvalidFormatError(text)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, NewInvalidFormatError(text)
		}
		nums[i] = n
	}
	return NewVersion(nums[0], nums[1], nums[2]), nil
}

// MustParseVersion is like ParseVersion but panics on malformed input.
func MustParseVersion(text string) Version {
	v, err := ParseVersion(text)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) Major() int { return v.major }
func (v Version) Minor() int { return v.minor }
func (v Version) Patch() int { return v.patch }

// String returns the canonical "major.minor.patch" form.
func (v Version) String() string {
	return fmt.Sprintf(versionFormat, v.major, v.minor, v.patch)
}

// NextMajor increments the major version.
func (v Version) NextMajor() Version {
	return NewVersion(v.major+1, 0, 0)
}

// NextMinor increments the minor version.
func (v Version) NextMinor() Version {
	return NewVersion(v.major, v.minor+1, 0)
}

// NextPatch increments the patch version.
func (v Version) NextPatch() Version {
	return NewVersion(v.major, v.minor, v.patch+1)
}

// Bump returns the next version for the given mode.
func (v Version) Bump(mode BumpMode) (Version, error) {
	switch mode {
	case BumpPatch:
		return v.NextPatch(), nil
	case BumpMinor:
		return v.NextMinor(), nil
	case BumpMajor:
		return v.NextMajor(), nil
	default:
		return Version{}, fmt.Errorf("invalid bump mode %q, expected one of: [%s]", mode, strings.Join(BumpModeNames(), ", "))
	}
}

// Compare orders versions by major, then minor, then patch.
// It returns -1, 0 or 1.
func (v Version) Compare(other Version) int {
	switch {
	case v.major != other.major:
		return sign(v.major - other.major)
	case v.minor != other.minor:
		return sign(v.minor - other.minor)
	default:
		return sign(v.patch - other.patch)
	}
}

func (v Version) Equal(other Version) bool          { return v.Compare(other) == 0 }
func (v Version) NotEqual(other Version) bool       { return v.Compare(other) != 0 }
func (v Version) LessThan(other Version) bool       { return v.Compare(other) < 0 }
func (v Version) LessOrEqual(other Version) bool    { return v.Compare(other) <= 0 }
func (v Version) GreaterThan(other Version) bool    { return v.Compare(other) > 0 }
func (v Version) GreaterOrEqual(other Version) bool { return v.Compare(other) >= 0 }

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// BumpMode selects which component a release increments.
type BumpMode string

const (
	BumpPatch BumpMode = "patch"
	BumpMinor BumpMode = "minor"
	BumpMajor BumpMode = "major"
)

// BumpModes lists the valid modes, patch first.
var BumpModes = []BumpMode{BumpPatch, BumpMinor, BumpMajor}

// BumpModeNames returns the valid modes as strings.
func BumpModeNames() []string {
	names := make([]string, 0, len(BumpModes))
	for _, m := range BumpModes {
		names = append(names, string(m))
	}
	return names
}

// ParseBumpMode validates a mode argument.
func ParseBumpMode(s string) (BumpMode, error) {
	mode := BumpMode(s)
	if !slices.Contains(BumpModes, mode) {
		return "", fmt.Errorf("invalid value: `%s` for mode, value should be one of: [%s]",
			s, strings.Join(BumpModeNames(), ", "))
	}
	return mode, nil
}

// SortTagNames sorts tag names in place using version-aware ordering.
// Names that are not versions sort first, alphabetically.
func SortTagNames(names []string) {
	slices.SortStableFunc(names, func(a, b string) int {
		va, errA := semver.NewVersion(a)
		vb, errB := semver.NewVersion(b)
		switch {
		case errA != nil && errB != nil:
			return strings.Compare(a, b)
		case errA != nil:
			return -1
		case errB != nil:
			return 1
		}
		if c := va.Compare(vb); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}
