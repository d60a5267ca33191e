package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	t.Run("Should create valid version from string", func(t *testing.T) {
		version, err := ParseVersion("1.2.45")
		require.NoError(t, err)
		assert.Equal(t, NewVersion(1, 2, 45), version)
		assert.Equal(t, "1.2.45", version.String())
	})
	t.Run("Should round trip formatted versions", func(t *testing.T) {
		for _, text := range []string{"0.0.0", "1.2.3", "12.3.56", "2.17.0", "100.200.300"} {
			version, err := ParseVersion(text)
			require.NoError(t, err, text)
			assert.Equal(t, text, version.String())
		}
	})
	t.Run("Should normalize leading zeros", func(t *testing.T) {
		version, err := ParseVersion("01.002.3")
		require.NoError(t, err)
		assert.Equal(t, "1.2.3", version.String())
	})
	t.Run("Should return InvalidFormat for malformed strings", func(t *testing.T) {
		for _, text := range []string{"", "1.2", "1.2.x", "1.2.3.4", "v1.2.3", "1.2.3-alpha", "1..3", "-1.2.3", " 1.2.3"} {
			_, err := ParseVersion(text)
			require.Error(t, err, text)
			assert.True(t, errors.Is(err, ErrInvalidFormat), text)
			var formatErr *InvalidFormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, text, formatErr.Text)
		}
	})
}

func TestVersion_Next(t *testing.T) {
	t.Run("Should bump major and reset minor and patch", func(t *testing.T) {
		assert.Equal(t, NewVersion(13, 0, 0), MustParseVersion("12.3.56").NextMajor())
	})
	t.Run("Should bump minor and reset patch", func(t *testing.T) {
		assert.Equal(t, NewVersion(12, 4, 0), MustParseVersion("12.3.56").NextMinor())
	})
	t.Run("Should only increment patch version", func(t *testing.T) {
		v := MustParseVersion("12.3.56")
		next := v.NextPatch()
		assert.Equal(t, NewVersion(12, 3, 57), next)
		assert.Equal(t, v.Major(), next.Major())
		assert.Equal(t, v.Minor(), next.Minor())
		assert.Equal(t, 1, next.Compare(v))
	})
	t.Run("Should not mutate the receiver", func(t *testing.T) {
		v := NewVersion(1, 2, 3)
		_ = v.NextMajor()
		_ = v.NextMinor()
		_ = v.NextPatch()
		assert.Equal(t, "1.2.3", v.String())
	})
}

func TestVersion_Bump(t *testing.T) {
	v := NewVersion(1, 4, 2)
	cases := map[BumpMode]string{BumpPatch: "1.4.3", BumpMinor: "1.5.0", BumpMajor: "2.0.0"}
	for mode, want := range cases {
		got, err := v.Bump(mode)
		require.NoError(t, err)
		assert.Equal(t, want, got.String())
	}
	_, err := v.Bump("huge")
	assert.Error(t, err)
}

func TestParseBumpMode(t *testing.T) {
	mode, err := ParseBumpMode("minor")
	require.NoError(t, err)
	assert.Equal(t, BumpMinor, mode)
	_, err = ParseBumpMode("Minor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[patch, minor, major]")
}

func TestVersion_Compare(t *testing.T) {
	t.Run("Should compare versions correctly", func(t *testing.T) {
		assert.Equal(t, 1, NewVersion(1, 2, 45).Compare(NewVersion(1, 2, 44)))
		assert.Equal(t, -1, NewVersion(1, 9, 9).Compare(NewVersion(2, 0, 0)))
		assert.Equal(t, 0, NewVersion(3, 1, 4).Compare(NewVersion(3, 1, 4)))
	})
	t.Run("Should order components beyond nine correctly", func(t *testing.T) {
		// A weighted sum patch+minor*10+major*100 scores both of these 100.
		assert.Equal(t, -1, NewVersion(0, 10, 0).Compare(NewVersion(1, 0, 0)))
		assert.Equal(t, -1, NewVersion(1, 10, 0).Compare(NewVersion(2, 0, 0)))
		assert.Equal(t, 1, NewVersion(1, 10, 0).Compare(NewVersion(1, 9, 99)))
		assert.Equal(t, 1, NewVersion(1, 0, 10).Compare(NewVersion(1, 0, 9)))
	})
	t.Run("Should be a total order", func(t *testing.T) {
		versions := []Version{
			NewVersion(0, 0, 1), NewVersion(0, 10, 0), NewVersion(1, 0, 0),
			NewVersion(1, 2, 44), NewVersion(1, 2, 45), NewVersion(1, 9, 9),
			NewVersion(1, 10, 0), NewVersion(2, 0, 0),
		}
		for i, a := range versions {
			assert.Equal(t, 0, a.Compare(a))
			for j, b := range versions {
				assert.Equal(t, -a.Compare(b), b.Compare(a))
				if i < j {
					assert.Equal(t, -1, a.Compare(b), "%s < %s", a, b)
				}
				for _, c := range versions {
					if a.Compare(b) < 0 && b.Compare(c) < 0 {
						assert.Equal(t, -1, a.Compare(c))
					}
				}
			}
		}
	})
	t.Run("Should derive predicates from Compare", func(t *testing.T) {
		low, high := NewVersion(2, 16, 5), NewVersion(2, 17, 0)
		assert.True(t, low.LessThan(high))
		assert.True(t, low.LessOrEqual(high))
		assert.True(t, low.LessOrEqual(low))
		assert.True(t, high.GreaterThan(low))
		assert.True(t, high.GreaterOrEqual(high))
		assert.True(t, low.NotEqual(high))
		assert.True(t, low.Equal(NewVersion(2, 16, 5)))
		assert.False(t, high.LessThan(low))
	})
}

func TestSortTagNames(t *testing.T) {
	names := []string{"1.10.0", "1.9.0", "nightly", "1.2.3", "0.9.12", "alpha"}
	SortTagNames(names)
	assert.Equal(t, []string{"alpha", "nightly", "0.9.12", "1.2.3", "1.9.0", "1.10.0"}, names)
}
