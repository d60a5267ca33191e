package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRelease(t *testing.T) {
	t.Run("Should detect release builds", func(t *testing.T) {
		original := Version
		t.Cleanup(func() { Version = original })
		cases := map[string]bool{
			"dev":            false,
			"":               false,
			"v1.2.3":         true,
			"1.2.3":          true,
			"1.2.3-snapshot": false,
			"not-a-version":  false,
		}
		for value, want := range cases {
			Version = value
			assert.Equal(t, want, IsRelease(), value)
		}
	})
}
