package prompt

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

const spinnerDelay = 100 * time.Millisecond

// Spin shows a spinner with suffix while fn runs. It draws nothing when
// enabled is false so piped output stays clean.
func Spin(w io.Writer, enabled bool, suffix string, fn func() error) error {
	if !enabled {
		return fn()
	}
	s := spinner.New(spinner.CharSets[14], spinnerDelay, spinner.WithWriter(w))
	s.Suffix = " " + suffix
	s.Start()
	defer s.Stop()
	return fn()
}
