package repository

import (
	"errors"
	"fmt"

	"github.com/compozy/githelper/internal/domain"
)

// ErrNoRemoteVersion indicates the origin remote has no tags.
var ErrNoRemoteVersion = errors.New("could not find remote version")

// ErrUnsupportedToolVersion indicates the installed git is too old for an operation.
var ErrUnsupportedToolVersion = errors.New("unsupported git version")

// UnsupportedToolVersionError reports the detected and required git versions.
type UnsupportedToolVersionError struct {
	Found    domain.Version
	Required domain.Version
}

func (e *UnsupportedToolVersionError) Error() string {
	return fmt.Sprintf(
		"invalid git cli version: %s, must be equal to or greater than %s; "+
			"can not detect if the local branch is behind compared with the remote branch",
		e.Found, e.Required,
	)
}

// Is returns true if the target error is ErrUnsupportedToolVersion
func (e *UnsupportedToolVersionError) Is(target error) bool {
	return target == ErrUnsupportedToolVersion
}
