package orchestrator

import "fmt"

// RollbackFailedError reports a failed step whose compensation failed too.
// StatePath names the recorded session when one was persisted.
type RollbackFailedError struct {
	Step        string
	Err         error
	RollbackErr error
	StatePath   string
}

func (e *RollbackFailedError) Error() string {
	msg := fmt.Sprintf("step '%s' failed: %v, rollback also failed: %v", e.Step, e.Err, e.RollbackErr)
	if e.StatePath != "" {
		msg += fmt.Sprintf(" (session state kept in %s)", e.StatePath)
	}
	return msg
}

func (e *RollbackFailedError) Unwrap() []error {
	return []error{e.Err, e.RollbackErr}
}
