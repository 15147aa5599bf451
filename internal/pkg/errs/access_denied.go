package errs

import (
	"errors"
	"fmt"
)

// ErrAccessDenied is the sentinel for role and ownership violations.
var ErrAccessDenied = errors.New("access denied")

// AccessDeniedError reports that an actor may not perform Action.
type AccessDeniedError struct {
	Action string
	Cause  error
}

// NewAccessDeniedError creates an AccessDeniedError without an underlying cause.
func NewAccessDeniedError(action string) *AccessDeniedError {
	return &AccessDeniedError{Action: action}
}

// NewAccessDeniedErrorWithCause creates an AccessDeniedError wrapping cause.
func NewAccessDeniedErrorWithCause(action string, cause error) *AccessDeniedError {
	return &AccessDeniedError{
		Action: action,
		Cause:  cause,
	}
}

func (e *AccessDeniedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrAccessDenied, e.Action, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrAccessDenied, e.Action)
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}
