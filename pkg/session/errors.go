package session

import "errors"

var (
	// ErrNotReady is returned when an operation runs before session
	// restoration has completed
	ErrNotReady = errors.New("session manager not initialized")

	// ErrMissingFields is returned when a required input field is empty
	ErrMissingFields = errors.New("missing required field")

	// ErrInvalidEmail is returned when an email does not have a
	// local-part@domain shape
	ErrInvalidEmail = errors.New("invalid email")

	// ErrWeakPassword is returned when a password is shorter than the
	// minimum length
	ErrWeakPassword = errors.New("weak password")

	// ErrInvalidKind is returned when an account kind is not one of the
	// known values
	ErrInvalidKind = errors.New("invalid account kind")

	// ErrNoSession is returned when an operation requires an active
	// session and there is none
	ErrNoSession = errors.New("no active session")
)

// Result is the declarative outcome of a session operation. Message is
// always safe to show to the user; Err carries the underlying cause for
// logs and tests and is nil on success.
type Result struct {
	OK      bool
	Message string
	Err     error
}

func success(message string) Result {
	return Result{OK: true, Message: message}
}

func failure(message string, err error) Result {
	return Result{OK: false, Message: message, Err: err}
}
