package accounts

import "errors"

var (
	// ErrAccountNotFound is returned when no account matches a lookup
	ErrAccountNotFound = errors.New("account not found")

	// ErrEmailTaken is returned when registering an email that already
	// exists in the directory, regardless of account kind
	ErrEmailTaken = errors.New("email already registered")
)
