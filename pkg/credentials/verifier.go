// Package credentials isolates credential storage and comparison behind an
// interface so the password scheme is a drop-in replacement.
package credentials

import "errors"

// ErrPasswordMismatch is returned when a supplied password does not match
// the stored credential
var ErrPasswordMismatch = errors.New("password mismatch")

// Verifier checks a supplied password against a stored credential
type Verifier interface {
	// VerifyPassword returns nil when password matches the stored
	// credential, ErrPasswordMismatch otherwise
	VerifyPassword(stored, password string) error
}

// Hasher derives the stored form of a password at registration time
type Hasher interface {
	// Hash returns the credential to store for a plaintext password
	Hash(password string) (string, error)
}

// Scheme is a complete password scheme: it both derives and verifies
// stored credentials
type Scheme interface {
	Verifier
	Hasher
}
