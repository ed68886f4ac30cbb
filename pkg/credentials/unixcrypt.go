package credentials

import (
	"errors"
	"fmt"

	"github.com/digitive/crypt"
)

// UnixCrypt implements Scheme using the traditional Unix crypt algorithm.
// It exists as the drop-in hashed alternative to Plaintext.
type UnixCrypt struct{}

// NewUnixCrypt creates a new Unix crypt scheme
func NewUnixCrypt() *UnixCrypt {
	return &UnixCrypt{}
}

// Hash implements Hasher
func (h *UnixCrypt) Hash(password string) (string, error) {
	if len(password) < 2 {
		return "", errors.New("password too short to salt")
	}
	// Use the first two characters of the password as the salt
	salt := password[:2]
	hashed, err := crypt.Crypt(password, salt)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return hashed, nil
}

// VerifyPassword implements Verifier
func (h *UnixCrypt) VerifyPassword(stored, password string) error {
	if len(stored) < 2 {
		return errors.New("invalid hash: too short")
	}

	// Extract salt from the hash (first 2 characters)
	salt := stored[:2]
	computed, err := crypt.Crypt(password, salt)
	if err != nil {
		return err
	}

	if computed != stored {
		return ErrPasswordMismatch
	}
	return nil
}
