package credentials

// Plaintext stores passwords verbatim and compares them directly. This is
// a named limitation of the system, not a feature: it preserves the
// persisted layout the rest of the stack expects.
type Plaintext struct{}

// NewPlaintext creates the plaintext scheme
func NewPlaintext() *Plaintext {
	return &Plaintext{}
}

// Hash implements Hasher; the stored credential is the password itself
func (p *Plaintext) Hash(password string) (string, error) {
	return password, nil
}

// VerifyPassword implements Verifier
func (p *Plaintext) VerifyPassword(stored, password string) error {
	if stored != password {
		return ErrPasswordMismatch
	}
	return nil
}
