package credentials

import (
	"errors"
	"testing"
)

func TestPlaintext(t *testing.T) {
	scheme := NewPlaintext()

	t.Run("hash is identity", func(t *testing.T) {
		stored, err := scheme.Hash("secret1")
		if err != nil {
			t.Fatalf("Hash failed: %v", err)
		}
		if stored != "secret1" {
			t.Errorf("expected stored credential %q, got %q", "secret1", stored)
		}
	})

	t.Run("matching password", func(t *testing.T) {
		if err := scheme.VerifyPassword("secret1", "secret1"); err != nil {
			t.Errorf("verification failed: %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		err := scheme.VerifyPassword("secret1", "wrong")
		if !errors.Is(err, ErrPasswordMismatch) {
			t.Errorf("expected ErrPasswordMismatch, got %v", err)
		}
	})

	t.Run("comparison is case-sensitive", func(t *testing.T) {
		if err := scheme.VerifyPassword("Secret1", "secret1"); err == nil {
			t.Error("expected mismatch for different case")
		}
	})
}

func TestUnixCrypt(t *testing.T) {
	scheme := NewUnixCrypt()

	t.Run("known hash", func(t *testing.T) {
		// Known crypt hash for "billiards"
		if err := scheme.VerifyPassword("GgHKjSw.CAsOo", "billiards"); err != nil {
			t.Errorf("verification failed: %v", err)
		}
	})

	t.Run("hash then verify roundtrip", func(t *testing.T) {
		stored, err := scheme.Hash("secret1")
		if err != nil {
			t.Fatalf("Hash failed: %v", err)
		}
		if stored == "secret1" {
			t.Error("expected stored credential to differ from the password")
		}
		if err := scheme.VerifyPassword(stored, "secret1"); err != nil {
			t.Errorf("verification failed: %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		stored, err := scheme.Hash("secret1")
		if err != nil {
			t.Fatalf("Hash failed: %v", err)
		}
		if err := scheme.VerifyPassword(stored, "secret2"); !errors.Is(err, ErrPasswordMismatch) {
			t.Errorf("expected ErrPasswordMismatch, got %v", err)
		}
	})

	t.Run("malformed stored hash", func(t *testing.T) {
		if err := scheme.VerifyPassword("x", "secret1"); err == nil {
			t.Error("expected error for truncated hash")
		}
	})
}

// The two schemes must be interchangeable behind the Scheme interface
func TestSchemeInterchangeability(t *testing.T) {
	for _, scheme := range []Scheme{NewPlaintext(), NewUnixCrypt()} {
		stored, err := scheme.Hash("swordfish")
		if err != nil {
			t.Fatalf("Hash failed: %v", err)
		}
		if err := scheme.VerifyPassword(stored, "swordfish"); err != nil {
			t.Errorf("roundtrip failed: %v", err)
		}
		if err := scheme.VerifyPassword(stored, "tunafish"); err == nil {
			t.Error("expected mismatch")
		}
	}
}
