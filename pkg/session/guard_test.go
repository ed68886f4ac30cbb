package session

import (
	"context"
	"testing"

	"github.com/spf13/afero"

	"github.com/prismworlds/prism-auth/pkg/accounts"
)

func newGuardEnv(t *testing.T) (*Manager, *Guard) {
	t.Helper()

	source := accounts.NewMemorySource()
	directory, err := accounts.NewDirectory(source)
	if err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	manager, err := NewManager(directory, nil,
		NewFileStore(afero.NewMemMapFs(), "session.json"),
		NewFileStore(afero.NewMemMapFs(), "session.json"))
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	guard, err := NewGuard(manager, "/", "/dashboard")
	if err != nil {
		t.Fatalf("failed to create guard: %v", err)
	}
	return manager, guard
}

func TestGuard(t *testing.T) {
	t.Run("requires manager", func(t *testing.T) {
		if _, err := NewGuard(nil, "/", "/dashboard"); err == nil {
			t.Error("expected error when manager not provided")
		}
	})

	t.Run("loading while initializing", func(t *testing.T) {
		_, guard := newGuardEnv(t)

		for _, requireAuth := range []bool{true, false} {
			decision := guard.Check(requireAuth)
			if !decision.Loading {
				t.Errorf("requireAuth=%v: expected loading decision, got %+v", requireAuth, decision)
			}
			if decision.Allow || decision.Redirect != "" {
				t.Errorf("requireAuth=%v: loading decision must not allow or redirect: %+v", requireAuth, decision)
			}
		}
	})

	t.Run("anonymous", func(t *testing.T) {
		manager, guard := newGuardEnv(t)
		manager.Restore()

		decision := guard.Check(true)
		if decision.Allow || decision.Redirect != "/" {
			t.Errorf("expected redirect to /, got %+v", decision)
		}

		decision = guard.Check(false)
		if !decision.Allow {
			t.Errorf("expected anonymous-only route to render, got %+v", decision)
		}
	})

	t.Run("authenticated", func(t *testing.T) {
		manager, guard := newGuardEnv(t)
		manager.Restore()

		res := manager.Register(context.Background(), RegisterInput{
			Name:     "Asha",
			Email:    "asha@test.com",
			Password: "secret1",
			Kind:     accounts.KindStudent,
		})
		if !res.OK {
			t.Fatalf("register failed: %s", res.Message)
		}

		decision := guard.Check(true)
		if !decision.Allow {
			t.Errorf("expected authenticated route to render, got %+v", decision)
		}

		decision = guard.Check(false)
		if decision.Allow || decision.Redirect != "/dashboard" {
			t.Errorf("expected redirect to /dashboard, got %+v", decision)
		}
	})
}
