package accounts

import (
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestFileSource(t *testing.T) {
	t.Run("load before first save", func(t *testing.T) {
		source := NewFileSource(afero.NewMemMapFs(), "data/accounts.json")

		accounts, err := source.LoadAll()
		if err != nil {
			t.Fatalf("LoadAll failed: %v", err)
		}
		if len(accounts) != 0 {
			t.Errorf("expected empty directory, got %d accounts", len(accounts))
		}
	})

	t.Run("save and load roundtrip", func(t *testing.T) {
		source := NewFileSource(afero.NewMemMapFs(), "data/accounts.json")

		want := []Account{
			{
				ID:        NewID(),
				Name:      "Asha",
				Email:     "asha@test.com",
				Password:  "secret1",
				Kind:      KindStudent,
				Grade:     "8th",
				School:    "X",
				State:     "Goa",
				CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
			},
			{
				ID:        NewID(),
				Name:      "Ravi",
				Email:     "ravi@test.com",
				Password:  "secret2",
				Kind:      KindTeacher,
				Subject:   "Science",
				CreatedAt: time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC),
			},
		}
		if err := source.SaveAll(want); err != nil {
			t.Fatalf("SaveAll failed: %v", err)
		}

		got, err := source.LoadAll()
		if err != nil {
			t.Fatalf("LoadAll failed: %v", err)
		}
		if len(got) != len(want) {
			t.Fatalf("expected %d accounts, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i].ID != want[i].ID {
				t.Errorf("account %d: expected id %q, got %q", i, want[i].ID, got[i].ID)
			}
			if got[i].Kind != want[i].Kind {
				t.Errorf("account %d: expected kind %q, got %q", i, want[i].Kind, got[i].Kind)
			}
			if !got[i].CreatedAt.Equal(want[i].CreatedAt) {
				t.Errorf("account %d: expected createdAt %v, got %v", i, want[i].CreatedAt, got[i].CreatedAt)
			}
		}
	})

	t.Run("corrupt directory file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		if err := afero.WriteFile(fs, "accounts.json", []byte("{not json"), 0644); err != nil {
			t.Fatalf("failed to write corrupt file: %v", err)
		}

		source := NewFileSource(fs, "accounts.json")
		if _, err := source.LoadAll(); err == nil {
			t.Error("expected error loading corrupt directory file")
		}
	})

	t.Run("preserves directory order", func(t *testing.T) {
		source := NewFileSource(afero.NewMemMapFs(), "accounts.json")

		saved := []Account{
			{ID: "a", Email: "a@test.com", Kind: KindStudent},
			{ID: "b", Email: "b@test.com", Kind: KindStudent},
			{ID: "c", Email: "c@test.com", Kind: KindTeacher},
		}
		if err := source.SaveAll(saved); err != nil {
			t.Fatalf("SaveAll failed: %v", err)
		}

		got, err := source.LoadAll()
		if err != nil {
			t.Fatalf("LoadAll failed: %v", err)
		}
		for i, id := range []string{"a", "b", "c"} {
			if got[i].ID != id {
				t.Errorf("position %d: expected id %q, got %q", i, id, got[i].ID)
			}
		}
	})
}
