package accounts

import "testing"

func TestMemorySource(t *testing.T) {
	source := NewMemorySource()

	accounts, err := source.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("expected empty source, got %d accounts", len(accounts))
	}

	saved := []Account{{ID: "a", Email: "a@test.com", Kind: KindStudent}}
	if err := source.SaveAll(saved); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}

	// Mutating the caller's slice must not affect the stored copy
	saved[0].Email = "changed@test.com"

	accounts, err = source.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if accounts[0].Email != "a@test.com" {
		t.Errorf("expected stored copy to be isolated, got email %q", accounts[0].Email)
	}
}
