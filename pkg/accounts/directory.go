package accounts

import (
	"fmt"
	"sync"

	"github.com/prismworlds/prism-auth/pkg/logging"
)

// Directory provides lookup and mutation over the persisted account
// directory. It reads through to its source on every call, so the
// persisted document is always the system of record.
type Directory struct {
	mu     sync.Mutex
	source Source
}

// NewDirectory creates a Directory over the given source
func NewDirectory(source Source) (*Directory, error) {
	if source == nil {
		return nil, fmt.Errorf("account source is required")
	}
	return &Directory{source: source}, nil
}

// All returns every account in directory order
func (d *Directory) All() ([]Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.source.LoadAll()
}

// FindByEmail returns the account with a case-insensitively matching
// email, regardless of kind
func (d *Directory) FindByEmail(email string) (*Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	accounts, err := d.source.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].EmailEquals(email) {
			a := accounts[i]
			return &a, nil
		}
	}
	return nil, ErrAccountNotFound
}

// FindByEmailAndKind returns the account matching both the email
// (case-insensitive) and the kind. The kind filter is defensive: the
// write-time uniqueness invariant already forbids one email under two
// kinds.
func (d *Directory) FindByEmailAndKind(email string, kind Kind) (*Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	accounts, err := d.source.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].EmailEquals(email) && accounts[i].Kind == kind {
			a := accounts[i]
			return &a, nil
		}
	}
	return nil, ErrAccountNotFound
}

// Append adds a new account and persists the directory. The email
// uniqueness invariant is enforced here, across kinds.
func (d *Directory) Append(account Account) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	accounts, err := d.source.LoadAll()
	if err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].EmailEquals(account.Email) {
			return ErrEmailTaken
		}
	}

	accounts = append(accounts, account)
	if err := d.source.SaveAll(accounts); err != nil {
		return err
	}

	logging.App.Debug("Appended account to directory", "id", account.ID, "email", account.Email, "kind", account.Kind)
	return nil
}

// Update replaces the stored account with a matching id and persists the
// directory. This is the only mutation path that touches an existing
// entry.
func (d *Directory) Update(account Account) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	accounts, err := d.source.LoadAll()
	if err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].ID == account.ID {
			accounts[i] = account
			if err := d.source.SaveAll(accounts); err != nil {
				return err
			}
			logging.App.Debug("Updated account in directory", "id", account.ID)
			return nil
		}
	}
	return ErrAccountNotFound
}
