package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/prismworlds/prism-auth/pkg/accounts"
)

// Policy names the two persistence horizons a session record can live
// under. Every login currently writes both horizons, so the distinction
// is inert; it is kept so a "this visit only" login is a wiring change,
// not a redesign.
type Policy string

const (
	// PolicyRemember keeps the session across restarts
	PolicyRemember Policy = "remember"
	// PolicySessionOnly keeps the session for the current process only
	PolicySessionOnly Policy = "session-only"
)

// Store persists the current-session record for one storage horizon
type Store interface {
	// Read returns the stored session account, or (nil, nil) when no
	// record is present
	Read() (*accounts.Account, error)

	// Write replaces the stored session record
	Write(account accounts.Account) error

	// Clear removes the stored session record. Clearing an absent
	// record is not an error.
	Clear() error
}

// FileStore implements Store as a single JSON document. The horizon is
// decided by the filesystem it is given: an OS filesystem survives
// restarts, an in-memory one lasts for the process.
type FileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore creates a FileStore keeping the session record at path
func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{
		fs:   fs,
		path: path,
	}
}

// Read implements Store
func (s *FileStore) Read() (*accounts.Account, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session record: %w", err)
	}

	var account accounts.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, fmt.Errorf("parsing session record: %w", err)
	}
	return &account, nil
}

// Write implements Store
func (s *FileStore) Write(account accounts.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("encoding session record: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating session path: %w", err)
		}
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0600); err != nil {
		return fmt.Errorf("writing session record: %w", err)
	}
	return nil
}

// Clear implements Store
func (s *FileStore) Clear() error {
	if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing session record: %w", err)
	}
	return nil
}
