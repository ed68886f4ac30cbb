package accounts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/prismworlds/prism-auth/pkg/logging"
)

// FileSource implements Source as a single JSON array document
type FileSource struct {
	fs   afero.Fs
	path string
}

// NewFileSource creates a FileSource storing the directory at path
func NewFileSource(fs afero.Fs, path string) *FileSource {
	return &FileSource{
		fs:   fs,
		path: path,
	}
}

// LoadAll implements Source
func (s *FileSource) LoadAll() ([]Account, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.App.Debug("Directory file not present, starting empty", "path", s.path)
			return []Account{}, nil
		}
		return nil, fmt.Errorf("reading directory file: %w", err)
	}

	var accounts []Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("parsing directory file: %w", err)
	}
	if accounts == nil {
		accounts = []Account{}
	}
	return accounts, nil
}

// SaveAll implements Source
func (s *FileSource) SaveAll(accounts []Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encoding directory: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory path: %w", err)
		}
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0644); err != nil {
		return fmt.Errorf("writing directory file: %w", err)
	}

	logging.App.Debug("Persisted directory", "path", s.path, "accounts", len(accounts))
	return nil
}
