package accounts

import "sync"

// MemorySource implements Source using an in-memory slice
type MemorySource struct {
	mu       sync.RWMutex
	accounts []Account

	// Optional injected failures for exercising persistence errors
	loadErr error
	saveErr error
}

// NewMemorySource creates an empty MemorySource
func NewMemorySource() *MemorySource {
	return &MemorySource{
		accounts: []Account{},
	}
}

// LoadAll implements Source
func (s *MemorySource) LoadAll() ([]Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := make([]Account, len(s.accounts))
	copy(out, s.accounts)
	return out, nil
}

// SaveAll implements Source
func (s *MemorySource) SaveAll(accounts []Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil {
		return s.saveErr
	}
	s.accounts = make([]Account, len(accounts))
	copy(s.accounts, accounts)
	return nil
}

// FailLoads makes subsequent LoadAll calls return err (nil to clear)
func (s *MemorySource) FailLoads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}

// FailSaves makes subsequent SaveAll calls return err (nil to clear)
func (s *MemorySource) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}
