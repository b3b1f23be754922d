package agegate

import "sync"

// VerificationStore persists the boolean verified flag between visits.
// Only the positive outcome is ever stored; a failed attempt leaves the
// flag untouched so the visitor may retry.
type VerificationStore interface {
	// Verified reports whether the visitor has previously passed the gate.
	Verified() (bool, error)
	// SetVerified records the verification outcome.
	SetVerified(verified bool) error
}

// MemoryStore is an in-process VerificationStore. It backs tests and any
// context without durable client storage.
type MemoryStore struct {
	mu       sync.Mutex
	verified bool
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Verified reports the stored flag.
func (s *MemoryStore) Verified() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verified, nil
}

// SetVerified records the flag.
func (s *MemoryStore) SetVerified(verified bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verified = verified
	return nil
}
