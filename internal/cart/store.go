package cart

import (
	"errors"
	"sync"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// Store is the persistence port for session carts. Implementations persist
// the encoded cart and run the stored-shape migration on load.
type Store interface {
	Load(sessionID string) (Cart, error)
	Save(sessionID string, c Cart) error
	Delete(sessionID string) error
}

// InMemoryStore keeps carts as encoded JSON keyed by session id. Storing the
// serialized form (rather than the Cart value) means tests exercise the same
// decode path the database store uses.
type InMemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{data: make(map[string][]byte)}
}

// SeedRaw installs a raw stored payload for a session, bypassing Encode.
// Tests use it to plant legacy-shaped carts.
func (s *InMemoryStore) SeedRaw(sessionID string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = raw
}

func (s *InMemoryStore) Load(sessionID string) (Cart, error) {
	s.mu.RLock()
	raw, ok := s.data[sessionID]
	s.mu.RUnlock()
	if !ok {
		return Cart{}, nil
	}
	return Decode(raw)
}

func (s *InMemoryStore) Save(sessionID string, c Cart) error {
	raw, err := Encode(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = raw
	return nil
}

func (s *InMemoryStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}
