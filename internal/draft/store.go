package draft

import (
	"context"
	"errors"
	"sync"
)

// Session-storage keys used by the order wizard. Clearing a draft removes
// every one of them.
const (
	KeyPeople       = "orderPeople"
	KeyItems        = "orderData"
	KeySummary      = "orderSummary"
	KeyCustomerInfo = "customerInfo"
	KeyPendingOrder = "pendingOrder"
)

func AllKeys() []string {
	return []string{KeyPeople, KeyItems, KeySummary, KeyCustomerInfo, KeyPendingOrder}
}

var (
	// ErrKeyNotFound is returned by a Store when a key has no value.
	ErrKeyNotFound = errors.New("draft: key not found")
	// ErrNoDraft means the session has no draft at all; callers redirect the
	// user to the first wizard step.
	ErrNoDraft = errors.New("draft: no draft in session")
)

// Store is the storage adapter behind an Accumulator. Values are opaque JSON
// blobs keyed by session and well-known key.
type Store interface {
	Get(ctx context.Context, sessionID, key string) ([]byte, error)
	Set(ctx context.Context, sessionID, key string, value []byte) error
	Delete(ctx context.Context, sessionID string, keys ...string) error
}

// MemoryStore keeps drafts in process memory. Used by tests and useful for
// single-instance deployments.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.sessions[sessionID][key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, sessionID, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessions[sessionID] == nil {
		s.sessions[sessionID] = make(map[string][]byte)
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	s.sessions[sessionID][key] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.sessions[sessionID], key)
	}
	if len(s.sessions[sessionID]) == 0 {
		delete(s.sessions, sessionID)
	}
	return nil
}
