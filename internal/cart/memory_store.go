package cart

import (
	"encoding/json"
	"sync"

	"digital-menu/internal/model"
)

// MemoryStore implements Store in memory. Snapshots are round-tripped
// through JSON so serialization behaves the same as the durable store.
type MemoryStore struct {
	mu        sync.Mutex
	snapshots map[string][]byte
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

// Load retrieves the snapshot for a cart.
func (m *MemoryStore) Load(id string) (*model.CartSnapshot, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	val, ok := m.snapshots[id]
	if !ok {
		return nil, false, nil
	}

	var snapshot model.CartSnapshot
	if err := json.Unmarshal(val, &snapshot); err != nil {
		return nil, false, err
	}
	return &snapshot, true, nil
}

// Save persists the snapshot for a cart.
func (m *MemoryStore) Save(id string, snapshot *model.CartSnapshot) error {
	val, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[id] = val
	return nil
}

// Delete removes the snapshot for a cart.
func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, id)
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error { return nil }

// Corrupt overwrites a stored snapshot with bytes that do not parse.
// Test hook for exercising the corrupted-snapshot path.
func (m *MemoryStore) Corrupt(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[id] = []byte("{not json")
}
