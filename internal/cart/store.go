package cart

import "digital-menu/internal/model"

// Store is the persistence port for cart snapshots. Any durable local
// key-value store satisfies it; the engine never depends on where or how
// snapshots are written.
type Store interface {
	// Load retrieves the snapshot for a cart. The second return value is
	// false when no snapshot exists.
	Load(id string) (*model.CartSnapshot, bool, error)

	// Save persists the snapshot for a cart, replacing any previous one.
	Save(id string, snapshot *model.CartSnapshot) error

	// Delete removes the snapshot for a cart.
	Delete(id string) error

	// Close releases any resources held by the store.
	Close() error
}
