package cart

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"digital-menu/internal/model"

	"github.com/cockroachdb/pebble"
)

// PebbleStore implements Store using PebbleDB, one key per cart.
type PebbleStore struct {
	db *pebble.DB
}

// NewPebbleStore opens (or creates) a Pebble database at dir.
func NewPebbleStore(dir string) (*PebbleStore, error) {
	db, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebble open: %w", err)
	}
	return &PebbleStore{db: db}, nil
}

// Load retrieves the snapshot for a cart.
func (p *PebbleStore) Load(id string) (*model.CartSnapshot, bool, error) {
	val, closer, err := p.db.Get([]byte(id))
	if err != nil {
		if err == pebble.ErrNotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("pebble get: %w", err)
	}
	defer closer.Close()

	var snapshot model.CartSnapshot
	if err := json.Unmarshal(val, &snapshot); err != nil {
		return nil, false, fmt.Errorf("decode cart snapshot: %w", err)
	}
	return &snapshot, true, nil
}

// Save persists the snapshot for a cart, replacing any previous one.
func (p *PebbleStore) Save(id string, snapshot *model.CartSnapshot) error {
	val, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	if err := p.db.Set([]byte(id), val, pebble.Sync); err != nil {
		return fmt.Errorf("pebble set: %w", err)
	}
	return nil
}

// Delete removes the snapshot for a cart.
func (p *PebbleStore) Delete(id string) error {
	if err := p.db.Delete([]byte(id), pebble.Sync); err != nil {
		return fmt.Errorf("pebble delete: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (p *PebbleStore) Close() error { return p.db.Close() }
