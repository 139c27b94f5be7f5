// Package persist saves navigation stacks across launches. Handheld
// devices power off abruptly and apps are expected to reopen where the
// user left them, so the store is a small single-file database the app
// writes on every navigation change and reads once at startup.
package persist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/router"
)

var stacksBucket = []byte("stacks")

// ErrNoSnapshot is returned by Load when the stack key has never been
// saved.
var ErrNoSnapshot = errors.New("persist: no snapshot for stack")

// Store holds persisted navigation snapshots, one per stack key.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the snapshot database at path, creating parent
// directories as needed. The file is locked for the lifetime of the
// store; a second Open on the same path fails after a short timeout
// instead of blocking forever.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("persist: creating directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("persist: opening database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists(stacksBucket)
		return createErr
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("persist: creating bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes the router's current state under the stack key, replacing
// any previous snapshot.
func (s *Store) Save(stackKey string, r *router.Router) error {
	data, err := r.Snapshot()
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stacksBucket).Put([]byte(stackKey), data)
	})
}

// Load restores a saved snapshot into the router, notifying its
// subscribers. Returns ErrNoSnapshot when the key has never been saved,
// leaving the router untouched.
func (s *Store) Load(stackKey string, r *router.Router) error {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		stored := tx.Bucket(stacksBucket).Get([]byte(stackKey))
		if stored == nil {
			return ErrNoSnapshot
		}
		// The slice is only valid inside the transaction.
		data = append(data, stored...)
		return nil
	})
	if err != nil {
		return err
	}
	return r.Restore(data)
}

// Delete removes the snapshot for a stack key. Deleting a key that was
// never saved is a no-op.
func (s *Store) Delete(stackKey string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stacksBucket).Delete([]byte(stackKey))
	})
}

// Keys returns every stack key with a saved snapshot.
func (s *Store) Keys() ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(stacksBucket).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}
