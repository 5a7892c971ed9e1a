// Package store persists storefront state in an embedded Badger database.
// Values cross this boundary as JSON; a value that fails to decode is
// treated as absent rather than fatal, so callers always get defaults or
// empty collections back.
package store

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/ksynicapp/storefront-server/internal/domain"
)

// Key layout. Single-record keys live beside the entity prefixes.
const (
	favoritesKey      = "favorite:ids"
	catalogItemPrefix = "catalog:item:"
	catalogCachedAtKey = "catalog:cached_at"
	cartLinePrefix    = "cart:line:"
	profileKey        = "profile:me"
	loggedInKey       = "session:logged_in"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	// Generic entities
	Items     *Entity[domain.Item]
	CartLines *Entity[domain.CartRecord]
}

// New creates a new Store instance with the given database path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	store := &Store{
		db:     db,
		logger: logger,
	}

	store.Items = NewEntity[domain.Item](store, catalogItemPrefix)
	store.CartLines = NewEntity[domain.CartRecord](store, cartLinePrefix)

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return store, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}

// Helper methods for database operations.

// getJSON retrieves a value by key. Returns false when the key is absent.
// Malformed stored bytes are logged and reported as absent, never as an
// error; the caller falls back to its default.
func (s *Store) getJSON(key string, dest any) (bool, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw = append(raw[:0], val...)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		if s.logger != nil {
			s.logger.Warn("discarding malformed stored value", "key", key, "error", err)
		}
		return false, nil
	}
	return true, nil
}

// setJSON stores a value by key.
func (s *Store) setJSON(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// delete removes a key from the database.
func (s *Store) delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}
