package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"iter"

	"github.com/dgraph-io/badger/v4"
)

// Entity provides generic keyed-collection operations for a domain type.
// Each record is stored under prefix+id as JSON.
type Entity[T any] struct {
	store  *Store
	prefix string
}

// NewEntity creates a new Entity instance for type T.
func NewEntity[T any](s *Store, prefix string) *Entity[T] {
	return &Entity[T]{
		store:  s,
		prefix: prefix,
	}
}

// Put creates or replaces the entity with the given ID.
func (e *Entity[T]) Put(ctx context.Context, id string, entity *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	key := e.prefix + id
	return e.store.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Get retrieves an entity by ID.
// Returns ErrNotFound if the entity does not exist or its stored bytes
// are malformed.
func (e *Entity[T]) Get(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := e.prefix + id
	var entity T

	found, err := e.store.getJSON(key, &entity)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &entity, nil
}

// Delete deletes an entity by ID.
// This operation is idempotent - it does not return an error if the entity does not exist.
func (e *Entity[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := e.prefix + id
	return e.store.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// DeleteAll removes every entity under the prefix.
func (e *Entity[T]) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return e.store.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(e.prefix)
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		var keys [][]byte
		for it.Seek([]byte(e.prefix)); it.ValidForPrefix([]byte(e.prefix)); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return fmt.Errorf("failed to delete key %s: %w", key, err)
			}
		}
		return nil
	})
}

// List returns an iterator over all entities under the prefix.
// Records that fail to decode are skipped with a warning, matching the
// store's absent-on-corruption policy.
func (e *Entity[T]) List(ctx context.Context) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		e.store.db.View(func(txn *badger.Txn) error {
			opts := badger.DefaultIteratorOptions
			opts.Prefix = []byte(e.prefix)
			opts.PrefetchValues = true

			it := txn.NewIterator(opts)
			defer it.Close()

			for it.Seek([]byte(e.prefix)); it.ValidForPrefix([]byte(e.prefix)); it.Next() {
				if ctx.Err() != nil {
					yield(nil, ctx.Err())
					return ctx.Err()
				}

				var entity T
				err := it.Item().Value(func(val []byte) error {
					return json.Unmarshal(val, &entity)
				})
				if err != nil {
					if e.store.logger != nil {
						e.store.logger.Warn("skipping malformed record",
							"key", string(it.Item().Key()), "error", err)
					}
					continue
				}

				if !yield(&entity, nil) {
					return nil // Consumer stopped early
				}
			}

			return nil
		})
	}
}

// All collects every entity under the prefix into a slice.
func (e *Entity[T]) All(ctx context.Context) ([]*T, error) {
	var out []*T
	for entity, err := range e.List(ctx) {
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}
