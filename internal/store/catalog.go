package store

import (
	"context"
	"time"

	"github.com/ksynicapp/storefront-server/internal/domain"
)

// SaveCatalog replaces the cached catalog snapshot and records the current
// time as its freshness timestamp.
func (s *Store) SaveCatalog(ctx context.Context, items []domain.Item) error {
	if err := s.Items.DeleteAll(ctx); err != nil {
		return err
	}
	for i := range items {
		if err := s.Items.Put(ctx, items[i].ID, &items[i]); err != nil {
			return err
		}
	}
	return s.setJSON(catalogCachedAtKey, time.Now())
}

// LoadCatalog returns the cached catalog snapshot, if any.
func (s *Store) LoadCatalog(ctx context.Context) ([]domain.Item, bool, error) {
	ptrs, err := s.Items.All(ctx)
	if err != nil {
		return nil, false, err
	}
	if len(ptrs) == 0 {
		return nil, false, nil
	}

	items := make([]domain.Item, len(ptrs))
	for i, p := range ptrs {
		items[i] = *p
	}
	return items, true, nil
}

// SetCatalogCachedAt overrides the snapshot's freshness timestamp. Used
// by seed tooling and freshness tests.
func (s *Store) SetCatalogCachedAt(ctx context.Context, ts time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.setJSON(catalogCachedAtKey, ts)
}

// CatalogCachedAt returns when the catalog snapshot was stored, if ever.
func (s *Store) CatalogCachedAt(ctx context.Context) (time.Time, bool, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, false, err
	}

	var ts time.Time
	found, err := s.getJSON(catalogCachedAtKey, &ts)
	if err != nil || !found {
		return time.Time{}, false, err
	}
	return ts, true, nil
}

// ClearCatalog drops the cached snapshot and its timestamp.
func (s *Store) ClearCatalog(ctx context.Context) error {
	if err := s.Items.DeleteAll(ctx); err != nil {
		return err
	}
	return s.delete(catalogCachedAtKey)
}
