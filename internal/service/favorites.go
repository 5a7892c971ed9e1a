// Package service implements the storefront's business logic: the catalog
// cache, the favorites ledger, the cart ledger, and the profile/session
// records. Services hold in-memory working state and persist through the
// store on every mutation.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ksynicapp/storefront-server/internal/catalog"
	"github.com/ksynicapp/storefront-server/internal/domain"
	"github.com/ksynicapp/storefront-server/internal/store"
)

// FavoritesService owns the set of favorited item ids. The set is
// initialized lazily on first use: a persisted set is adopted as-is
// (including an explicitly empty one), otherwise the provider's default
// favorite flags seed it and the seed is persisted.
type FavoritesService struct {
	store    *store.Store
	provider catalog.Provider
	logger   *slog.Logger

	mu          sync.Mutex
	ids         map[string]struct{}
	initialized bool
}

// NewFavoritesService creates a new favorites ledger.
func NewFavoritesService(store *store.Store, provider catalog.Provider, logger *slog.Logger) *FavoritesService {
	return &FavoritesService{
		store:    store,
		provider: provider,
		logger:   logger,
		ids:      make(map[string]struct{}),
	}
}

// ensureInit loads or seeds the favorites set. Must be called with mu held.
func (s *FavoritesService) ensureInit(ctx context.Context) error {
	if s.initialized {
		return nil
	}

	saved, found, err := s.store.FavoriteIDs(ctx)
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}
	if found {
		s.ids = saved
		s.initialized = true
		return nil
	}

	// First run: seed from the provider's default flags and persist.
	items, err := s.provider.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("seed favorites: %w", err)
	}
	seed := make(map[string]struct{})
	for _, it := range items {
		if it.IsFavorite {
			seed[it.ID] = struct{}{}
		}
	}
	if err := s.store.SaveFavoriteIDs(ctx, seed); err != nil {
		return fmt.Errorf("persist favorites seed: %w", err)
	}
	s.ids = seed
	s.initialized = true
	s.logger.Info("seeded favorites from provider defaults", "count", len(seed))
	return nil
}

// IsFavorite reports whether an item is favorited.
func (s *FavoritesService) IsFavorite(ctx context.Context, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureInit(ctx); err != nil {
		return false, err
	}
	_, ok := s.ids[itemID]
	return ok, nil
}

// Add marks an item as favorite. Adding an id that is already present is
// a no-op. The set is persisted before returning.
func (s *FavoritesService) Add(ctx context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureInit(ctx); err != nil {
		return err
	}
	if _, ok := s.ids[itemID]; ok {
		return nil
	}
	s.ids[itemID] = struct{}{}
	if err := s.store.SaveFavoriteIDs(ctx, s.ids); err != nil {
		delete(s.ids, itemID)
		return fmt.Errorf("persist favorites: %w", err)
	}
	return nil
}

// Remove unmarks an item. Removing an absent id is a no-op. The set is
// persisted before returning.
func (s *FavoritesService) Remove(ctx context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureInit(ctx); err != nil {
		return err
	}
	if _, ok := s.ids[itemID]; !ok {
		return nil
	}
	delete(s.ids, itemID)
	if err := s.store.SaveFavoriteIDs(ctx, s.ids); err != nil {
		s.ids[itemID] = struct{}{}
		return fmt.Errorf("persist favorites: %w", err)
	}
	return nil
}

// Stamp returns copies of the given items with their favorite flags set
// from the current set. The input slice is never mutated.
func (s *FavoritesService) Stamp(ctx context.Context, items []domain.Item) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureInit(ctx); err != nil {
		return nil, err
	}
	stamped := make([]domain.Item, len(items))
	for i, it := range items {
		_, fav := s.ids[it.ID]
		stamped[i] = it.WithFavorite(fav)
	}
	return stamped, nil
}

// StampOne returns a copy of a single item with its favorite flag set.
func (s *FavoritesService) StampOne(ctx context.Context, item domain.Item) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureInit(ctx); err != nil {
		return item, err
	}
	_, fav := s.ids[item.ID]
	return item.WithFavorite(fav), nil
}

// Reload re-reads the persisted set, discarding in-memory state. Used by
// the cart before refreshing line favorite flags, so it always sees the
// stored truth.
func (s *FavoritesService) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved, found, err := s.store.FavoriteIDs(ctx)
	if err != nil {
		return fmt.Errorf("reload favorites: %w", err)
	}
	if found {
		s.ids = saved
		s.initialized = true
	}
	return nil
}

// Snapshot returns a copy of the current id set.
func (s *FavoritesService) Snapshot(ctx context.Context) (map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureInit(ctx); err != nil {
		return nil, err
	}
	out := make(map[string]struct{}, len(s.ids))
	for id := range s.ids {
		out[id] = struct{}{}
	}
	return out, nil
}
