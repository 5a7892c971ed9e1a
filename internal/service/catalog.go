package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ksynicapp/storefront-server/internal/catalog"
	"github.com/ksynicapp/storefront-server/internal/domain"
	domainerrors "github.com/ksynicapp/storefront-server/internal/errors"
	"github.com/ksynicapp/storefront-server/internal/store"
)

// CatalogService serves catalog reads through a persisted cache with a
// maximum age. Fresh cache hits skip the provider entirely; misses and
// stale snapshots refetch and overwrite the cache. Favorite flags are
// stamped on every read, never trusted from the cache.
type CatalogService struct {
	store     *store.Store
	provider  catalog.Provider
	favorites *FavoritesService
	maxAge    time.Duration
	logger    *slog.Logger
}

// NewCatalogService creates a new catalog service. maxAge bounds cache
// freshness; at or under the bound the cache is served, over it the
// provider is hit again.
func NewCatalogService(
	store *store.Store,
	provider catalog.Provider,
	favorites *FavoritesService,
	maxAge time.Duration,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		store:     store,
		provider:  provider,
		favorites: favorites,
		maxAge:    maxAge,
		logger:    logger,
	}
}

// shouldRefresh reports whether the cache is missing or older than maxAge.
func (s *CatalogService) shouldRefresh(ctx context.Context) bool {
	cachedAt, found, err := s.store.CatalogCachedAt(ctx)
	if err != nil || !found {
		return true
	}
	return time.Since(cachedAt) > s.maxAge
}

// Products returns the full catalog, from cache when fresh.
func (s *CatalogService) Products(ctx context.Context) ([]domain.Item, error) {
	if !s.shouldRefresh(ctx) {
		cached, found, err := s.store.LoadCatalog(ctx)
		if err != nil {
			return nil, fmt.Errorf("load catalog cache: %w", err)
		}
		if found {
			s.repairImages(cached)
			return s.favorites.Stamp(ctx, cached)
		}
	}

	items, err := s.provider.FetchAll(ctx)
	if err != nil {
		return nil, providerError(err, "catalog fetch failed")
	}

	stamped, err := s.favorites.Stamp(ctx, items)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveCatalog(ctx, stamped); err != nil {
		// A failed cache write is not fatal; the next read refetches.
		s.logger.Warn("failed to cache catalog snapshot", "error", err)
	}
	return stamped, nil
}

// Product returns a single item with its favorite flag stamped, or a
// not-found error.
func (s *CatalogService) Product(ctx context.Context, id string) (*domain.Item, error) {
	item, err := s.provider.FetchByID(ctx, id)
	if err != nil {
		if domainerrors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		return nil, providerError(err, "catalog fetch failed")
	}
	stamped, err := s.favorites.StampOne(ctx, *item)
	if err != nil {
		return nil, err
	}
	return &stamped, nil
}

// ProductsByCategory returns a category's items with favorite flags stamped.
func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID string) ([]domain.Item, error) {
	items, err := s.provider.FetchByCategory(ctx, categoryID)
	if err != nil {
		return nil, providerError(err, "category fetch failed")
	}
	return s.favorites.Stamp(ctx, items)
}

// SearchProducts returns items matching the query, favorite flags stamped.
func (s *CatalogService) SearchProducts(ctx context.Context, query string) ([]domain.Item, error) {
	items, err := s.provider.Search(ctx, query)
	if err != nil {
		return nil, providerError(err, "search failed")
	}
	return s.favorites.Stamp(ctx, items)
}

// FavoriteProducts returns the catalog entries currently favorited, in
// catalog order.
func (s *CatalogService) FavoriteProducts(ctx context.Context) ([]domain.Item, error) {
	items, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	favs := make([]domain.Item, 0)
	for _, it := range items {
		if it.IsFavorite {
			favs = append(favs, it)
		}
	}
	return favs, nil
}

// canonicalSource is implemented by providers whose records are available
// without a network round trip, such as the built-in mock. It is the
// repair source for image lists lost in a cached snapshot.
type canonicalSource interface {
	Canonical() []domain.Item
}

// repairImages restores item and variant image-name lists that came back
// empty from the cache, copying them from the provider's canonical record
// with the same id. A provider without canonical records leaves cached
// items as they are.
func (s *CatalogService) repairImages(items []domain.Item) {
	src, ok := s.provider.(canonicalSource)
	if !ok {
		return
	}
	canon := make(map[string]*domain.Item)
	canonItems := src.Canonical()
	for i := range canonItems {
		canon[canonItems[i].ID] = &canonItems[i]
	}

	for i := range items {
		orig, ok := canon[items[i].ID]
		if !ok {
			continue
		}
		if len(items[i].ImageNames) == 0 {
			items[i].ImageNames = append([]string(nil), orig.ImageNames...)
		}
		for j := range items[i].Variants {
			v := &items[i].Variants[j]
			if len(v.ImageNames) > 0 {
				continue
			}
			if ov := orig.Variant(v.ID); ov != nil {
				v.ImageNames = append([]string(nil), ov.ImageNames...)
			}
		}
	}
}

// providerError maps a provider failure to an unavailable error unless it
// already carries a domain code.
func providerError(err error, msg string) error {
	var derr *domainerrors.Error
	if domainerrors.As(err, &derr) {
		return err
	}
	return domainerrors.Unavailable(msg).WithCause(err)
}
