package projection

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/ksynicapp/storefront-server/internal/domain"
	"github.com/ksynicapp/storefront-server/internal/service"
)

// CatalogProjection tracks the product browsing screens: the full
// listing, a single product, the favorites list, and search results.
//
// The listing loads once per process unless forced, and favorite toggles
// patch the held states in place instead of reloading.
type CatalogProjection struct {
	catalog   *service.CatalogService
	favorites *service.FavoritesService
	logger    *slog.Logger

	mu            sync.Mutex
	products      State[[]domain.Item]
	product       State[domain.Item]
	favoritesList State[[]domain.Item]
	searchResults State[[]domain.Item]

	hasLoadedProducts bool
	loadingProducts   bool
}

// NewCatalogProjection creates a catalog projection with all states idle.
func NewCatalogProjection(catalog *service.CatalogService, favorites *service.FavoritesService, logger *slog.Logger) *CatalogProjection {
	return &CatalogProjection{
		catalog:       catalog,
		favorites:     favorites,
		logger:        logger,
		products:      Idle[[]domain.Item](),
		product:       Idle[domain.Item](),
		favoritesList: Idle[[]domain.Item](),
		searchResults: Idle[[]domain.Item](),
	}
}

// Products returns the current listing state.
func (p *CatalogProjection) Products() State[[]domain.Item] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.products
}

// Product returns the current single-product state.
func (p *CatalogProjection) Product() State[domain.Item] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.product
}

// Favorites returns the current favorites-list state.
func (p *CatalogProjection) Favorites() State[[]domain.Item] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.favoritesList
}

// SearchResults returns the current search state.
func (p *CatalogProjection) SearchResults() State[[]domain.Item] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.searchResults
}

// LoadProducts loads the listing. Once loaded it is a no-op unless
// forced, and a load already in flight is never doubled.
func (p *CatalogProjection) LoadProducts(ctx context.Context, force bool) State[[]domain.Item] {
	p.mu.Lock()
	if (p.hasLoadedProducts || p.loadingProducts) && !force {
		state := p.products
		p.mu.Unlock()
		return state
	}
	p.loadingProducts = true
	p.products = Loading[[]domain.Item]()
	p.mu.Unlock()

	items, err := p.catalog.Products(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loadingProducts = false
	if err != nil {
		p.products = Errored[[]domain.Item](err.Error())
		return p.products
	}
	p.products = Success(items)
	p.hasLoadedProducts = true
	return p.products
}

// LoadProduct loads a single product into the detail state.
func (p *CatalogProjection) LoadProduct(ctx context.Context, id string) State[domain.Item] {
	p.mu.Lock()
	p.product = Loading[domain.Item]()
	p.mu.Unlock()

	item, err := p.catalog.Product(ctx, id)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.product = Errored[domain.Item](err.Error())
		return p.product
	}
	p.product = Success(*item)
	return p.product
}

// LoadFavorites loads the favorites list state.
func (p *CatalogProjection) LoadFavorites(ctx context.Context) State[[]domain.Item] {
	p.mu.Lock()
	p.favoritesList = Loading[[]domain.Item]()
	p.mu.Unlock()

	items, err := p.catalog.FavoriteProducts(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.favoritesList = Errored[[]domain.Item](err.Error())
		return p.favoritesList
	}
	p.favoritesList = Success(items)
	return p.favoritesList
}

// Search loads matches for the query. A blank query short-circuits to an
// empty result without hitting the provider.
func (p *CatalogProjection) Search(ctx context.Context, query string) State[[]domain.Item] {
	if strings.TrimSpace(query) == "" {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.searchResults = Success([]domain.Item{})
		return p.searchResults
	}

	p.mu.Lock()
	p.searchResults = Loading[[]domain.Item]()
	p.mu.Unlock()

	items, err := p.catalog.SearchProducts(ctx, query)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.searchResults = Errored[[]domain.Item](err.Error())
		return p.searchResults
	}
	p.searchResults = Success(items)
	return p.searchResults
}

// ClearSearch resets the search state to idle.
func (p *CatalogProjection) ClearSearch() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.searchResults = Idle[[]domain.Item]()
}

// ToggleFavorite flips an item's favorite flag through the ledger and
// patches every held success state in place. Returns the new flag.
func (p *CatalogProjection) ToggleFavorite(ctx context.Context, itemID string) (bool, error) {
	current, err := p.favorites.IsFavorite(ctx, itemID)
	if err != nil {
		return false, err
	}

	nowFavorite := !current
	if nowFavorite {
		err = p.favorites.Add(ctx, itemID)
	} else {
		err = p.favorites.Remove(ctx, itemID)
	}
	if err != nil {
		return current, err
	}

	p.patchFavoriteState(ctx, itemID, nowFavorite)
	return nowFavorite, nil
}

// SetFavorite sets an item's favorite flag to an explicit value and
// patches held states. Setting the current value is a no-op.
func (p *CatalogProjection) SetFavorite(ctx context.Context, itemID string, favorite bool) error {
	var err error
	if favorite {
		err = p.favorites.Add(ctx, itemID)
	} else {
		err = p.favorites.Remove(ctx, itemID)
	}
	if err != nil {
		return err
	}
	p.patchFavoriteState(ctx, itemID, favorite)
	return nil
}

// patchFavoriteState updates the held listing, detail, and favorites-list
// states without reloading them.
func (p *CatalogProjection) patchFavoriteState(ctx context.Context, itemID string, favorite bool) {
	// Fetch the full record first if the favorites list will need a new
	// entry; the service call cannot happen under the lock.
	var added *domain.Item
	if favorite {
		p.mu.Lock()
		needsEntry := p.favoritesList.IsSuccess() && !containsItem(p.favoritesList.Data, itemID)
		p.mu.Unlock()
		if needsEntry {
			item, err := p.catalog.Product(ctx, itemID)
			if err != nil {
				p.logger.Warn("failed to fetch item for favorites patch", "item_id", itemID, "error", err)
			} else {
				added = item
			}
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.products.IsSuccess() {
		patched := make([]domain.Item, len(p.products.Data))
		for i, it := range p.products.Data {
			if it.ID == itemID {
				patched[i] = it.WithFavorite(favorite)
			} else {
				patched[i] = it
			}
		}
		p.products = Success(patched)
	}

	if p.product.IsSuccess() && p.product.Data.ID == itemID {
		p.product = Success(p.product.Data.WithFavorite(favorite))
	}

	if p.favoritesList.IsSuccess() {
		switch {
		case !favorite:
			kept := make([]domain.Item, 0, len(p.favoritesList.Data))
			for _, it := range p.favoritesList.Data {
				if it.ID != itemID {
					kept = append(kept, it)
				}
			}
			p.favoritesList = Success(kept)
		case containsItem(p.favoritesList.Data, itemID):
			patched := make([]domain.Item, len(p.favoritesList.Data))
			for i, it := range p.favoritesList.Data {
				if it.ID == itemID {
					patched[i] = it.WithFavorite(true)
				} else {
					patched[i] = it
				}
			}
			p.favoritesList = Success(patched)
		case added != nil:
			p.favoritesList = Success(append(p.favoritesList.Data, added.WithFavorite(true)))
		}
	}
}

func containsItem(items []domain.Item, id string) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}
