package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/ksynicapp/storefront-server/internal/domain"
	domainerrors "github.com/ksynicapp/storefront-server/internal/errors"
	"github.com/ksynicapp/storefront-server/internal/store"
)

// CartService owns the cart lines. Lines are keyed by the composite id of
// item, variant, and size, so adding the same selection twice increments
// one line instead of creating a second.
//
// The working set lives in memory and is rebuilt once per process from
// the persisted records, cross-referencing a freshly loaded catalog;
// records whose item id no longer resolves are dropped silently. Every
// mutation persists the full line set before returning.
type CartService struct {
	store     *store.Store
	catalog   *CatalogService
	favorites *FavoritesService
	logger    *slog.Logger

	mu     sync.Mutex
	lines  map[string]*domain.CartLine
	loaded bool
}

// NewCartService creates a new cart ledger.
func NewCartService(
	store *store.Store,
	catalog *CatalogService,
	favorites *FavoritesService,
	logger *slog.Logger,
) *CartService {
	return &CartService{
		store:     store,
		catalog:   catalog,
		favorites: favorites,
		logger:    logger,
		lines:     make(map[string]*domain.CartLine),
	}
}

// ensureLoaded rehydrates the working set from persisted records on the
// first call. Must be called with mu held.
func (s *CartService) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	records, err := s.store.CartRecords(ctx)
	if err != nil {
		return fmt.Errorf("load cart records: %w", err)
	}
	if len(records) == 0 {
		s.loaded = true
		return nil
	}

	items, err := s.catalog.Products(ctx)
	if err != nil {
		return fmt.Errorf("load catalog for cart: %w", err)
	}
	byID := make(map[string]*domain.Item, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}

	dropped := 0
	for _, rec := range records {
		item, ok := byID[rec.ItemID]
		if !ok {
			dropped++
			continue
		}
		s.lines[rec.ID] = &domain.CartLine{
			ID:        rec.ID,
			Item:      *item,
			VariantID: rec.VariantID,
			SizeID:    rec.SizeID,
			Quantity:  rec.Quantity,
			Selected:  rec.Selected,
		}
	}
	if dropped > 0 {
		s.logger.Info("dropped cart lines referencing unknown items", "count", dropped)
	}
	s.loaded = true
	return nil
}

// persistLocked writes the full line set to the store. Must be called
// with mu held.
func (s *CartService) persistLocked(ctx context.Context) error {
	records := make([]domain.CartRecord, 0, len(s.lines))
	for _, line := range s.lines {
		records = append(records, line.Record())
	}
	if err := s.store.ReplaceCartRecords(ctx, records); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

// refreshFavoritesLocked re-reads the favorites set and updates each
// line's embedded item flag. Must be called with mu held.
func (s *CartService) refreshFavoritesLocked(ctx context.Context) error {
	if err := s.favorites.Reload(ctx); err != nil {
		return err
	}
	ids, err := s.favorites.Snapshot(ctx)
	if err != nil {
		return err
	}
	for _, line := range s.lines {
		_, fav := ids[line.Item.ID]
		line.Item.IsFavorite = fav
	}
	return nil
}

// List returns the cart lines in stable id order. The first call
// rehydrates from the store; subsequent calls refresh only the embedded
// favorite flags against the persisted set.
func (s *CartService) List(ctx context.Context) ([]domain.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		if err := s.ensureLoaded(ctx); err != nil {
			return nil, err
		}
	} else if err := s.refreshFavoritesLocked(ctx); err != nil {
		return nil, err
	}

	out := make([]domain.CartLine, 0, len(s.lines))
	for _, line := range s.lines {
		out = append(out, *line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Add puts an item selection in the cart. An existing line for the same
// item, variant, and size has its quantity incremented; a new line starts
// selected. Returns the resulting line.
func (s *CartService) Add(ctx context.Context, item domain.Item, variantID, sizeID string, quantity int) (*domain.CartLine, error) {
	if quantity < 1 {
		return nil, domainerrors.Validation("quantity must be at least 1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	id := domain.LineID(item.ID, variantID, sizeID)
	line, ok := s.lines[id]
	if ok {
		line.Quantity += quantity
	} else {
		line = &domain.CartLine{
			ID:        id,
			Item:      item,
			VariantID: variantID,
			SizeID:    sizeID,
			Quantity:  quantity,
			Selected:  true,
		}
		s.lines[id] = line
	}

	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}
	result := *line
	return &result, nil
}

// SetQuantity replaces a line's quantity. A quantity of zero or less
// removes the line. An unknown line id is a not-found error.
func (s *CartService) SetQuantity(ctx context.Context, lineID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	line, ok := s.lines[lineID]
	if !ok {
		return domainerrors.NotFound("cart line not found")
	}
	if quantity <= 0 {
		delete(s.lines, lineID)
	} else {
		line.Quantity = quantity
	}
	return s.persistLocked(ctx)
}

// ToggleSelected flips a line's selection flag and returns the updated
// line. An unknown line id is a not-found error.
func (s *CartService) ToggleSelected(ctx context.Context, lineID string) (*domain.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	line, ok := s.lines[lineID]
	if !ok {
		return nil, domainerrors.NotFound("cart line not found")
	}
	line.Selected = !line.Selected
	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}
	result := *line
	return &result, nil
}

// Remove deletes a line and reports whether it existed. Removing an
// unknown line leaves the ledger untouched.
func (s *CartService) Remove(ctx context.Context, lineID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}

	if _, ok := s.lines[lineID]; !ok {
		return false, nil
	}
	delete(s.lines, lineID)
	if err := s.persistLocked(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Clear removes every line.
func (s *CartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	s.lines = make(map[string]*domain.CartLine)
	return s.persistLocked(ctx)
}

// Total sums the price contribution of selected lines only.
func (s *CartService) Total(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return 0, err
	}

	total := 0
	for _, line := range s.lines {
		if line.Selected {
			total += line.TotalPrice()
		}
	}
	return total, nil
}
