package catalog

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/ksynicapp/storefront-server/internal/domain"
)

// MockProvider serves the built-in sample catalog and simulates network
// latency on every call. Latency bounds come from config; tests pass zero
// for both to skip the sleep entirely.
type MockProvider struct {
	items      []domain.Item
	minLatency time.Duration
	maxLatency time.Duration
	logger     *slog.Logger
}

var _ Provider = (*MockProvider)(nil)

// NewMockProvider creates a provider over the built-in sample catalog.
func NewMockProvider(minLatency, maxLatency time.Duration, logger *slog.Logger) *MockProvider {
	return &MockProvider{
		items:      sampleCatalog(),
		minLatency: minLatency,
		maxLatency: maxLatency,
		logger:     logger,
	}
}

// NewInstantMockProvider creates a provider with no simulated latency.
// Intended for tests.
func NewInstantMockProvider() *MockProvider {
	return NewMockProvider(0, 0, slog.Default())
}

// simulateLatency sleeps for a random duration within the configured
// bounds, honoring context cancellation.
func (p *MockProvider) simulateLatency(ctx context.Context) error {
	if p.maxLatency <= 0 {
		return ctx.Err()
	}
	d := p.minLatency
	if span := p.maxLatency - p.minLatency; span > 0 {
		d += time.Duration(rand.Int63n(int64(span)))
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// FetchAll returns a copy of the full catalog.
func (p *MockProvider) FetchAll(ctx context.Context) ([]domain.Item, error) {
	if err := p.simulateLatency(ctx); err != nil {
		return nil, err
	}
	return copyItems(p.items), nil
}

// FetchByID returns a copy of a single item, or ErrItemNotFound.
func (p *MockProvider) FetchByID(ctx context.Context, id string) (*domain.Item, error) {
	if err := p.simulateLatency(ctx); err != nil {
		return nil, err
	}
	for i := range p.items {
		if p.items[i].ID == id {
			item := copyItem(p.items[i])
			return &item, nil
		}
	}
	return nil, ErrItemNotFound
}

// FetchByCategory returns the items of a category. The sample catalog has
// no category taxonomy, so every category resolves to the full catalog,
// matching what a storefront shows before real category data exists.
func (p *MockProvider) FetchByCategory(ctx context.Context, categoryID string) ([]domain.Item, error) {
	if err := p.simulateLatency(ctx); err != nil {
		return nil, err
	}
	if p.logger != nil {
		p.logger.Debug("category fetch serves full catalog", "category_id", categoryID)
	}
	return copyItems(p.items), nil
}

// Search returns items whose name, brand name, or description contains
// the query, case-insensitively.
func (p *MockProvider) Search(ctx context.Context, query string) ([]domain.Item, error) {
	if err := p.simulateLatency(ctx); err != nil {
		return nil, err
	}
	needle := strings.ToLower(query)
	matches := make([]domain.Item, 0)
	for i := range p.items {
		if itemMatches(&p.items[i], needle) {
			matches = append(matches, copyItem(p.items[i]))
		}
	}
	return matches, nil
}

func itemMatches(it *domain.Item, needle string) bool {
	if strings.Contains(strings.ToLower(it.Name), needle) {
		return true
	}
	if it.Brand != nil && strings.Contains(strings.ToLower(it.Brand.Name), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(it.Description), needle)
}

// Canonical returns copies of the provider's built-in records without
// simulated latency. Callers use these to repair cached snapshots whose
// image lists round-tripped empty.
func (p *MockProvider) Canonical() []domain.Item {
	return copyItems(p.items)
}

// copyItem deep-copies an item so callers can mutate results without
// touching the provider's canonical records.
func copyItem(src domain.Item) domain.Item {
	dst := src
	dst.ImageURLs = append([]string(nil), src.ImageURLs...)
	dst.ImageNames = append([]string(nil), src.ImageNames...)
	if src.Seller != nil {
		seller := *src.Seller
		dst.Seller = &seller
	}
	if src.Brand != nil {
		brand := *src.Brand
		dst.Brand = &brand
	}
	dst.Variants = make([]domain.Variant, len(src.Variants))
	for i, v := range src.Variants {
		v.ImageNames = append([]string(nil), v.ImageNames...)
		v.ImageURLs = append([]string(nil), v.ImageURLs...)
		dst.Variants[i] = v
	}
	dst.Sizes = append([]domain.Size(nil), src.Sizes...)
	dst.Specs = append([]domain.Specification(nil), src.Specs...)
	return dst
}

func copyItems(src []domain.Item) []domain.Item {
	out := make([]domain.Item, len(src))
	for i := range src {
		out[i] = copyItem(src[i])
	}
	return out
}
