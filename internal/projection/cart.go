package projection

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ksynicapp/storefront-server/internal/domain"
	"github.com/ksynicapp/storefront-server/internal/service"
)

// CartProjection tracks the cart screen: the line list plus its derived
// total. Every successful mutation re-fetches the full cart from the
// ledger rather than patching locally; a refetch failure is logged and
// leaves the previous state standing, since the mutation itself already
// succeeded.
type CartProjection struct {
	cart   *service.CartService
	logger *slog.Logger

	mu    sync.Mutex
	state State[[]domain.CartLine]
	total int
}

// NewCartProjection creates a cart projection in the idle state.
func NewCartProjection(cart *service.CartService, logger *slog.Logger) *CartProjection {
	return &CartProjection{
		cart:   cart,
		logger: logger,
		state:  Idle[[]domain.CartLine](),
	}
}

// Lines returns the current cart state.
func (p *CartProjection) Lines() State[[]domain.CartLine] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Total returns the derived total of the last loaded state.
func (p *CartProjection) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// ItemsCount sums the quantities of the last loaded state.
func (p *CartProjection) ItemsCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	count := 0
	if p.state.IsSuccess() {
		for _, line := range p.state.Data {
			count += line.Quantity
		}
	}
	return count
}

// Load fetches the cart. Unlike the product listing this always reloads;
// the cart changes underneath the screen too often to cache.
func (p *CartProjection) Load(ctx context.Context) State[[]domain.CartLine] {
	p.mu.Lock()
	p.state = Loading[[]domain.CartLine]()
	p.mu.Unlock()

	lines, err := p.cart.List(ctx)
	if err != nil {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.state = Errored[[]domain.CartLine](err.Error())
		return p.state
	}

	total, err := p.cart.Total(ctx)
	if err != nil {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.state = Errored[[]domain.CartLine](err.Error())
		return p.state
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = Success(lines)
	p.total = total
	return p.state
}

// refresh re-fetches lines and total after a mutation. Failures keep the
// previous state.
func (p *CartProjection) refresh(ctx context.Context) {
	lines, err := p.cart.List(ctx)
	if err != nil {
		p.logger.Warn("cart refresh failed after mutation", "error", err)
		return
	}
	total, err := p.cart.Total(ctx)
	if err != nil {
		p.logger.Warn("cart total refresh failed after mutation", "error", err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = Success(lines)
	p.total = total
}

// Add puts a selection in the cart and refreshes the state.
func (p *CartProjection) Add(ctx context.Context, item domain.Item, variantID, sizeID string, quantity int) (*domain.CartLine, error) {
	line, err := p.cart.Add(ctx, item, variantID, sizeID, quantity)
	if err != nil {
		return nil, err
	}
	p.refresh(ctx)
	return line, nil
}

// SetQuantity updates a line's quantity and refreshes the state.
func (p *CartProjection) SetQuantity(ctx context.Context, lineID string, quantity int) error {
	if err := p.cart.SetQuantity(ctx, lineID, quantity); err != nil {
		return err
	}
	p.refresh(ctx)
	return nil
}

// ToggleSelected flips a line's selection and refreshes the state.
func (p *CartProjection) ToggleSelected(ctx context.Context, lineID string) (*domain.CartLine, error) {
	line, err := p.cart.ToggleSelected(ctx, lineID)
	if err != nil {
		return nil, err
	}
	p.refresh(ctx)
	return line, nil
}

// Remove deletes a line, refreshing the state when one was removed.
func (p *CartProjection) Remove(ctx context.Context, lineID string) (bool, error) {
	removed, err := p.cart.Remove(ctx, lineID)
	if err != nil {
		return false, err
	}
	if removed {
		p.refresh(ctx)
	}
	return removed, nil
}

// Clear empties the cart and resets the state directly.
func (p *CartProjection) Clear(ctx context.Context) error {
	if err := p.cart.Clear(ctx); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = Success([]domain.CartLine{})
	p.total = 0
	return nil
}
