// Package catalog defines the upstream catalog boundary. The storefront
// talks to a Provider; the bundled MockProvider serves built-in sample
// data with simulated network latency, and a real client can replace it
// under the same contract.
package catalog

import (
	"context"

	"github.com/ksynicapp/storefront-server/internal/domain"
	"github.com/ksynicapp/storefront-server/internal/errors"
)

// ErrItemNotFound is returned when a requested item id is unknown upstream.
var ErrItemNotFound = errors.NotFound("catalog item not found")

// Provider is the upstream catalog source.
//
// Implementations return fresh copies on every call; callers may mutate
// results freely. Favorite flags in returned items are the provider's
// defaults and carry no user state.
type Provider interface {
	// FetchAll returns the full catalog.
	FetchAll(ctx context.Context) ([]domain.Item, error)

	// FetchByID returns a single item, or ErrItemNotFound.
	FetchByID(ctx context.Context, id string) (*domain.Item, error)

	// FetchByCategory returns the items of a category.
	FetchByCategory(ctx context.Context, categoryID string) ([]domain.Item, error)

	// Search returns items whose name, brand name, or description
	// contains the query, case-insensitively.
	Search(ctx context.Context, query string) ([]domain.Item, error)
}
