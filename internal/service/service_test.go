package service

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ksynicapp/storefront-server/internal/catalog"
	"github.com/ksynicapp/storefront-server/internal/domain"
	"github.com/ksynicapp/storefront-server/internal/store"
)

// countingProvider wraps the mock provider and counts upstream fetches,
// so cache tests can assert whether the provider was actually hit.
// Embedding the concrete mock keeps its canonical records visible to the
// image-repair path.
type countingProvider struct {
	*catalog.MockProvider
	fetchAll int
}

func (c *countingProvider) FetchAll(ctx context.Context) ([]domain.Item, error) {
	c.fetchAll++
	return c.MockProvider.FetchAll(ctx)
}

type testEnv struct {
	dir       string
	store     *store.Store
	provider  *countingProvider
	favorites *FavoritesService
	catalog   *CatalogService
	cart      *CartService
	profile   *ProfileService
	session   *SessionService
}

// newTestEnv builds the full service stack over a temporary store with an
// instant mock provider.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "storefront-service-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	env := openTestEnv(t, tmpDir)
	return env
}

// openTestEnv opens the service stack over an existing data directory.
// Reopening the same directory simulates a process restart.
func openTestEnv(t *testing.T, dir string) *testEnv {
	t.Helper()

	testStore, err := store.New(filepath.Join(dir, "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { testStore.Close() })

	logger := slog.New(slog.DiscardHandler)
	provider := &countingProvider{MockProvider: catalog.NewInstantMockProvider()}
	favorites := NewFavoritesService(testStore, provider, logger)
	catalogSvc := NewCatalogService(testStore, provider, favorites, time.Hour, logger)
	cart := NewCartService(testStore, catalogSvc, favorites, logger)

	return &testEnv{
		dir:       dir,
		store:     testStore,
		provider:  provider,
		favorites: favorites,
		catalog:   catalogSvc,
		cart:      cart,
		profile:   NewProfileService(testStore, logger),
		session:   NewSessionService(testStore, logger),
	}
}
