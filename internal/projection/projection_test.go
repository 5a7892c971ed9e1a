package projection

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
	domainerrors "github.com/ksynicapp/storefront-server/internal/errors"
	"github.com/ksynicapp/storefront-server/internal/service"
	"github.com/ksynicapp/storefront-server/internal/store"
)

type testEnv struct {
	store     *store.Store
	favorites *service.FavoritesService
	catalog   *service.CatalogService
	cart      *service.CartService
	profile   *service.ProfileService

	catalogProj *CatalogProjection
	cartProj    *CartProjection
	profileProj *ProfileProjection
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithProvider(t, catalog.NewInstantMockProvider())
}

func newTestEnvWithProvider(t *testing.T, provider catalog.Provider) *testEnv {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "storefront-projection-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	testStore, err := store.New(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { testStore.Close() })

	logger := slog.New(slog.DiscardHandler)
	favorites := service.NewFavoritesService(testStore, provider, logger)
	catalogSvc := service.NewCatalogService(testStore, provider, favorites, time.Hour, logger)
	cart := service.NewCartService(testStore, catalogSvc, favorites, logger)
	profile := service.NewProfileService(testStore, logger)

	return &testEnv{
		store:       testStore,
		favorites:   favorites,
		catalog:     catalogSvc,
		cart:        cart,
		profile:     profile,
		catalogProj: NewCatalogProjection(catalogSvc, favorites, logger),
		cartProj:    NewCartProjection(cart, logger),
		profileProj: NewProfileProjection(profile),
	}
}

// failingProvider rejects every call, standing in for an unreachable
// upstream.
type failingProvider struct{}

func (failingProvider) FetchAll(context.Context) ([]domain.Item, error) {
	return nil, domainerrors.Unavailable("upstream unreachable")
}

func (failingProvider) FetchByID(context.Context, string) (*domain.Item, error) {
	return nil, domainerrors.Unavailable("upstream unreachable")
}

func (failingProvider) FetchByCategory(context.Context, string) ([]domain.Item, error) {
	return nil, domainerrors.Unavailable("upstream unreachable")
}

func (failingProvider) Search(context.Context, string) ([]domain.Item, error) {
	return nil, domainerrors.Unavailable("upstream unreachable")
}
