package api

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/ksynicapp/storefront-server/internal/catalog"
	"github.com/ksynicapp/storefront-server/internal/projection"
	"github.com/ksynicapp/storefront-server/internal/service"
	"github.com/ksynicapp/storefront-server/internal/store"
	"github.com/ksynicapp/storefront-server/internal/validation"
)

// testServer wraps the API server for handler testing.
type testServer struct {
	*Server
	api   humatest.TestAPI
	store *store.Store
}

// setupTestServer creates a server backed by a temp database and the
// zero-latency catalog provider.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "storefront-api-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")

	logger := slog.New(slog.DiscardHandler)

	st, err := store.New(dbPath, logger)
	require.NoError(t, err)

	provider := catalog.NewInstantMockProvider()

	favoritesService := service.NewFavoritesService(st, provider, logger)
	catalogService := service.NewCatalogService(st, provider, favoritesService, time.Hour, logger)
	cartService := service.NewCartService(st, catalogService, favoritesService, logger)
	profileService := service.NewProfileService(st, logger)
	sessionService := service.NewSessionService(st, logger)

	services := Services{
		Catalog:   catalogService,
		Favorites: favoritesService,
		Cart:      cartService,
		Profile:   profileService,
		Session:   sessionService,
	}

	projections := Projections{
		Catalog: projection.NewCatalogProjection(catalogService, favoritesService, logger),
		Cart:    projection.NewCartProjection(cartService, logger),
		Profile: projection.NewProfileProjection(profileService),
	}

	// Build the router without the middleware stack so tests hit the
	// handlers directly.
	router := chi.NewRouter()
	humaConfig := huma.DefaultConfig("Storefront API Test", "1.0.0")
	api := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		store:           st,
		services:        services,
		projections:     projections,
		validator:       validation.New(),
		router:          router,
		api:             api,
		logger:          logger,
		mutationLimiter: NewRateLimiter(1000, time.Minute, 100),
	}

	s.registerHealthRoutes()
	s.registerProductRoutes()
	s.registerFavoriteRoutes()
	s.registerCartRoutes()
	s.registerProfileRoutes()
	s.registerSessionRoutes()

	t.Cleanup(func() {
		s.Close()
		_ = st.Close()
		_ = os.RemoveAll(tmpDir)
	})

	return &testServer{
		Server: s,
		api:    humatest.Wrap(t, api),
		store:  st,
	}
}
