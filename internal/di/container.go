// Package di provides dependency injection configuration for the storefront server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/ksynicapp/storefront-server/internal/catalog"
	"github.com/ksynicapp/storefront-server/internal/config"
	"github.com/ksynicapp/storefront-server/internal/di/providers"
	"github.com/ksynicapp/storefront-server/internal/logger"
	"github.com/ksynicapp/storefront-server/internal/projection"
	"github.com/ksynicapp/storefront-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Catalog source
	do.Provide(injector, providers.ProvideCatalogProvider)

	// Business services
	do.Provide(injector, providers.ProvideFavoritesService)
	do.Provide(injector, providers.ProvideCatalogService)
	do.Provide(injector, providers.ProvideCartService)
	do.Provide(injector, providers.ProvideProfileService)
	do.Provide(injector, providers.ProvideSessionService)

	// Screen states
	do.Provide(injector, providers.ProvideCatalogProjection)
	do.Provide(injector, providers.ProvideCartProjection)
	do.Provide(injector, providers.ProvideProfileProjection)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[catalog.Provider](injector)

	// Business services
	_ = do.MustInvoke[*service.FavoritesService](injector)
	_ = do.MustInvoke[*service.CatalogService](injector)
	_ = do.MustInvoke[*service.CartService](injector)
	_ = do.MustInvoke[*service.ProfileService](injector)
	_ = do.MustInvoke[*service.SessionService](injector)

	// Screen states
	_ = do.MustInvoke[*projection.CatalogProjection](injector)
	_ = do.MustInvoke[*projection.CartProjection](injector)
	_ = do.MustInvoke[*projection.ProfileProjection](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
