package providers

import (
	"github.com/samber/do/v2"

	"github.com/ksynicapp/storefront-server/internal/catalog"
	"github.com/ksynicapp/storefront-server/internal/config"
	"github.com/ksynicapp/storefront-server/internal/logger"
	"github.com/ksynicapp/storefront-server/internal/service"
)

// ProvideFavoritesService provides the favorites ledger.
func ProvideFavoritesService(i do.Injector) (*service.FavoritesService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	provider := do.MustInvoke[catalog.Provider](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewFavoritesService(storeHandle.Store, provider, log.Logger), nil
}

// ProvideCatalogService provides the cached catalog service.
func ProvideCatalogService(i do.Injector) (*service.CatalogService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	provider := do.MustInvoke[catalog.Provider](i)
	favorites := do.MustInvoke[*service.FavoritesService](i)
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCatalogService(storeHandle.Store, provider, favorites, cfg.Catalog.MaxCacheAge, log.Logger), nil
}

// ProvideCartService provides the cart ledger.
func ProvideCartService(i do.Injector) (*service.CartService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	catalogService := do.MustInvoke[*service.CatalogService](i)
	favorites := do.MustInvoke[*service.FavoritesService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCartService(storeHandle.Store, catalogService, favorites, log.Logger), nil
}

// ProvideProfileService provides the profile service.
func ProvideProfileService(i do.Injector) (*service.ProfileService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewProfileService(storeHandle.Store, log.Logger), nil
}

// ProvideSessionService provides the login state service.
func ProvideSessionService(i do.Injector) (*service.SessionService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSessionService(storeHandle.Store, log.Logger), nil
}
