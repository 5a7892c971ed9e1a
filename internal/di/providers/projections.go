package providers

import (
	"github.com/samber/do/v2"

	"github.com/ksynicapp/storefront-server/internal/logger"
	"github.com/ksynicapp/storefront-server/internal/projection"
	"github.com/ksynicapp/storefront-server/internal/service"
)

// ProvideCatalogProjection provides the catalog screen states.
func ProvideCatalogProjection(i do.Injector) (*projection.CatalogProjection, error) {
	catalogService := do.MustInvoke[*service.CatalogService](i)
	favorites := do.MustInvoke[*service.FavoritesService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return projection.NewCatalogProjection(catalogService, favorites, log.Logger), nil
}

// ProvideCartProjection provides the cart screen state.
func ProvideCartProjection(i do.Injector) (*projection.CartProjection, error) {
	cartService := do.MustInvoke[*service.CartService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return projection.NewCartProjection(cartService, log.Logger), nil
}

// ProvideProfileProjection provides the profile screen state.
func ProvideProfileProjection(i do.Injector) (*projection.ProfileProjection, error) {
	profileService := do.MustInvoke[*service.ProfileService](i)

	return projection.NewProfileProjection(profileService), nil
}
