package api

import (
	"github.com/ksynicapp/storefront-server/internal/projection"
	"github.com/ksynicapp/storefront-server/internal/service"
)

// Services groups the business logic services used by the API server.
type Services struct {
	Catalog   *service.CatalogService
	Favorites *service.FavoritesService
	Cart      *service.CartService
	Profile   *service.ProfileService
	Session   *service.SessionService
}

// Projections groups the view-facing state machines. The screen-state
// endpoints serve these directly; mutations route through them so their
// held states stay patched.
type Projections struct {
	Catalog *projection.CatalogProjection
	Cart    *projection.CartProjection
	Profile *projection.ProfileProjection
}
