package providers

import (
	"context"
	"errors"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/ksynicapp/storefront-server/internal/api"
	"github.com/ksynicapp/storefront-server/internal/config"
	"github.com/ksynicapp/storefront-server/internal/logger"
	"github.com/ksynicapp/storefront-server/internal/projection"
	"github.com/ksynicapp/storefront-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
	handler *api.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := h.Server.Shutdown(ctx)
	h.handler.Close()
	return err
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	services := api.Services{
		Catalog:   do.MustInvoke[*service.CatalogService](i),
		Favorites: do.MustInvoke[*service.FavoritesService](i),
		Cart:      do.MustInvoke[*service.CartService](i),
		Profile:   do.MustInvoke[*service.ProfileService](i),
		Session:   do.MustInvoke[*service.SessionService](i),
	}

	projections := api.Projections{
		Catalog: do.MustInvoke[*projection.CatalogProjection](i),
		Cart:    do.MustInvoke[*projection.CartProjection](i),
		Profile: do.MustInvoke[*projection.ProfileProjection](i),
	}

	handler := api.NewServer(storeHandle.Store, services, projections, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv, handler: handler}, nil
}
