package providers

import (
	"github.com/samber/do/v2"

	"github.com/ksynicapp/storefront-server/internal/catalog"
	"github.com/ksynicapp/storefront-server/internal/config"
	"github.com/ksynicapp/storefront-server/internal/logger"
)

// ProvideCatalogProvider provides the product catalog source. The mock
// provider is the only implementation for now; a real upstream would bind
// here behind the same interface.
func ProvideCatalogProvider(i do.Injector) (catalog.Provider, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	provider := catalog.NewMockProvider(cfg.Catalog.MinLatency, cfg.Catalog.MaxLatency, log.Logger)

	log.Info("Catalog provider ready",
		"min_latency", cfg.Catalog.MinLatency,
		"max_latency", cfg.Catalog.MaxLatency,
	)

	return provider, nil
}
