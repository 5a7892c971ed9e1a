package providers

import (
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/ksynicapp/storefront-server/internal/config"
	"github.com/ksynicapp/storefront-server/internal/logger"
	"github.com/ksynicapp/storefront-server/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the database store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Data.Path, "db")
	db, err := store.New(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "path", dbPath)

	return &StoreHandle{Store: db}, nil
}
