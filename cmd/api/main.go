// Package main provides the entry point for the storefront server application.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/ksynicapp/storefront-server/internal/di"
	"github.com/ksynicapp/storefront-server/internal/di/providers"
	"github.com/ksynicapp/storefront-server/internal/logger"
)

func main() {
	// Create DI container
	injector := di.NewContainer()

	// Bootstrap all services
	if err := di.Bootstrap(injector); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap server: %v\n", err)
		os.Exit(1)
	}

	// Get logger for shutdown messages
	log := do.MustInvoke[*logger.Logger](injector)

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	// Shutdown services in reverse order; the container handles ordering.
	if err := injector.Shutdown(); err != nil {
		log.Error("Shutdown error", "error", err)
	}

	// The database uses a wrapper type, close it explicitly.
	if storeHandle, err := do.Invoke[*providers.StoreHandle](injector); err == nil {
		log.Info("Closing database...")
		if err := storeHandle.Shutdown(); err != nil {
			log.Error("Failed to close database", "error", err)
		} else {
			log.Info("Database closed successfully")
		}
	}

	log.Info("Storefront signing off")
}
