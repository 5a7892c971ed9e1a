// Package main provides a tool to prepare a local storefront database.
//
// It can prime the catalog cache from the built-in provider data, seed the
// default favorites, and reset the mutable ledgers back to a clean state.
//
// Usage:
//
//	DATA_PATH=~/Storefront/data go run ./cmd/seed
//	DATA_PATH=~/Storefront/data go run ./cmd/seed --reset  # Also wipe cart, favorites, profile
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ksynicapp/storefront-server/internal/catalog"
	"github.com/ksynicapp/storefront-server/internal/color"
	"github.com/ksynicapp/storefront-server/internal/domain"
	"github.com/ksynicapp/storefront-server/internal/id"
	"github.com/ksynicapp/storefront-server/internal/store"
)

var reset = flag.Bool("reset", false, "Wipe cart, favorites, profile, and login state before seeding")

func main() {
	flag.Parse()

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/Storefront/data")
	}
	dbPath := filepath.Join(dataPath, "db")

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	if *reset {
		resetLedgers(ctx, s)
	}

	provider := catalog.NewInstantMockProvider()
	items := provider.Canonical()

	if err := s.SaveCatalog(ctx, items); err != nil {
		log.Fatalf("Failed to save catalog: %v", err)
	}
	if err := s.SetCatalogCachedAt(ctx, time.Now()); err != nil {
		log.Fatalf("Failed to stamp catalog cache: %v", err)
	}
	fmt.Printf("Cached %d catalog items\n", len(items))

	// Seed the default favorites unless a set already exists. An explicitly
	// emptied set stays empty.
	if _, found, err := s.FavoriteIDs(ctx); err != nil {
		log.Fatalf("Failed to read favorites: %v", err)
	} else if !found {
		defaults := make(map[string]struct{})
		for _, item := range items {
			if item.IsFavorite {
				defaults[item.ID] = struct{}{}
			}
		}
		if err := s.SaveFavoriteIDs(ctx, defaults); err != nil {
			log.Fatalf("Failed to save favorites: %v", err)
		}
		fmt.Printf("Seeded %d default favorites\n", len(defaults))
	} else {
		fmt.Println("Favorites already present, leaving as is")
	}

	seedProfile(ctx, s)

	fmt.Println("Done")
}

// seedProfile creates the demo profile when none exists, mirroring what the
// server does on first profile read.
func seedProfile(ctx context.Context, s *store.Store) {
	if _, err := s.GetProfile(ctx); err == nil {
		fmt.Println("Profile already present, leaving as is")
		return
	}

	profile := domain.DefaultProfile()
	profileID, err := id.Generate("user")
	if err != nil {
		log.Fatalf("Failed to generate profile id: %v", err)
	}
	profile.ID = profileID
	profile.AvatarColor = color.ForID(profileID)

	if err := s.SaveProfile(ctx, profile); err != nil {
		log.Fatalf("Failed to save profile: %v", err)
	}
	fmt.Printf("Created demo profile %s (%s)\n", profile.FullName(), profileID)
}

// resetLedgers wipes all mutable state, leaving only the catalog cache to
// be rebuilt by the caller.
func resetLedgers(ctx context.Context, s *store.Store) {
	if err := s.ClearCart(ctx); err != nil {
		log.Fatalf("Failed to clear cart: %v", err)
	}
	if err := s.DeleteFavoriteIDs(ctx); err != nil {
		log.Fatalf("Failed to clear favorites: %v", err)
	}
	if err := s.SetLoggedIn(ctx, false); err != nil {
		log.Fatalf("Failed to reset login state: %v", err)
	}
	fmt.Println("Reset cart, favorites, and login state")
}
