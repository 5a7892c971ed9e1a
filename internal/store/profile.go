package store

import (
	"context"

	"github.com/ksynicapp/storefront-server/internal/domain"
)

// GetProfile retrieves the stored user profile.
// Returns ErrProfileNotFound if no profile exists.
func (s *Store) GetProfile(ctx context.Context) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var profile domain.Profile
	found, err := s.getJSON(profileKey, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrProfileNotFound
	}
	return &profile, nil
}

// SaveProfile creates or overwrites the user profile. The record is always
// written whole; partial updates are resolved by the caller first.
func (s *Store) SaveProfile(ctx context.Context, profile *domain.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.setJSON(profileKey, profile)
}
