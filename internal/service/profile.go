package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ksynicapp/storefront-server/internal/color"
	"github.com/ksynicapp/storefront-server/internal/domain"
	domainerrors "github.com/ksynicapp/storefront-server/internal/errors"
	"github.com/ksynicapp/storefront-server/internal/id"
	"github.com/ksynicapp/storefront-server/internal/store"
)

// ProfileService manages the single user profile. The first read creates
// and persists a default record; updates overwrite the whole record.
type ProfileService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(store *store.Store, logger *slog.Logger) *ProfileService {
	return &ProfileService{store: store, logger: logger}
}

// Get returns the profile, creating the default record on first access.
func (s *ProfileService) Get(ctx context.Context) (*domain.Profile, error) {
	profile, err := s.store.GetProfile(ctx)
	if err == nil {
		return profile, nil
	}
	if !domainerrors.Is(err, store.ErrProfileNotFound) {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	profile = domain.DefaultProfile()
	profileID, err := id.Generate("user")
	if err != nil {
		return nil, fmt.Errorf("generate profile ID: %w", err)
	}
	profile.ID = profileID
	profile.AvatarColor = color.ForID(profileID)

	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("persist default profile: %w", err)
	}
	s.logger.Info("created default profile", "profile_id", profileID)
	return profile, nil
}

// ProfileUpdate carries a partial profile change. Nil fields keep their
// current value.
type ProfileUpdate struct {
	FirstName   *string
	LastName    *string
	Gender      *string
	BirthDate   *string
	Phone       *string
	Email       *string
	DisplayName *string
	AvatarName  *string
}

// Update resolves a partial update against the current record and
// persists the result wholesale. Returns the updated profile.
func (s *ProfileService) Update(ctx context.Context, update ProfileUpdate) (*domain.Profile, error) {
	profile, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&profile.FirstName, update.FirstName)
	apply(&profile.LastName, update.LastName)
	apply(&profile.Gender, update.Gender)
	apply(&profile.BirthDate, update.BirthDate)
	apply(&profile.Phone, update.Phone)
	apply(&profile.Email, update.Email)
	apply(&profile.DisplayName, update.DisplayName)
	apply(&profile.AvatarName, update.AvatarName)

	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("persist profile: %w", err)
	}
	return profile, nil
}

// Replace overwrites the whole profile record, keeping the stored id and
// its derived avatar accent.
func (s *ProfileService) Replace(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	profile.ID = current.ID
	profile.AvatarColor = current.AvatarColor
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("persist profile: %w", err)
	}
	return profile, nil
}
