package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ksynicapp/storefront-server/internal/store"
)

// SessionService tracks the persisted login flag. There is no real
// authentication; the flag only gates client-side surfaces.
type SessionService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(store *store.Store, logger *slog.Logger) *SessionService {
	return &SessionService{store: store, logger: logger}
}

// IsLoggedIn reports the persisted login state. A missing record reads
// as logged out.
func (s *SessionService) IsLoggedIn(ctx context.Context) (bool, error) {
	return s.store.IsLoggedIn(ctx)
}

// Login persists the logged-in state.
func (s *SessionService) Login(ctx context.Context) error {
	if err := s.store.SetLoggedIn(ctx, true); err != nil {
		return fmt.Errorf("persist login state: %w", err)
	}
	s.logger.Info("user logged in")
	return nil
}

// Logout persists the logged-out state.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.store.SetLoggedIn(ctx, false); err != nil {
		return fmt.Errorf("persist login state: %w", err)
	}
	s.logger.Info("user logged out")
	return nil
}
