package store

import (
	"context"

	"github.com/ksynicapp/storefront-server/internal/domain"
)

// CartRecords returns every persisted cart line record.
func (s *Store) CartRecords(ctx context.Context) ([]domain.CartRecord, error) {
	ptrs, err := s.CartLines.All(ctx)
	if err != nil {
		return nil, err
	}

	recs := make([]domain.CartRecord, len(ptrs))
	for i, p := range ptrs {
		recs[i] = *p
	}
	return recs, nil
}

// ReplaceCartRecords persists the full cart line set, dropping whatever was
// stored before. The cart ledger calls this after every mutation.
func (s *Store) ReplaceCartRecords(ctx context.Context, recs []domain.CartRecord) error {
	if err := s.CartLines.DeleteAll(ctx); err != nil {
		return err
	}
	for i := range recs {
		if err := s.CartLines.Put(ctx, recs[i].ID, &recs[i]); err != nil {
			return err
		}
	}
	return nil
}

// ClearCart removes all persisted cart lines.
func (s *Store) ClearCart(ctx context.Context) error {
	return s.CartLines.DeleteAll(ctx)
}
