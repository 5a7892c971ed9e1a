package store

import (
	"context"
	"slices"
)

// FavoriteIDs returns the persisted favorites set and whether one exists.
// An absent or malformed record yields (empty, false) so the ledger can
// seed itself from catalog defaults.
func (s *Store) FavoriteIDs(ctx context.Context) (map[string]struct{}, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	var ids []string
	found, err := s.getJSON(favoritesKey, &ids)
	if err != nil {
		return nil, false, err
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, found, nil
}

// SaveFavoriteIDs persists the favorites set. Ids are stored sorted so the
// on-disk record is deterministic.
func (s *Store) SaveFavoriteIDs(ctx context.Context, set map[string]struct{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return s.setJSON(favoritesKey, ids)
}

// DeleteFavoriteIDs removes the favorites record entirely. The next read
// reports no record, which makes the ledger re-seed from catalog defaults.
// Distinct from saving an empty set, which sticks.
func (s *Store) DeleteFavoriteIDs(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.delete(favoritesKey)
}
