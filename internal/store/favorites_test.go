package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteIDs_EmptyStore(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	set, found, err := s.FavoriteIDs(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, set)
}

func TestFavoriteIDs_RoundTrip(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	in := map[string]struct{}{"product_1": {}, "product_3": {}}
	require.NoError(t, s.SaveFavoriteIDs(ctx, in))

	set, found, err := s.FavoriteIDs(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, set)
}

func TestFavoriteIDs_EmptySetIsStillPresent(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	// An explicitly persisted empty set is "present": the ledger must not
	// re-seed defaults after the user unfavorited everything.
	require.NoError(t, s.SaveFavoriteIDs(ctx, map[string]struct{}{}))

	set, found, err := s.FavoriteIDs(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, set)
}

func TestDeleteFavoriteIDs_RemovesRecord(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, s.SaveFavoriteIDs(ctx, map[string]struct{}{"product_1": {}}))
	require.NoError(t, s.DeleteFavoriteIDs(ctx))

	set, found, err := s.FavoriteIDs(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, set)
}

func TestFavoriteIDs_CorruptRecordFallsBackToAbsent(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	writeRaw(t, s, favoritesKey, []byte(`"not an array`))

	set, found, err := s.FavoriteIDs(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, set)
}
