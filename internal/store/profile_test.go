package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksynicapp/storefront-server/internal/domain"
)

func TestGetProfile_NotFound(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := s.GetProfile(context.Background())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfile_RoundTrip(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	in := domain.DefaultProfile()
	in.ID = "user-test"
	require.NoError(t, s.SaveProfile(ctx, in))

	got, err := s.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestProfile_UpdateOverwritesWholeRecord(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	first := domain.DefaultProfile()
	first.ID = "user-test"
	first.AvatarName = "ava_one"
	require.NoError(t, s.SaveProfile(ctx, first))

	second := &domain.Profile{ID: "user-test", FirstName: "Riley", Email: "riley@example.com"}
	require.NoError(t, s.SaveProfile(ctx, second))

	got, err := s.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Riley", got.FirstName)
	// Whole-record overwrite: fields not in the second write are gone.
	assert.Empty(t, got.AvatarName)
}

func TestGetProfile_CorruptRecord(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	writeRaw(t, s, profileKey, []byte("garbage"))

	_, err := s.GetProfile(context.Background())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
