package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksynicapp/storefront-server/internal/domain"
)

func TestCartRecords_EmptyStore(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	recs, err := s.CartRecords(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestReplaceCartRecords_RoundTrip(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	in := []domain.CartRecord{
		{ID: "product_1_none_none", ItemID: "product_1", Quantity: 2, Selected: true},
		{ID: "product_2_variant_2_1_none", ItemID: "product_2", VariantID: "variant_2_1", Quantity: 1, Selected: false},
	}
	require.NoError(t, s.ReplaceCartRecords(ctx, in))

	recs, err := s.CartRecords(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, in, recs)
}

func TestReplaceCartRecords_DropsStaleLines(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, s.ReplaceCartRecords(ctx, []domain.CartRecord{
		{ID: "product_1_none_none", ItemID: "product_1", Quantity: 1, Selected: true},
	}))
	require.NoError(t, s.ReplaceCartRecords(ctx, []domain.CartRecord{
		{ID: "product_2_none_none", ItemID: "product_2", Quantity: 1, Selected: true},
	}))

	recs, err := s.CartRecords(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "product_2_none_none", recs[0].ID)
}

func TestClearCart(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, s.ReplaceCartRecords(ctx, []domain.CartRecord{
		{ID: "product_1_none_none", ItemID: "product_1", Quantity: 1, Selected: true},
	}))
	require.NoError(t, s.ClearCart(ctx))

	recs, err := s.CartRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
