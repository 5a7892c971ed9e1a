package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksynicapp/storefront-server/internal/domain"
	domainerrors "github.com/ksynicapp/storefront-server/internal/errors"
)

func testItem(id string, price int) domain.Item {
	return domain.Item{ID: id, Name: "Item " + id, Price: price}
}

func TestCart_AddSameSelectionIncrementsOneLine(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := testItem("product_1", 3743)

	first, err := env.cart.Add(ctx, item, "variant_1_1", "size_1_2", 1)
	require.NoError(t, err)
	second, err := env.cart.Add(ctx, item, "variant_1_1", "size_1_2", 1)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Quantity)

	lines, err := env.cart.List(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "product_1_variant_1_1_size_1_2", lines[0].ID)
}

func TestCart_DifferentSelectionsAreDifferentLines(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := testItem("product_1", 3743)

	_, err := env.cart.Add(ctx, item, "variant_1_1", "", 1)
	require.NoError(t, err)
	_, err = env.cart.Add(ctx, item, "variant_1_2", "", 1)
	require.NoError(t, err)
	_, err = env.cart.Add(ctx, item, "", "", 1)
	require.NoError(t, err)

	lines, err := env.cart.List(ctx)
	require.NoError(t, err)
	assert.Len(t, lines, 3)
}

func TestCart_AddRejectsNonPositiveQuantity(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.cart.Add(context.Background(), testItem("product_1", 100), "", "", 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestCart_TotalCountsSelectedLinesOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Two units at 100, selected.
	_, err := env.cart.Add(ctx, testItem("item_a", 100), "", "", 2)
	require.NoError(t, err)

	// One unit at 50, deselected.
	line, err := env.cart.Add(ctx, testItem("item_b", 50), "", "", 1)
	require.NoError(t, err)
	_, err = env.cart.ToggleSelected(ctx, line.ID)
	require.NoError(t, err)

	total, err := env.cart.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, 200, total)
}

func TestCart_SetQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	for _, qty := range []int{0, -1} {
		env := newTestEnv(t)
		ctx := context.Background()

		line, err := env.cart.Add(ctx, testItem("product_1", 100), "", "", 3)
		require.NoError(t, err)

		require.NoError(t, env.cart.SetQuantity(ctx, line.ID, qty))

		lines, err := env.cart.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, lines)
	}
}

func TestCart_SetQuantityUnknownLine(t *testing.T) {
	env := newTestEnv(t)

	err := env.cart.SetQuantity(context.Background(), "product_9_none_none", 2)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCart_ToggleSelected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	line, err := env.cart.Add(ctx, testItem("product_1", 100), "", "", 1)
	require.NoError(t, err)
	require.True(t, line.Selected)

	toggled, err := env.cart.ToggleSelected(ctx, line.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Selected)

	toggled, err = env.cart.ToggleSelected(ctx, line.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Selected)
}

func TestCart_RemoveUnknownLineLeavesLedgerUntouched(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.cart.Add(ctx, testItem("product_1", 100), "", "", 1)
	require.NoError(t, err)

	removed, err := env.cart.Remove(ctx, "no_such_line")
	require.NoError(t, err)
	assert.False(t, removed)

	lines, err := env.cart.List(ctx)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestCart_ReAddingRemovedLineStartsSelected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := testItem("product_1", 100)

	line, err := env.cart.Add(ctx, item, "", "", 1)
	require.NoError(t, err)
	_, err = env.cart.ToggleSelected(ctx, line.ID)
	require.NoError(t, err)

	removed, err := env.cart.Remove(ctx, line.ID)
	require.NoError(t, err)
	require.True(t, removed)

	readded, err := env.cart.Add(ctx, item, "", "", 1)
	require.NoError(t, err)
	assert.True(t, readded.Selected)
	assert.Equal(t, 1, readded.Quantity)
}

func TestCart_Clear(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.cart.Add(ctx, testItem("product_1", 100), "", "", 1)
	require.NoError(t, err)
	_, err = env.cart.Add(ctx, testItem("product_2", 200), "", "", 1)
	require.NoError(t, err)

	require.NoError(t, env.cart.Clear(ctx))

	lines, err := env.cart.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)

	total, err := env.cart.Total(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCart_RehydratesFromStoreOnRestart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item, err := env.catalog.Product(ctx, "product_1")
	require.NoError(t, err)
	line, err := env.cart.Add(ctx, *item, "variant_1_1", "size_1_2", 2)
	require.NoError(t, err)
	_, err = env.cart.ToggleSelected(ctx, line.ID)
	require.NoError(t, err)
	require.NoError(t, env.store.Close())

	reopened := openTestEnv(t, env.dir)
	lines, err := reopened.cart.List(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	got := lines[0]
	assert.Equal(t, line.ID, got.ID)
	assert.Equal(t, 2, got.Quantity)
	assert.False(t, got.Selected)
	// The embedded item is rebuilt from the catalog, not from the record.
	assert.Equal(t, "Adidas Sportswear Hoops 3.0 Sneakers", got.Item.Name)
	assert.Equal(t, 3743, got.Item.Price)
}

func TestCart_RehydrationDropsStaleReferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	records := []domain.CartRecord{
		{ID: "product_1_none_none", ItemID: "product_1", Quantity: 1, Selected: true},
		{ID: "product_gone_none_none", ItemID: "product_gone", Quantity: 4, Selected: true},
	}
	require.NoError(t, env.store.ReplaceCartRecords(ctx, records))

	lines, err := env.cart.List(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "product_1_none_none", lines[0].ID)
}

func TestCart_ListRefreshesFavoriteFlags(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item, err := env.catalog.Product(ctx, "product_1")
	require.NoError(t, err)
	require.False(t, item.IsFavorite)

	_, err = env.cart.Add(ctx, *item, "", "", 1)
	require.NoError(t, err)

	require.NoError(t, env.favorites.Add(ctx, "product_1"))

	lines, err := env.cart.List(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Item.IsFavorite)

	require.NoError(t, env.favorites.Remove(ctx, "product_1"))

	lines, err = env.cart.List(ctx)
	require.NoError(t, err)
	assert.False(t, lines[0].Item.IsFavorite)
}
