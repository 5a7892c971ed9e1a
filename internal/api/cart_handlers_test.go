package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksynicapp/storefront-server/internal/domain"
	"github.com/ksynicapp/storefront-server/internal/projection"
)

func addCartItem(t *testing.T, ts *testServer, itemID string, quantity int) domain.CartLine {
	t.Helper()
	resp := ts.api.Post("/api/v1/cart/items", map[string]any{
		"item_id":  itemID,
		"quantity": quantity,
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	return decodeBody[domain.CartLine](t, resp.Body.Bytes())
}

func TestGetCart_Empty(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/cart")
	require.Equal(t, http.StatusOK, resp.Code)

	cart := decodeBody[CartStateResponse](t, resp.Body.Bytes())
	assert.Equal(t, projection.StatusSuccess, cart.State.Status)
	assert.Empty(t, cart.State.Data)
	assert.Zero(t, cart.Total)
	assert.Zero(t, cart.ItemsCount)
}

func TestAddCartItem_CreatesLine(t *testing.T) {
	ts := setupTestServer(t)

	line := addCartItem(t, ts, "product_1", 2)
	assert.Equal(t, "product_1_none_none", line.ID)
	assert.Equal(t, 2, line.Quantity)
	assert.True(t, line.Selected)
	assert.Equal(t, "product_1", line.Item.ID)

	resp := ts.api.Get("/api/v1/cart")
	require.Equal(t, http.StatusOK, resp.Code)
	cart := decodeBody[CartStateResponse](t, resp.Body.Bytes())
	require.Len(t, cart.State.Data, 1)
	assert.Equal(t, 2*line.Item.Price, cart.Total)
	assert.Equal(t, 2, cart.ItemsCount)
}

func TestAddCartItem_SameSelectionIncrements(t *testing.T) {
	ts := setupTestServer(t)

	addCartItem(t, ts, "product_1", 1)
	line := addCartItem(t, ts, "product_1", 2)
	assert.Equal(t, 3, line.Quantity)

	resp := ts.api.Get("/api/v1/cart")
	cart := decodeBody[CartStateResponse](t, resp.Body.Bytes())
	assert.Len(t, cart.State.Data, 1)
	assert.Equal(t, 3, cart.ItemsCount)
}

func TestAddCartItem_ZeroQuantityRejected(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/cart/items", map[string]any{
		"item_id":  "product_1",
		"quantity": 0,
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	apiErr := decodeBody[APIError](t, resp.Body.Bytes())
	assert.Equal(t, "VALIDATION", apiErr.Code)
}

func TestAddCartItem_UnknownProduct(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/cart/items", map[string]any{
		"item_id":  "product_missing",
		"quantity": 1,
	})
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdateCartItem_SetsQuantity(t *testing.T) {
	ts := setupTestServer(t)
	line := addCartItem(t, ts, "product_1", 1)

	resp := ts.api.Patch("/api/v1/cart/items/"+line.ID, map[string]any{"quantity": 5})
	require.Equal(t, http.StatusOK, resp.Code)

	cart := decodeBody[CartStateResponse](t, resp.Body.Bytes())
	require.Len(t, cart.State.Data, 1)
	assert.Equal(t, 5, cart.State.Data[0].Quantity)
	assert.Equal(t, 5*line.Item.Price, cart.Total)
}

func TestUpdateCartItem_ZeroRemovesLine(t *testing.T) {
	ts := setupTestServer(t)
	line := addCartItem(t, ts, "product_1", 2)

	resp := ts.api.Patch("/api/v1/cart/items/"+line.ID, map[string]any{"quantity": 0})
	require.Equal(t, http.StatusOK, resp.Code)

	cart := decodeBody[CartStateResponse](t, resp.Body.Bytes())
	assert.Empty(t, cart.State.Data)
	assert.Zero(t, cart.Total)
}

func TestUpdateCartItem_UnknownLine(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Patch("/api/v1/cart/items/product_9_none_none", map[string]any{"quantity": 1})
	require.Equal(t, http.StatusNotFound, resp.Code)

	apiErr := decodeBody[APIError](t, resp.Body.Bytes())
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
}

func TestToggleCartItem_ExcludesLineFromTotal(t *testing.T) {
	ts := setupTestServer(t)
	line := addCartItem(t, ts, "product_1", 2)

	resp := ts.api.Post("/api/v1/cart/items/" + line.ID + "/toggle")
	require.Equal(t, http.StatusOK, resp.Code)
	toggled := decodeBody[domain.CartLine](t, resp.Body.Bytes())
	assert.False(t, toggled.Selected)

	totalResp := ts.api.Get("/api/v1/cart/total")
	require.Equal(t, http.StatusOK, totalResp.Code)
	total := decodeBody[CartTotalResponse](t, totalResp.Body.Bytes())
	assert.Zero(t, total.Total)
}

func TestRemoveCartItem(t *testing.T) {
	ts := setupTestServer(t)
	line := addCartItem(t, ts, "product_1", 1)

	resp := ts.api.Delete("/api/v1/cart/items/" + line.ID)
	require.Equal(t, http.StatusOK, resp.Code)
	removed := decodeBody[RemoveCartItemResponse](t, resp.Body.Bytes())
	assert.True(t, removed.Removed)

	resp = ts.api.Delete("/api/v1/cart/items/" + line.ID)
	require.Equal(t, http.StatusOK, resp.Code)
	removed = decodeBody[RemoveCartItemResponse](t, resp.Body.Bytes())
	assert.False(t, removed.Removed)
}

func TestClearCart(t *testing.T) {
	ts := setupTestServer(t)
	addCartItem(t, ts, "product_1", 1)
	addCartItem(t, ts, "product_5", 2)

	resp := ts.api.Delete("/api/v1/cart")
	require.Equal(t, http.StatusOK, resp.Code)

	cart := decodeBody[CartStateResponse](t, resp.Body.Bytes())
	assert.Empty(t, cart.State.Data)
	assert.Zero(t, cart.Total)
	assert.Zero(t, cart.ItemsCount)
}
