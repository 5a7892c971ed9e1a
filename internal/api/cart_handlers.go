package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ksynicapp/storefront-server/internal/domain"
	"github.com/ksynicapp/storefront-server/internal/projection"
)

func (s *Server) registerCartRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getCart",
		Method:      http.MethodGet,
		Path:        "/api/v1/cart",
		Summary:     "Get cart",
		Description: "Returns the cart screen state with its derived total",
		Tags:        []string{"Cart"},
	}, s.handleGetCart)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCartTotal",
		Method:      http.MethodGet,
		Path:        "/api/v1/cart/total",
		Summary:     "Get cart total",
		Description: "Returns the total over selected lines only",
		Tags:        []string{"Cart"},
	}, s.handleGetCartTotal)

	huma.Register(s.api, huma.Operation{
		OperationID:   "addCartItem",
		Method:        http.MethodPost,
		Path:          "/api/v1/cart/items",
		Summary:       "Add cart item",
		Description:   "Adds a product selection to the cart, or increments the matching line",
		Tags:          []string{"Cart"},
		DefaultStatus: http.StatusCreated,
	}, s.handleAddCartItem)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateCartItem",
		Method:      http.MethodPatch,
		Path:        "/api/v1/cart/items/{lineID}",
		Summary:     "Update cart item quantity",
		Description: "Sets a line's quantity. Zero or negative removes the line.",
		Tags:        []string{"Cart"},
	}, s.handleUpdateCartItem)

	huma.Register(s.api, huma.Operation{
		OperationID: "toggleCartItem",
		Method:      http.MethodPost,
		Path:        "/api/v1/cart/items/{lineID}/toggle",
		Summary:     "Toggle cart item selection",
		Description: "Flips whether a line counts toward the total",
		Tags:        []string{"Cart"},
	}, s.handleToggleCartItem)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeCartItem",
		Method:      http.MethodDelete,
		Path:        "/api/v1/cart/items/{lineID}",
		Summary:     "Remove cart item",
		Tags:        []string{"Cart"},
	}, s.handleRemoveCartItem)

	huma.Register(s.api, huma.Operation{
		OperationID: "clearCart",
		Method:      http.MethodDelete,
		Path:        "/api/v1/cart",
		Summary:     "Clear cart",
		Tags:        []string{"Cart"},
	}, s.handleClearCart)
}

// === DTOs ===

type CartStateResponse struct {
	State      projection.State[[]domain.CartLine] `json:"state" doc:"Cart screen state"`
	Total      int                                 `json:"total" doc:"Total over selected lines, in minor units"`
	ItemsCount int                                 `json:"items_count" doc:"Sum of quantities across loaded lines"`
}

type CartStateOutput struct {
	Body CartStateResponse
}

type CartTotalResponse struct {
	Total int `json:"total" doc:"Total over selected lines, in minor units"`
}

type CartTotalOutput struct {
	Body CartTotalResponse
}

type AddCartItemRequest struct {
	ItemID    string `json:"item_id" validate:"required" doc:"Product ID"`
	VariantID string `json:"variant_id,omitempty" doc:"Variant ID, empty when the product has no variants"`
	SizeID    string `json:"size_id,omitempty" doc:"Size ID, empty when the variant has no sizes"`
	Quantity  int    `json:"quantity" validate:"required,min=1" doc:"Units to add"`
}

type AddCartItemInput struct {
	Body AddCartItemRequest
}

type CartLineOutput struct {
	Body domain.CartLine
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" doc:"New quantity. Zero or negative removes the line."`
}

type UpdateCartItemInput struct {
	LineID string `path:"lineID" doc:"Cart line ID"`
	Body   UpdateCartItemRequest
}

type CartLineInput struct {
	LineID string `path:"lineID" doc:"Cart line ID"`
}

type RemoveCartItemResponse struct {
	Removed bool `json:"removed" doc:"Whether a line was actually removed"`
}

type RemoveCartItemOutput struct {
	Body RemoveCartItemResponse
}

// === Handlers ===

func (s *Server) handleGetCart(ctx context.Context, _ *struct{}) (*CartStateOutput, error) {
	state := s.projections.Cart.Load(ctx)
	return &CartStateOutput{Body: CartStateResponse{
		State:      state,
		Total:      s.projections.Cart.Total(),
		ItemsCount: s.projections.Cart.ItemsCount(),
	}}, nil
}

func (s *Server) handleGetCartTotal(ctx context.Context, _ *struct{}) (*CartTotalOutput, error) {
	total, err := s.services.Cart.Total(ctx)
	if err != nil {
		return nil, err
	}
	return &CartTotalOutput{Body: CartTotalResponse{Total: total}}, nil
}

func (s *Server) handleAddCartItem(ctx context.Context, input *AddCartItemInput) (*CartLineOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	item, err := s.services.Catalog.Product(ctx, input.Body.ItemID)
	if err != nil {
		return nil, err
	}

	line, err := s.projections.Cart.Add(ctx, *item, input.Body.VariantID, input.Body.SizeID, input.Body.Quantity)
	if err != nil {
		return nil, err
	}
	return &CartLineOutput{Body: *line}, nil
}

func (s *Server) handleUpdateCartItem(ctx context.Context, input *UpdateCartItemInput) (*CartStateOutput, error) {
	if err := s.projections.Cart.SetQuantity(ctx, input.LineID, input.Body.Quantity); err != nil {
		return nil, err
	}
	return &CartStateOutput{Body: CartStateResponse{
		State:      s.projections.Cart.Lines(),
		Total:      s.projections.Cart.Total(),
		ItemsCount: s.projections.Cart.ItemsCount(),
	}}, nil
}

func (s *Server) handleToggleCartItem(ctx context.Context, input *CartLineInput) (*CartLineOutput, error) {
	line, err := s.projections.Cart.ToggleSelected(ctx, input.LineID)
	if err != nil {
		return nil, err
	}
	return &CartLineOutput{Body: *line}, nil
}

func (s *Server) handleRemoveCartItem(ctx context.Context, input *CartLineInput) (*RemoveCartItemOutput, error) {
	removed, err := s.projections.Cart.Remove(ctx, input.LineID)
	if err != nil {
		return nil, err
	}
	return &RemoveCartItemOutput{Body: RemoveCartItemResponse{Removed: removed}}, nil
}

func (s *Server) handleClearCart(ctx context.Context, _ *struct{}) (*CartStateOutput, error) {
	if err := s.projections.Cart.Clear(ctx); err != nil {
		return nil, err
	}
	return &CartStateOutput{Body: CartStateResponse{
		State:      s.projections.Cart.Lines(),
		Total:      0,
		ItemsCount: 0,
	}}, nil
}
