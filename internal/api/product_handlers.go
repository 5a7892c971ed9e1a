package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ksynicapp/storefront-server/internal/domain"
	"github.com/ksynicapp/storefront-server/internal/projection"
)

func (s *Server) registerProductRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listProducts",
		Method:      http.MethodGet,
		Path:        "/api/v1/products",
		Summary:     "List products",
		Description: "Returns the product listing screen state. Loaded once per process unless force=true.",
		Tags:        []string{"Products"},
	}, s.handleListProducts)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchProducts",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/search",
		Summary:     "Search products",
		Description: "Case-insensitive substring search over name, brand, and description",
		Tags:        []string{"Products"},
	}, s.handleSearchProducts)

	huma.Register(s.api, huma.Operation{
		OperationID: "getProduct",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}",
		Summary:     "Get product",
		Description: "Returns a single product with its favorite flag stamped",
		Tags:        []string{"Products"},
	}, s.handleGetProduct)

	huma.Register(s.api, huma.Operation{
		OperationID: "listCategoryProducts",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories/{id}/products",
		Summary:     "List category products",
		Description: "Returns the products of a category",
		Tags:        []string{"Products"},
	}, s.handleListCategoryProducts)
}

// === DTOs ===

type ListProductsInput struct {
	Force bool `query:"force" doc:"Force a reload even when the listing is already loaded"`
}

type ProductsStateOutput struct {
	Body projection.State[[]domain.Item]
}

type SearchProductsInput struct {
	Query string `query:"q" doc:"Search query"`
}

type GetProductInput struct {
	ID string `path:"id" doc:"Product ID"`
}

type ProductOutput struct {
	Body domain.Item
}

type ListCategoryProductsInput struct {
	ID string `path:"id" doc:"Category ID"`
}

type ProductListResponse struct {
	Products []domain.Item `json:"products" doc:"Product list"`
}

type ProductListOutput struct {
	Body ProductListResponse
}

// === Handlers ===

func (s *Server) handleListProducts(ctx context.Context, input *ListProductsInput) (*ProductsStateOutput, error) {
	state := s.projections.Catalog.LoadProducts(ctx, input.Force)
	return &ProductsStateOutput{Body: state}, nil
}

func (s *Server) handleSearchProducts(ctx context.Context, input *SearchProductsInput) (*ProductsStateOutput, error) {
	state := s.projections.Catalog.Search(ctx, input.Query)
	return &ProductsStateOutput{Body: state}, nil
}

func (s *Server) handleGetProduct(ctx context.Context, input *GetProductInput) (*ProductOutput, error) {
	item, err := s.services.Catalog.Product(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &ProductOutput{Body: *item}, nil
}

func (s *Server) handleListCategoryProducts(ctx context.Context, input *ListCategoryProductsInput) (*ProductListOutput, error) {
	items, err := s.services.Catalog.ProductsByCategory(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &ProductListOutput{Body: ProductListResponse{Products: items}}, nil
}
