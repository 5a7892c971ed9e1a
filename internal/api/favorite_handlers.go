package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerFavoriteRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listFavorites",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites",
		Summary:     "List favorites",
		Description: "Returns the favorites screen state",
		Tags:        []string{"Favorites"},
	}, s.handleListFavorites)

	huma.Register(s.api, huma.Operation{
		OperationID: "addFavorite",
		Method:      http.MethodPut,
		Path:        "/api/v1/favorites/{productID}",
		Summary:     "Add favorite",
		Description: "Marks a product as favorite. Idempotent.",
		Tags:        []string{"Favorites"},
	}, s.handleAddFavorite)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeFavorite",
		Method:      http.MethodDelete,
		Path:        "/api/v1/favorites/{productID}",
		Summary:     "Remove favorite",
		Description: "Unmarks a product as favorite. Idempotent.",
		Tags:        []string{"Favorites"},
	}, s.handleRemoveFavorite)

	huma.Register(s.api, huma.Operation{
		OperationID: "toggleFavorite",
		Method:      http.MethodPost,
		Path:        "/api/v1/favorites/{productID}/toggle",
		Summary:     "Toggle favorite",
		Description: "Flips a product's favorite flag and returns the new value",
		Tags:        []string{"Favorites"},
	}, s.handleToggleFavorite)
}

// === DTOs ===

type FavoriteInput struct {
	ProductID string `path:"productID" doc:"Product ID"`
}

type FavoriteResponse struct {
	ProductID  string `json:"product_id" doc:"Product ID"`
	IsFavorite bool   `json:"is_favorite" doc:"Favorite flag after the operation"`
}

type FavoriteOutput struct {
	Body FavoriteResponse
}

// === Handlers ===

func (s *Server) handleListFavorites(ctx context.Context, _ *struct{}) (*ProductsStateOutput, error) {
	state := s.projections.Catalog.LoadFavorites(ctx)
	return &ProductsStateOutput{Body: state}, nil
}

func (s *Server) handleAddFavorite(ctx context.Context, input *FavoriteInput) (*FavoriteOutput, error) {
	if err := s.projections.Catalog.SetFavorite(ctx, input.ProductID, true); err != nil {
		return nil, err
	}
	return &FavoriteOutput{Body: FavoriteResponse{ProductID: input.ProductID, IsFavorite: true}}, nil
}

func (s *Server) handleRemoveFavorite(ctx context.Context, input *FavoriteInput) (*FavoriteOutput, error) {
	if err := s.projections.Catalog.SetFavorite(ctx, input.ProductID, false); err != nil {
		return nil, err
	}
	return &FavoriteOutput{Body: FavoriteResponse{ProductID: input.ProductID, IsFavorite: false}}, nil
}

func (s *Server) handleToggleFavorite(ctx context.Context, input *FavoriteInput) (*FavoriteOutput, error) {
	nowFavorite, err := s.projections.Catalog.ToggleFavorite(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	return &FavoriteOutput{Body: FavoriteResponse{ProductID: input.ProductID, IsFavorite: nowFavorite}}, nil
}
