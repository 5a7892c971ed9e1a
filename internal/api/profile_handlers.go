package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ksynicapp/storefront-server/internal/domain"
	"github.com/ksynicapp/storefront-server/internal/projection"
	"github.com/ksynicapp/storefront-server/internal/service"
)

func (s *Server) registerProfileRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getProfile",
		Method:      http.MethodGet,
		Path:        "/api/v1/profile",
		Summary:     "Get profile",
		Description: "Returns the profile screen state, creating the default record on first access",
		Tags:        []string{"Profile"},
	}, s.handleGetProfile)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateProfile",
		Method:      http.MethodPatch,
		Path:        "/api/v1/profile",
		Summary:     "Update profile",
		Description: "Applies a partial profile change. Omitted fields keep their current value.",
		Tags:        []string{"Profile"},
	}, s.handleUpdateProfile)

	huma.Register(s.api, huma.Operation{
		OperationID: "replaceProfile",
		Method:      http.MethodPut,
		Path:        "/api/v1/profile",
		Summary:     "Replace profile",
		Description: "Overwrites the whole profile record, keeping the stored id",
		Tags:        []string{"Profile"},
	}, s.handleReplaceProfile)
}

// === DTOs ===

type ProfileStateInput struct {
	Force bool `query:"force" doc:"Reload even when already loaded"`
}

type ProfileStateOutput struct {
	Body projection.State[domain.Profile]
}

type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name,omitempty" doc:"First name"`
	LastName    *string `json:"last_name,omitempty" doc:"Last name"`
	Gender      *string `json:"gender,omitempty" doc:"Gender"`
	BirthDate   *string `json:"birth_date,omitempty" validate:"omitempty,len=10" doc:"Birth date, DD.MM.YYYY"`
	Phone       *string `json:"phone,omitempty" doc:"Phone number"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email" doc:"Email address"`
	DisplayName *string `json:"display_name,omitempty" doc:"Display name"`
	AvatarName  *string `json:"avatar_name,omitempty" doc:"Avatar asset name"`
}

type UpdateProfileInput struct {
	Body UpdateProfileRequest
}

type ReplaceProfileInput struct {
	Body domain.Profile
}

type ProfileOutput struct {
	Body domain.Profile
}

// === Handlers ===

func (s *Server) handleGetProfile(ctx context.Context, input *ProfileStateInput) (*ProfileStateOutput, error) {
	state := s.projections.Profile.Load(ctx, input.Force)
	return &ProfileStateOutput{Body: state}, nil
}

func (s *Server) handleUpdateProfile(ctx context.Context, input *UpdateProfileInput) (*ProfileOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	profile, err := s.projections.Profile.Update(ctx, service.ProfileUpdate{
		FirstName:   input.Body.FirstName,
		LastName:    input.Body.LastName,
		Gender:      input.Body.Gender,
		BirthDate:   input.Body.BirthDate,
		Phone:       input.Body.Phone,
		Email:       input.Body.Email,
		DisplayName: input.Body.DisplayName,
		AvatarName:  input.Body.AvatarName,
	})
	if err != nil {
		return nil, err
	}
	return &ProfileOutput{Body: *profile}, nil
}

func (s *Server) handleReplaceProfile(ctx context.Context, input *ReplaceProfileInput) (*ProfileOutput, error) {
	profile := input.Body
	saved, err := s.projections.Profile.Replace(ctx, &profile)
	if err != nil {
		return nil, err
	}
	return &ProfileOutput{Body: *saved}, nil
}
