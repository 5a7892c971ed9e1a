package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerSessionRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getSession",
		Method:      http.MethodGet,
		Path:        "/api/v1/session",
		Summary:     "Get session",
		Description: "Returns the persisted login flag",
		Tags:        []string{"Session"},
	}, s.handleGetSession)

	huma.Register(s.api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/v1/session/login",
		Summary:     "Log in",
		Tags:        []string{"Session"},
	}, s.handleLogin)

	huma.Register(s.api, huma.Operation{
		OperationID: "logout",
		Method:      http.MethodPost,
		Path:        "/api/v1/session/logout",
		Summary:     "Log out",
		Tags:        []string{"Session"},
	}, s.handleLogout)
}

// === DTOs ===

type SessionResponse struct {
	LoggedIn bool `json:"logged_in" doc:"Persisted login flag"`
}

type SessionOutput struct {
	Body SessionResponse
}

// === Handlers ===

func (s *Server) handleGetSession(ctx context.Context, _ *struct{}) (*SessionOutput, error) {
	loggedIn, err := s.services.Session.IsLoggedIn(ctx)
	if err != nil {
		return nil, err
	}
	return &SessionOutput{Body: SessionResponse{LoggedIn: loggedIn}}, nil
}

func (s *Server) handleLogin(ctx context.Context, _ *struct{}) (*SessionOutput, error) {
	if err := s.services.Session.Login(ctx); err != nil {
		return nil, err
	}
	return &SessionOutput{Body: SessionResponse{LoggedIn: true}}, nil
}

func (s *Server) handleLogout(ctx context.Context, _ *struct{}) (*SessionOutput, error) {
	if err := s.services.Session.Logout(ctx); err != nil {
		return nil, err
	}
	return &SessionOutput{Body: SessionResponse{LoggedIn: false}}, nil
}
