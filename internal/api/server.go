// Package api provides the HTTP API server and handlers for the storefront.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ksynicapp/storefront-server/internal/store"
	"github.com/ksynicapp/storefront-server/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store       *store.Store
	services    Services
	projections Projections
	validator   *validation.Validator
	router      *chi.Mux
	api         huma.API
	logger      *slog.Logger

	mutationLimiter *RateLimiter
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(store *store.Store, services Services, projections Projections, logger *slog.Logger) *Server {
	s := &Server{
		store:           store,
		services:        services,
		projections:     projections,
		validator:       validation.New(),
		router:          chi.NewRouter(),
		logger:          logger,
		mutationLimiter: NewRateLimiter(120, time.Minute, 30),
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("Storefront API", "1.0.0")
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerProductRoutes()
	s.registerFavoriteRoutes()
	s.registerCartRoutes()
	s.registerProfileRoutes()
	s.registerSessionRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases resources held by the server.
func (s *Server) Close() {
	s.mutationLimiter.Stop()
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	s.router.Use(s.mutationRateLimit())
}

// mutationRateLimit applies the token-bucket limiter to non-read requests
// only; catalog browsing stays unthrottled.
func (s *Server) mutationRateLimit() func(http.Handler) http.Handler {
	limit := RateLimitMiddleware(s.mutationLimiter, s.logger)
	return func(next http.Handler) http.Handler {
		limited := limit(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
			default:
				limited.ServeHTTP(w, r)
			}
		})
	}
}
