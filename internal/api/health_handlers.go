package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns server health status with component checks",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// ComponentHealth describes the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status" doc:"Component status: healthy, degraded, or unhealthy"`
	Latency string `json:"latency,omitempty" doc:"Response time for this component"`
	Message string `json:"message,omitempty" doc:"Additional status information"`
}

// HealthResponse contains health check data in API responses.
type HealthResponse struct {
	Status     string                     `json:"status" doc:"Overall status: healthy, degraded, or unhealthy"`
	Components map[string]ComponentHealth `json:"components" doc:"Individual component statuses"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleHealthCheck(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	components := make(map[string]ComponentHealth)
	overall := "healthy"

	dbHealth := s.checkDatabase(ctx)
	components["database"] = dbHealth
	if dbHealth.Status != "healthy" {
		overall = "unhealthy"
	}

	cacheHealth := s.checkCatalogCache(ctx)
	components["catalog_cache"] = cacheHealth
	if cacheHealth.Status == "unhealthy" {
		overall = "unhealthy"
	} else if cacheHealth.Status == "degraded" && overall == "healthy" {
		overall = "degraded"
	}

	return &HealthOutput{
		Body: HealthResponse{
			Status:     overall,
			Components: components,
		},
	}, nil
}

// checkDatabase verifies BadgerDB is accessible.
func (s *Server) checkDatabase(ctx context.Context) ComponentHealth {
	// Handle nil store (e.g., in tests)
	if s.store == nil {
		return ComponentHealth{
			Status:  "degraded",
			Message: "database not configured",
		}
	}

	start := time.Now()

	// Quick read to verify the DB is accessible. A missing login record
	// is fine, it just reads as logged out.
	_, err := s.store.IsLoggedIn(ctx)
	latency := time.Since(start)

	if err != nil {
		return ComponentHealth{
			Status:  "unhealthy",
			Latency: latency.String(),
			Message: "database read failed",
		}
	}

	return ComponentHealth{
		Status:  "healthy",
		Latency: latency.String(),
	}
}

// checkCatalogCache reports whether a catalog snapshot is cached. An empty
// cache is degraded, not unhealthy: the next product listing will fill it
// from the provider.
func (s *Server) checkCatalogCache(ctx context.Context) ComponentHealth {
	if s.store == nil {
		return ComponentHealth{
			Status:  "degraded",
			Message: "database not configured",
		}
	}

	start := time.Now()
	cachedAt, ok, err := s.store.CatalogCachedAt(ctx)
	latency := time.Since(start)

	if err != nil {
		return ComponentHealth{
			Status:  "unhealthy",
			Latency: latency.String(),
			Message: "catalog cache read failed",
		}
	}
	if !ok {
		return ComponentHealth{
			Status:  "degraded",
			Latency: latency.String(),
			Message: "catalog cache empty",
		}
	}

	return ComponentHealth{
		Status:  "healthy",
		Latency: latency.String(),
		Message: "cached " + cachedAt.UTC().Format(time.RFC3339),
	}
}
