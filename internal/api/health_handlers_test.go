package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_DegradedBeforeCatalogCached(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	health := decodeBody[HealthResponse](t, resp.Body.Bytes())
	assert.Equal(t, "degraded", health.Status)
	assert.Equal(t, "healthy", health.Components["database"].Status)
	assert.Equal(t, "degraded", health.Components["catalog_cache"].Status)
}

func TestHealthCheck_HealthyAfterListing(t *testing.T) {
	ts := setupTestServer(t)

	// The first product listing fills the catalog cache.
	listing := ts.api.Get("/api/v1/products")
	require.Equal(t, http.StatusOK, listing.Code)

	resp := ts.api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	health := decodeBody[HealthResponse](t, resp.Body.Bytes())
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "healthy", health.Components["catalog_cache"].Status)
}
