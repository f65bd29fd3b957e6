package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *common.Config {
	return &common.Config{
		Server: common.ServerConfig{ContextPath: "/api"},
		Store: common.StoreConfig{
			DocumentBackend:         "memory",
			BlobBackend:             "memory",
			OperationTimeoutSeconds: 5,
			MaxBlobSizeBytes:        1 << 20,
			Workers:                 2,
		},
		CorsConfig: common.CorsConfig{AllowedOrigins: []string{"*"}, AllowedMethods: []string{http.MethodGet}},
	}
}

func TestBuildBackendsMemory(t *testing.T) {
	b, err := buildBackends(context.Background(), memoryConfig(), "")
	require.NoError(t, err)
	defer b.Close(context.Background())

	assert.NotNil(t, b.documents)
	assert.NotNil(t, b.blobs)
	assert.Nil(t, b.db)
	assert.Nil(t, b.mongo)
}

func TestBuildBackendsUnknown(t *testing.T) {
	cfg := memoryConfig()
	cfg.Store.BlobBackend = "tape"

	_, err := buildBackends(context.Background(), cfg, "")
	require.Error(t, err)
	assert.True(t, common.IsInternalServerError(err))
	assert.Contains(t, err.Error(), "tape")
}

func TestHandlerServesHealthMetricsAndAPI(t *testing.T) {
	cfg := memoryConfig()
	b, err := buildBackends(context.Background(), cfg, "")
	require.NoError(t, err)
	srv := httptest.NewServer(newHandler(cfg, newStore(cfg, b)))
	defer srv.Close()

	for path, status := range map[string]int{
		"/api/health":    http.StatusOK,
		"/metrics":       http.StatusOK,
		"/api/submodels": http.StatusOK,
		"/api/submodels/" + common.EncodeString("urn:missing"): http.StatusNotFound,
	} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, status, resp.StatusCode, path)
	}
}
