package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

func newHealthRouter(t *testing.T, pingErr error) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	pinger := mocks.NewMockPinger(ctrl)
	pinger.EXPECT().Ping(gomock.Any()).Return(pingErr).AnyTimes()

	checker := scheduler.NewDatastoreHealthService(pinger, &config.Config{})

	return router.New(
		router.WithRoutes(Root(config.App{Name: "Restaurant Analytics API", Version: "1.0.0"})...),
		router.WithRoutes(Healthcheck(checker)...),
	)
}

func TestHealthcheckHandler(t *testing.T) {
	t.Run("banco saudável", func(t *testing.T) {
		handler := newHealthRouter(t, nil)

		for _, path := range []string{"/healthcheck", "/health"} {
			rec, body := serve(t, handler, http.MethodGet, path)

			require.Equal(t, http.StatusOK, rec.Code, path)
			assert.Equal(t, "healthy", body["status"])
			assert.NotContains(t, body, "api_version")
			assert.NotEmpty(t, body["timestamp"])

			datastore := body["datastore"].(map[string]any)
			assert.Equal(t, true, datastore["healthy"])
		}
	})

	t.Run("rota versionada informa a versão", func(t *testing.T) {
		handler := newHealthRouter(t, nil)

		rec, body := serve(t, handler, http.MethodGet, "/api/v1/health")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "v1", body["api_version"])
	})

	t.Run("banco indisponível responde 503", func(t *testing.T) {
		handler := newHealthRouter(t, errors.New("connection refused"))

		rec, body := serve(t, handler, http.MethodGet, "/health")

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "unhealthy", body["status"])

		datastore := body["datastore"].(map[string]any)
		assert.Equal(t, false, datastore["healthy"])
		assert.Equal(t, "connection refused", datastore["last_error"])
	})

	t.Run("sem verificador considera saudável", func(t *testing.T) {
		rec, body := serve(t, HealthcheckHandler(nil, ""), http.MethodGet, "/health")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, body, "datastore")
	})
}

func TestRootHandler(t *testing.T) {
	handler := newHealthRouter(t, nil)

	rec, body := serve(t, handler, http.MethodGet, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Restaurant Analytics API", body["message"])
	assert.Equal(t, "1.0.0", body["version"])
}
