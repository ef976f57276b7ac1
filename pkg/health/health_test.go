package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/glossary/pkg/health"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("no checks", func(t *testing.T) {
		t.Parallel()

		resp, err := health.Run(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, health.StatusHealthy, resp.Status)
	})

	t.Run("one failing check does not hide the others", func(t *testing.T) {
		t.Parallel()

		resp, err := health.Run(context.Background(), health.Checks{
			"store": func(context.Context) error { return nil },
			"redis": func(context.Context) error { return errors.New("connection refused") },
		})
		require.ErrorIs(t, err, health.ErrCheckFailed)
		assert.Equal(t, health.StatusUnhealthy, resp.Status)
		assert.Equal(t, health.StatusHealthy, resp.Checks["store"].Status)
		assert.Equal(t, health.StatusUnhealthy, resp.Checks["redis"].Status)
		assert.Contains(t, resp.Checks["redis"].Error, "connection refused")
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		resp, err := health.Run(context.Background(), health.Checks{
			"slow": func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		}, health.WithTimeout(20*time.Millisecond))
		require.ErrorIs(t, err, health.ErrCheckFailed)
		require.ErrorIs(t, err, health.ErrCheckTimeout)
		assert.Equal(t, health.StatusUnhealthy, resp.Checks["slow"].Status)
	})
}

func TestHandlers(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	failing := health.ReadinessHandler(health.Checks{
		"store": func(context.Context) error { return errors.New("closed") },
	})

	rec = httptest.NewRecorder()
	failing(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Service Unavailable", rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	req.Header.Set("Accept", "application/json")
	rec = httptest.NewRecorder()
	failing(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"status":"unhealthy"`)
}
