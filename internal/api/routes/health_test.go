package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func setupHealthApp(ping func() error) *fiber.App {
	app := fiber.New()
	registerHealthWith(app.Group("/api"), ping)
	return app
}

func TestHealth(t *testing.T) {
	app := setupHealthApp(func() error { return nil })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthDB(t *testing.T) {
	app := setupHealthApp(func() error { return nil })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health/db", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthDBUnavailable(t *testing.T) {
	app := setupHealthApp(func() error { return errors.New("dial tcp: connection refused") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health/db", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
