package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/startnet-api/internal/interfaces/http"
)

func limitedApp(cfg apphttp.RateLimitConfig) *fiber.App {
	app := fiber.New()
	app.Post("/signin", apphttp.RateLimitByIP(cfg), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRateLimitByIP_ExcedeLimite(t *testing.T) {
	app := limitedApp(apphttp.RateLimitConfig{Requests: 2, Window: time.Minute})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/signin", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/signin", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "2", resp.Header.Get("X-RateLimit-Limit"))

	retry, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, retry, 1)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	e := decodeError(t, body)
	assert.Equal(t, apphttp.CodeRateLimited, e.Code)
}

func TestRateLimitByIP_Desactivado(t *testing.T) {
	app := limitedApp(apphttp.RateLimitConfig{})

	for i := 0; i < 20; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/signin", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}
