package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooloffice_backend/internals/metrics"
)

func TestMetricsMiddleware_CountsByRoutePattern(t *testing.T) {
	app := fiber.New()
	app.Use(MetricsMiddleware())
	app.Get("/books/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	before := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "/books/:id", "204"))
	for _, id := range []string{"a", "b"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/books/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, 204, resp.StatusCode)
	}
	after := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "/books/:id", "204"))
	assert.Equal(t, 2.0, after-before)
}

func TestCorsMiddleware_DefaultsOrigin(t *testing.T) {
	app := fiber.New()
	app.Use(CorsMiddleware(nil))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
}
