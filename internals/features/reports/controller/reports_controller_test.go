package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudents_RejectsMalformedClass(t *testing.T) {
	app := fiber.New()
	app.Get("/reports/students", NewReportsController(nil).Students)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reports/students?class=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
