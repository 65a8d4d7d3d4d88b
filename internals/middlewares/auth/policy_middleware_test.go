package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooloffice_backend/internals/constants"
	helper "schooloffice_backend/internals/helpers"
)

func appWithRole(role string, cap constants.Capability) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals(helper.LocRole, role)
		}
		return c.Next()
	})
	app.Get("/x", Require(cap), func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestRequire(t *testing.T) {
	cases := []struct {
		role   string
		cap    constants.Capability
		status int
	}{
		{constants.RoleAdmin, constants.Write(constants.AreaFinance), 200},
		{constants.RoleAccountant, constants.Write(constants.AreaFinance), 200},
		{constants.RoleAccountant, constants.Read(constants.AreaStudents), 200},
		{constants.RoleAccountant, constants.Write(constants.AreaStudents), 403},
		{constants.RoleLibrarian, constants.Read(constants.AreaFinance), 403},
		{constants.RoleStudent, constants.Read(constants.AreaAcademics), 200},
		{constants.RoleStudent, constants.Write(constants.AreaAcademics), 403},
		{"", constants.Read(constants.AreaSite), 401},
	}
	for _, tc := range cases {
		resp, err := appWithRole(tc.role, tc.cap).Test(httptest.NewRequest("GET", "/x", nil))
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode, "%s %s", tc.role, tc.cap)
	}
}

func sign(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestParseAccessToken(t *testing.T) {
	const secret = "s3cret"
	good := sign(t, jwt.MapClaims{"typ": "access", "id": "b0c3a0d8-6a43-4f3e-9a0e-1f4a7b2b9c11", "exp": time.Now().Add(time.Minute).Unix()}, secret)
	claims, err := ParseAccessToken(good, secret)
	require.NoError(t, err)
	id, err := extractUserID(claims)
	require.NoError(t, err)
	assert.Equal(t, "b0c3a0d8-6a43-4f3e-9a0e-1f4a7b2b9c11", id.String())

	_, err = ParseAccessToken(good, "other")
	assert.Error(t, err)

	expired := sign(t, jwt.MapClaims{"typ": "access", "exp": time.Now().Add(-time.Hour).Unix()}, secret)
	_, err = ParseAccessToken(expired, secret)
	assert.EqualError(t, err, "token expired")

	refresh := sign(t, jwt.MapClaims{"typ": "refresh", "exp": time.Now().Add(time.Hour).Unix()}, secret)
	_, err = ParseAccessToken(refresh, secret)
	assert.Error(t, err)

	_, err = ParseAccessToken(good, "")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		tok, err := extractBearerToken(c)
		if err != nil {
			return c.Status(401).SendString(err.Error())
		}
		return c.SendString(tok)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "bearer   \"abc\"")
	resp, _ := app.Test(req)
	assert.Equal(t, 200, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, 401, resp.StatusCode)
}
