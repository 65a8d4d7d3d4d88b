package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schooloffice_backend/internals/configs"
	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	helper "schooloffice_backend/internals/helpers"
)

func logsApp(t *testing.T, role string) *fiber.App {
	t.Helper()
	configs.JWTSecret = "test-secret"
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=127.0.0.1 user=x dbname=x sslmode=disable"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocRole, role)
		c.Locals(helper.LocUserID, uuid.NewString())
		return c.Next()
	})
	crud.Register(app.Group("/sms"), db, SMSLogResource())
	crud.Register(app.Group("/emails"), db, EmailLogResource())
	return app
}

func TestDeliveryLogs_HiddenFromReadOnlyRoles(t *testing.T) {
	paths := []string{"/sms", "/emails", "/sms/" + uuid.NewString(), "/emails/" + uuid.NewString()}
	for _, role := range []string{constants.RoleStudent, constants.RoleParent, constants.RoleDriver, constants.RoleLibrarian} {
		app := logsApp(t, role)
		for _, p := range paths {
			resp, err := app.Test(httptest.NewRequest("GET", p, nil))
			require.NoError(t, err)
			assert.Equal(t, 403, resp.StatusCode, "%s GET %s", role, p)
		}
	}
}

func TestDeliveryLogs_ListableBySenders(t *testing.T) {
	for _, role := range []string{constants.RoleAdmin, constants.RoleTeacher, constants.RoleReceptionist} {
		app := logsApp(t, role)
		for _, p := range []string{"/sms", "/emails"} {
			resp, err := app.Test(httptest.NewRequest("GET", p, nil))
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode, "%s GET %s", role, p)
		}
	}
}
