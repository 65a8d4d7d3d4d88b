package crud

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schooloffice_backend/internals/configs"
	"schooloffice_backend/internals/constants"
	helper "schooloffice_backend/internals/helpers"
)

type widget struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:widget_id" json:"widget_id"`
	Name      string    `gorm:"column:widget_name" json:"widget_name"`
	CreatedAt time.Time `gorm:"column:widget_created_at;autoCreateTime" json:"widget_created_at"`
}

func (widget) TableName() string { return "widgets" }

type widgetForm struct {
	Name     string `json:"name" validate:"required,max=20"`
	Password string `json:"password"`
}

func (f widgetForm) ToModel() widget { return widget{Name: f.Name} }

// dryDB builds SQL without a server; reads return empty results.
func dryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=127.0.0.1 user=x dbname=x sslmode=disable"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func newApp(t *testing.T, role string) *fiber.App {
	configs.JWTSecret = "test-secret"
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocRole, role)
		c.Locals(helper.LocUserID, uuid.NewString())
		return c.Next()
	})
	Register(app.Group("/widgets"), dryDB(t), &Resource[widget, widgetForm]{
		Name:    "widget",
		Area:    constants.AreaLibrary,
		OrderBy: "widget_name",
		Search:  []string{"widget_name"},
		Filters: []Filter{{Param: "owner", Column: "widget_owner_id", Kind: FilterUUID}},
	})
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestList_PaginationEnvelope(t *testing.T) {
	app := newApp(t, constants.RoleLibrarian)
	resp, err := app.Test(httptest.NewRequest("GET", "/widgets?search=50%25&page=2", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, true, body["success"])
	p := body["pagination"].(map[string]any)
	assert.EqualValues(t, 2, p["page"])
	assert.EqualValues(t, defaultPageSize, p["per_page"])
	assert.Equal(t, []any{}, body["data"])
}

func TestList_InvalidFilterIsValidationError(t *testing.T) {
	app := newApp(t, constants.RoleLibrarian)
	resp, err := app.Test(httptest.NewRequest("GET", "/widgets?owner=not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)
	errs := decode(t, resp)["errors"].(map[string]any)
	assert.Contains(t, errs, "owner")
}

func TestCapabilityGuard(t *testing.T) {
	app := newApp(t, constants.RoleStudent)
	resp, err := app.Test(httptest.NewRequest("GET", "/widgets", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	app = newApp(t, constants.RoleAccountant)
	req := httptest.NewRequest("POST", "/widgets", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestCreate_ValidationEchoesInputWithoutSecrets(t *testing.T) {
	app := newApp(t, constants.RoleAdmin)
	req := httptest.NewRequest("POST", "/widgets", strings.NewReader(`{"name":"","password":"hunter22","color":"red"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 422, resp.StatusCode)

	body := decode(t, resp)
	assert.Contains(t, body["errors"].(map[string]any), "name")
	input := body["input"].(map[string]any)
	assert.Equal(t, "red", input["color"])
	assert.NotContains(t, input, "password")
}

func TestDelete_RequiresConfirmToken(t *testing.T) {
	app := newApp(t, constants.RoleAdmin)
	id := uuid.NewString()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/widgets/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)

	other, _, err := IssueConfirmToken("widgets", uuid.NewString(), time.Now())
	require.NoError(t, err)
	resp, err = app.Test(httptest.NewRequest("POST", "/widgets/"+id+"/delete?confirm_token="+other, nil))
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)
}

func TestConfirmToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	id := uuid.NewString()
	now := time.Now()

	tok, exp, err := IssueConfirmToken("books", id, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(5*time.Minute), exp, time.Second)

	assert.NoError(t, VerifyConfirmToken(tok, "books", id))
	assert.Error(t, VerifyConfirmToken(tok, "books", uuid.NewString()))
	assert.Error(t, VerifyConfirmToken(tok, "students", id))
	assert.Error(t, VerifyConfirmToken("", "books", id))

	stale, _, err := IssueConfirmToken("books", id, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Error(t, VerifyConfirmToken(stale, "books", id))
}

func TestParseFilter(t *testing.T) {
	v, err := parseFilter(Filter{Param: "status", Kind: FilterEnum}, "active")
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", v)

	_, err = parseFilter(Filter{Param: "date", Kind: FilterDate}, "31/12/2024")
	assert.Error(t, err)

	v, err = parseFilter(Filter{Param: "is_active", Kind: FilterBool}, "true")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	assert.True(t, OpsAll.Has(OpDelete))
	assert.False(t, OpsRead.Has(OpCreate))
}
