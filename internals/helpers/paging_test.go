package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 10, 50)
		return nil
	})

	cases := []struct {
		query string
		want  Paging
	}{
		{"", Paging{Page: 1, PerPage: 10, Offset: 0, Limit: 10}},
		{"?page=3&per_page=20", Paging{Page: 3, PerPage: 20, Offset: 40, Limit: 20}},
		{"?page=2&limit=5", Paging{Page: 2, PerPage: 5, Offset: 5, Limit: 5}},
		{"?per_page=500", Paging{Page: 1, PerPage: 50, Offset: 0, Limit: 50}},
		{"?page=-4&per_page=abc", Paging{Page: 1, PerPage: 10, Offset: 0, Limit: 10}},
	}
	for _, tc := range cases {
		_, err := app.Test(httptest.NewRequest("GET", "/"+tc.query, nil))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.query)
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(41, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	empty := BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
}

func TestJsonList_FillsCount(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return JsonList(c, "", []int{1, 2, 3}, BuildPaginationFromPage(3, 1, 10))
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)

	var body struct {
		Success    bool       `json:"success"`
		Message    string     `json:"message"`
		Pagination Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.True(t, body.Success)
	assert.Equal(t, "ok", body.Message)
	assert.Equal(t, 3, body.Pagination.Count)
}

func TestJsonError_Codes(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", errorCode(fiber.StatusBadRequest))
	assert.Equal(t, "NOT_FOUND", errorCode(fiber.StatusNotFound))
	assert.Equal(t, "ERROR", errorCode(fiber.StatusTooManyRequests))
	assert.Equal(t, "INTERNAL_ERROR", errorCode(fiber.StatusBadGateway))
}
