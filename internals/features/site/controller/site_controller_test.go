package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooloffice_backend/internals/helpers/media"
)

func uploadRequest(t *testing.T, name string, body []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("folder", "blogs"))
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/site/uploads", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUpload_StoresPlainFile(t *testing.T) {
	store := media.NewLocalStore(t.TempDir(), "/media")
	up := &media.Uploader{Store: store, Now: func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }}
	ctl := NewSiteController(nil, up)

	app := fiber.New()
	app.Post("/site/uploads", ctl.Upload)

	resp, err := app.Test(uploadRequest(t, "timetable.pdf", []byte("%PDF-1.4 sample")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var out struct {
		Data media.Upload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, strings.HasPrefix(out.Data.URL, "/media/blogs/20260301-"), out.Data.URL)
	assert.True(t, strings.HasSuffix(out.Data.Key, "timetable.pdf"))
}

func TestUpload_RequiresFile(t *testing.T) {
	app := fiber.New()
	app.Post("/site/uploads", NewSiteController(nil, nil).Upload)

	req := httptest.NewRequest(http.MethodPost, "/site/uploads", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestPutSettings_RejectsClosingBeforeOpening(t *testing.T) {
	app := fiber.New()
	app.Put("/site/settings", NewSiteController(nil, nil).PutSettings)

	req := httptest.NewRequest(http.MethodPut, "/site/settings",
		strings.NewReader(`{"site_setting_start_time":"14:00","site_setting_end_time":"08:00"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
