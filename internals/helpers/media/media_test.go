package media

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestToWebP_DownscalesKeepingAspect(t *testing.T) {
	out, err := ToWebP(samplePNG(t, 400, 200), "banner.png", WebPOptions{MaxW: 100, MaxH: 100})
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage(samplePNG(t, 2, 2), "x.bin"))
	assert.False(t, IsImage([]byte("%PDF-1.4 ..."), "report.pdf"))
	_, err := ToWebP([]byte("plain text"), "notes.txt", WebPOptions{})
	assert.Error(t, err)
}

func TestLocalStore_PutAndDelete(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStore(dir, "uploads/")

	url, err := s.Put(context.Background(), "site/a.txt", strings.NewReader("hello"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/site/a.txt", url)

	got, err := os.ReadFile(filepath.Join(dir, "site", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))

	require.NoError(t, s.Delete(context.Background(), "site/a.txt"))
	require.NoError(t, s.Delete(context.Background(), "site/a.txt"))
}

func TestObjectKey(t *testing.T) {
	u := &Uploader{Now: func() time.Time { return time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC) }}
	key := u.ObjectKey("student docs", "../Birth Cert.pdf")
	assert.True(t, strings.HasPrefix(key, "student_docs/20240506-"), key)
	assert.True(t, strings.HasSuffix(key, "-Birth_Cert.pdf"), key)
	assert.True(t, strings.HasPrefix(u.ObjectKey("", "a.png"), "misc/"))
}
