// Package media stores uploaded files on local disk or Alibaba OSS.
package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"schooloffice_backend/internals/configs"
)

// Store persists an object under key and returns its public URL.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

func NewStore(cfg configs.MediaConfig) (Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "local":
		return NewLocalStore(cfg.LocalDir, cfg.PublicPrefix), nil
	case "oss":
		return NewOSSStore(cfg)
	default:
		return nil, fmt.Errorf("unknown media driver %q", cfg.Driver)
	}
}

/* =======================================================================
   Local disk
======================================================================= */

type LocalStore struct {
	Dir          string
	PublicPrefix string
}

func NewLocalStore(dir, publicPrefix string) *LocalStore {
	return &LocalStore{Dir: dir, PublicPrefix: "/" + strings.Trim(publicPrefix, "/")}
}

func (s *LocalStore) Put(_ context.Context, key string, r io.Reader, _ string) (string, error) {
	full := filepath.Join(s.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(full)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return path.Join(s.PublicPrefix, key), nil
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(s.Dir, filepath.FromSlash(key)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

/* =======================================================================
   Uploader: images → webp, other files as-is
======================================================================= */

type Uploader struct {
	Store Store
	WebP  WebPOptions
	Now   func() time.Time
}

func NewUploader(store Store, cfg configs.MediaConfig) *Uploader {
	return &Uploader{
		Store: store,
		WebP:  WebPOptions{MaxW: cfg.MaxWidth, MaxH: cfg.MaxHeight, Quality: cfg.Quality},
		Now:   time.Now,
	}
}

type Upload struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

const MaxUploadSize = 5 * 1024 * 1024

// Save stores fh under folder; images are re-encoded to WebP unless keepOriginal.
func (u *Uploader) Save(ctx context.Context, fh *multipart.FileHeader, folder string, keepOriginal bool) (*Upload, error) {
	if fh == nil {
		return nil, fmt.Errorf("no file")
	}
	if fh.Size > MaxUploadSize {
		return nil, fmt.Errorf("file exceeds %d MB", MaxUploadSize/1024/1024)
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	name := fh.Filename
	ct := sniff(data)
	if !keepOriginal && IsImage(data, name) {
		if data, err = ToWebP(data, name, u.WebP); err != nil {
			return nil, fmt.Errorf("convert image: %w", err)
		}
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".webp"
		ct = "image/webp"
	}

	key := u.ObjectKey(folder, name)
	url, err := u.Store.Put(ctx, key, bytes.NewReader(data), ct)
	if err != nil {
		return nil, err
	}
	return &Upload{URL: url, Key: key, ContentType: ct, Size: len(data)}, nil
}

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// ObjectKey: folder/YYYYMMDD-uuid-name.ext
func (u *Uploader) ObjectKey(folder, filename string) string {
	safe := reUnsafe.ReplaceAllString(filepath.Base(filename), "_")
	folder = strings.Trim(reUnsafe.ReplaceAllString(folder, "_"), "/_")
	if folder == "" {
		folder = "misc"
	}
	return fmt.Sprintf("%s/%s-%s-%s", folder, u.Now().Format("20060102"), uuid.NewString(), safe)
}
