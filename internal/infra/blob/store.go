package blob

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store keeps uploaded files and hands back a URL the public page can use.
type Store interface {
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, url string) error
}

var ErrForeignURL = errors.New("blob: url is not served by this store")

// LocalStore writes blobs under Dir. Gin serves Dir at BaseURL.
type LocalStore struct {
	Dir     string
	BaseURL string

	now func() time.Time
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "blob: create %s", dir)
	}
	return &LocalStore{
		Dir:     dir,
		BaseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}, nil
}

// Put stores data as <yyyymmdd>-<uuid><ext>. The extension always follows
// contentType; name is never trusted for it, since the file is served back
// with the type its extension implies.
func (s *LocalStore) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ext := extensionFor(contentType)
	file := s.now().UTC().Format("20060102") + "-" + uuid.NewString() + ext

	if err := os.WriteFile(filepath.Join(s.Dir, file), data, 0o644); err != nil {
		return "", errors.Wrap(err, "blob: write")
	}
	return s.BaseURL + "/" + file, nil
}

// Delete removes the file behind url. Missing files are not an error.
func (s *LocalStore) Delete(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	prefix := s.BaseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return ErrForeignURL
	}
	file := path.Base(strings.TrimPrefix(url, prefix))
	if file == "." || file == "/" || file == "" {
		return ErrForeignURL
	}
	err := os.Remove(filepath.Join(s.Dir, file))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "blob: delete")
	}
	return nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
