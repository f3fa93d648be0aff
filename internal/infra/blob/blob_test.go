package blob

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func dataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func TestParseDataURL(t *testing.T) {
	raw := pngBytes(t, 4, 3)

	t.Run("PNG", func(t *testing.T) {
		in, err := ParseDataURL(dataURL("image/png", raw))
		require.NoError(t, err)
		assert.Equal(t, "image/png", in.ContentType)
		assert.Equal(t, ".png", in.Ext)
		assert.Equal(t, 4, in.Width)
		assert.Equal(t, 3, in.Height)
		assert.Equal(t, raw, in.Data)
	})

	t.Run("HostedURL", func(t *testing.T) {
		assert.False(t, IsDataURL("https://cdn.example.com/a.png"))
		_, err := ParseDataURL("https://cdn.example.com/a.png")
		assert.Error(t, err)
	})

	t.Run("NotAnImageType", func(t *testing.T) {
		_, err := ParseDataURL(dataURL("text/plain", []byte("hello")))
		assert.ErrorIs(t, err, ErrNotImage)
	})

	t.Run("CorruptPayload", func(t *testing.T) {
		_, err := ParseDataURL(dataURL("image/png", []byte("not a png")))
		assert.ErrorIs(t, err, ErrNotImage)
	})

	t.Run("HeaderMismatch", func(t *testing.T) {
		_, err := ParseDataURL(dataURL("image/webp", raw))
		assert.Error(t, err)
	})

	t.Run("BadBase64", func(t *testing.T) {
		_, err := ParseDataURL("data:image/png;base64,@@@")
		assert.Error(t, err)
	})
}

func TestLocalStore_PutDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/blobs/")
	require.NoError(t, err)
	ctx := context.Background()

	url, err := store.Put(ctx, "cover.png", "image/png", []byte("x"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/blobs/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"))

	file := filepath.Join(dir, strings.TrimPrefix(url, "/blobs/"))
	got, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), got)

	require.NoError(t, store.Delete(ctx, url))
	_, err = os.Stat(file)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Delete(ctx, url), "deleting twice is fine")
	assert.ErrorIs(t, store.Delete(ctx, "https://elsewhere.com/a.png"), ErrForeignURL)
}

func TestLocalStore_ExtensionFromContentType(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/blobs")
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "cover", "image/webp", []byte("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".webp"), url)
}

func TestLocalStore_IgnoresNameExtension(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/blobs")
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "evil.html", "image/png", pngBytes(t, 1, 1))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".png"), url)
	assert.NotContains(t, url, ".html")

	_, err = os.Stat(filepath.Join(dir, strings.TrimPrefix(url, "/blobs/")))
	assert.NoError(t, err)
}
