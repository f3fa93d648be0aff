package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"artistpages/database"
	"artistpages/internal/domain/pages"
	"artistpages/internal/domain/users"
	"artistpages/internal/infra/blob"
)

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := database.Open("sqlite", dsn)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func newTestService(t *testing.T, db *gorm.DB, store blob.Store) *PageService {
	t.Helper()
	return NewPageService(db, store, zap.NewNop(),
		WithClock(func() time.Time { return testNow }),
		WithRootDomain("theartistt.com"))
}

func seedPage(t *testing.T, db *gorm.DB, email, slug string) *pages.Page {
	t.Helper()
	var user users.User
	err := db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = users.User{Email: email, Name: "Owner"}
		require.NoError(t, db.Create(&user).Error)
	} else {
		require.NoError(t, err)
	}

	page := pages.Page{
		UserID:      user.ID,
		Slug:        slug,
		DisplayName: "Nova",
		ThemeColor:  pages.ThemeCyan,
		ThemeMode:   pages.ModeDark,
		IsPublished: true,
	}
	require.NoError(t, db.Create(&page).Error)
	return &page
}

func pngDataURL(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// memStore records puts in memory.
type memStore struct {
	puts []string
}

func (m *memStore) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	url := "https://blobs.test/" + name
	m.puts = append(m.puts, url)
	return url, nil
}

func (m *memStore) Delete(ctx context.Context, url string) error { return nil }

// failingStore fails every call.
type failingStore struct{}

func (failingStore) Put(context.Context, string, string, []byte) (string, error) {
	return "", errors.New("blob backend unavailable")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("blob backend unavailable")
}

func strp(s string) *string { return &s }
