package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"artistpages/internal/domain/pages"
)

func fullDraft(id string) pages.Draft {
	hidden := false
	return pages.Draft{
		ID:          id,
		Slug:        "nova",
		DisplayName: "Nova",
		ThemeColor:  pages.ThemePurple,
		ThemeMode:   pages.ModeLight,
		IsPublished: true,
		Links: pages.ReplaceWith(
			pages.LinkDraft{Platform: "spotify", URL: "https://s", Order: 1},
			pages.LinkDraft{Platform: "beatport", URL: "https://b", Order: 0, IsVisible: &hidden},
		),
		SocialLinks: pages.ReplaceWith(
			pages.SocialLinkDraft{Platform: "tiktok", URL: "https://t"},
			pages.SocialLinkDraft{Platform: "instagram", URL: "https://i"},
		),
		CustomButtons: pages.ReplaceWith(pages.CustomButtonDraft{Text: "Tickets", URL: "https://tix", Order: 0}),
		FeaturedItems: pages.ReplaceWith(pages.FeaturedItemDraft{Title: "EP", ImageURL: "https://img", Order: 0}),
		Tracks: pages.ReplaceWith(
			pages.TrackDraft{Name: "Second", Order: 1},
			pages.TrackDraft{Name: "First", Order: 0},
			pages.TrackDraft{Name: "  ", Order: 2},
		),
		Events: pages.ReplaceWith(
			pages.EventDraft{Name: "Club Night", Date: "2025-06-07", Order: 0},
			pages.EventDraft{Name: "Broken", Date: "tbd", Order: 1},
		),
		FullSets: pages.ReplaceWith(pages.FullSetDraft{Name: "Boiler Room", Date: strp("09.02.2024"), Order: 0}),
	}
}

func TestSave_ReplacesAllCollections(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, &memStore{})
	seeded := seedPage(t, db, "nova@example.com", "nova")
	ctx := context.Background()

	page, err := svc.Save(ctx, "nova@example.com", fullDraft(seeded.ID))
	require.NoError(t, err)

	assert.Equal(t, seeded.ID, page.ID, "root row is updated, not recreated")
	assert.Equal(t, pages.ThemePurple, page.ThemeColor)
	assert.Equal(t, pages.ModeLight, page.ThemeMode)

	require.Len(t, page.Links, 2)
	assert.Equal(t, "beatport", page.Links[0].Platform, "ordered by order")
	assert.False(t, page.Links[0].IsVisible)
	assert.True(t, page.Links[1].IsVisible)

	require.Len(t, page.SocialLinks, 2)
	assert.Equal(t, "instagram", page.SocialLinks[0].Platform, "social links in platform priority")

	require.Len(t, page.Tracks, 2, "blank track dropped")
	assert.Equal(t, "First", page.Tracks[0].Name)
	assert.Equal(t, "Second", page.Tracks[1].Name)

	require.Len(t, page.Events, 1, "undated event dropped")
	assert.Equal(t, "Club Night", page.Events[0].Title)

	require.Len(t, page.FullSets, 1)
	require.NotNil(t, page.FullSets[0].Date)
	assert.Equal(t, "2024-02-09", page.FullSets[0].Date.UTC().Format("2006-01-02"))
}

func TestSave_IsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, &memStore{})
	seeded := seedPage(t, db, "nova@example.com", "nova")
	ctx := context.Background()

	_, err := svc.Save(ctx, "nova@example.com", fullDraft(seeded.ID))
	require.NoError(t, err)
	first, err := svc.LoadDraft(ctx, "nova@example.com", seeded.ID)
	require.NoError(t, err)

	_, err = svc.Save(ctx, "nova@example.com", first)
	require.NoError(t, err)
	second, err := svc.LoadDraft(ctx, "nova@example.com", seeded.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Links.Len(), second.Links.Len())
	assert.Equal(t, first.Tracks.Len(), second.Tracks.Len())
	assert.Equal(t, first.Events.Len(), second.Events.Len())
	assert.Equal(t, first.Events.Rows()[0].Date, second.Events.Rows()[0].Date)

	var n int64
	require.NoError(t, db.Model(&pages.Link{}).Where("page_id = ?", seeded.ID).Count(&n).Error)
	assert.EqualValues(t, 2, n, "no rows accumulate across saves")
}

func TestSave_CollectionStates(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, &memStore{})
	seeded := seedPage(t, db, "nova@example.com", "nova")
	ctx := context.Background()

	_, err := svc.Save(ctx, "nova@example.com", fullDraft(seeded.ID))
	require.NoError(t, err)

	page, err := svc.Save(ctx, "nova@example.com", pages.Draft{
		ID:     seeded.ID,
		Tracks: pages.ClearOf[pages.TrackDraft](),
		Links:  pages.ReplaceWith(pages.LinkDraft{Platform: "youtube", URL: "https://y"}),
	})
	require.NoError(t, err)

	assert.Empty(t, page.Tracks, "empty collection clears")
	require.Len(t, page.Links, 1)
	assert.Equal(t, "youtube", page.Links[0].Platform)
	assert.Len(t, page.Events, 1, "unset collection untouched")
	assert.Len(t, page.SocialLinks, 2, "unset collection untouched")
	assert.Equal(t, "nova", page.Slug, "blank slug keeps the stored one")
	assert.Equal(t, pages.ThemePurple, page.ThemeColor)
	assert.False(t, page.IsPublished, "publication flag is always written")
}

func TestSave_OwnershipIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, &memStore{})
	theirs := seedPage(t, db, "other@example.com", "other")
	seedPage(t, db, "nova@example.com", "nova")
	ctx := context.Background()

	_, err := svc.Save(ctx, "nova@example.com", pages.Draft{ID: theirs.ID, DisplayName: "Hijack"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Save(ctx, "ghost@example.com", pages.Draft{ID: theirs.ID})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Save(ctx, "nova@example.com", pages.Draft{})
	assert.ErrorIs(t, err, ErrNotFound)

	var stored pages.Page
	require.NoError(t, db.First(&stored, "id = ?", theirs.ID).Error)
	assert.Equal(t, "Nova", stored.DisplayName)
}

func TestSave_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, &memStore{})
	seeded := seedPage(t, db, "nova@example.com", "nova")
	seedPage(t, db, "other@example.com", "taken")
	ctx := context.Background()

	t.Run("BadSlug", func(t *testing.T) {
		_, err := svc.Save(ctx, "nova@example.com", pages.Draft{ID: seeded.ID, Slug: "no"})
		assert.ErrorIs(t, err, ErrInvalidSlug)
		assert.True(t, IsClientError(err))
	})

	t.Run("SlugTaken", func(t *testing.T) {
		_, err := svc.Save(ctx, "nova@example.com", pages.Draft{ID: seeded.ID, Slug: "taken"})
		assert.ErrorIs(t, err, ErrSlugTaken)
		assert.Equal(t, "This subdomain is already taken", Reason(err))
	})

	t.Run("OwnSlugIsFine", func(t *testing.T) {
		_, err := svc.Save(ctx, "nova@example.com", pages.Draft{ID: seeded.ID, Slug: "nova", IsPublished: true})
		assert.NoError(t, err)
	})

	t.Run("BadEnumWritesNothing", func(t *testing.T) {
		d := pages.Draft{
			ID:          seeded.ID,
			DisplayName: "Should not stick",
			Tracks:      pages.ReplaceWith(pages.TrackDraft{Name: "Kept?"}),
			SocialLinks: pages.ReplaceWith(pages.SocialLinkDraft{Platform: "myspace", URL: "https://m"}),
		}
		_, err := svc.Save(ctx, "nova@example.com", d)
		require.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, Reason(err), "myspace")

		var stored pages.Page
		require.NoError(t, db.First(&stored, "id = ?", seeded.ID).Error)
		assert.Equal(t, "Nova", stored.DisplayName)
		var n int64
		require.NoError(t, db.Model(&pages.Track{}).Where("page_id = ?", seeded.ID).Count(&n).Error)
		assert.Zero(t, n)
	})

	t.Run("BadTheme", func(t *testing.T) {
		_, err := svc.Save(ctx, "nova@example.com", pages.Draft{ID: seeded.ID, ThemeColor: "teal"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestSave_CoverPhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("InlineIsUploaded", func(t *testing.T) {
		db := newTestDB(t)
		store := &memStore{}
		svc := newTestService(t, db, store)
		seeded := seedPage(t, db, "nova@example.com", "nova")

		page, err := svc.Save(ctx, "nova@example.com", pages.Draft{ID: seeded.ID, CoverPhotoURL: strp(pngDataURL(t))})
		require.NoError(t, err)
		require.Len(t, store.puts, 1)
		require.NotNil(t, page.CoverPhotoURL)
		assert.Equal(t, store.puts[0], *page.CoverPhotoURL)
	})

	t.Run("UploadFailureKeepsPreviousURL", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestService(t, db, failingStore{})
		seeded := seedPage(t, db, "nova@example.com", "nova")
		require.NoError(t, db.Model(seeded).Update("cover_photo_url", "https://old/cover.png").Error)

		page, err := svc.Save(ctx, "nova@example.com", pages.Draft{
			ID:            seeded.ID,
			DisplayName:   "Nova Renamed",
			CoverPhotoURL: strp(pngDataURL(t)),
		})
		require.NoError(t, err, "upload failure does not fail the save")
		require.NotNil(t, page.CoverPhotoURL)
		assert.Equal(t, "https://old/cover.png", *page.CoverPhotoURL)
		assert.Equal(t, "Nova Renamed", page.DisplayName)
	})

	t.Run("EmptyClears", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestService(t, db, &memStore{})
		seeded := seedPage(t, db, "nova@example.com", "nova")
		require.NoError(t, db.Model(seeded).Update("cover_photo_url", "https://old/cover.png").Error)

		page, err := svc.Save(ctx, "nova@example.com", pages.Draft{ID: seeded.ID, CoverPhotoURL: strp("")})
		require.NoError(t, err)
		assert.Nil(t, page.CoverPhotoURL)
	})
}

func TestSave_FailingCollectionAbortsTheRest(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, &memStore{})
	seeded := seedPage(t, db, "nova@example.com", "nova")
	ctx := context.Background()

	_, err := svc.Save(ctx, "nova@example.com", fullDraft(seeded.ID))
	require.NoError(t, err)

	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_tracks", func(tx *gorm.DB) {
		if tx.Statement.Table == "tracks" {
			_ = tx.AddError(errors.New("disk full"))
		}
	}))

	_, err = svc.Save(ctx, "nova@example.com", pages.Draft{
		ID:     seeded.ID,
		Links:  pages.ReplaceWith(pages.LinkDraft{Platform: "youtube", URL: "https://y"}),
		Tracks: pages.ReplaceWith(pages.TrackDraft{Name: "Never stored"}),
		Events: pages.ClearOf[pages.EventDraft](),
	})
	require.Error(t, err)
	assert.False(t, IsClientError(err))

	var links []pages.Link
	require.NoError(t, db.Where("page_id = ?", seeded.ID).Find(&links).Error)
	require.Len(t, links, 1, "earlier collection stays committed")
	assert.Equal(t, "youtube", links[0].Platform)

	var tracks []pages.Track
	require.NoError(t, db.Where("page_id = ?", seeded.ID).Order("sort_index").Find(&tracks).Error)
	require.Len(t, tracks, 2, "failed collection rolled back to its old rows")
	assert.Equal(t, "First", tracks[0].Name)

	var events int64
	require.NoError(t, db.Model(&pages.Event{}).Where("page_id = ?", seeded.ID).Count(&events).Error)
	assert.EqualValues(t, 1, events, "later collections are not reached")
}
