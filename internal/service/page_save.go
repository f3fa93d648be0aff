package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"artistpages/internal/domain/pages"
	"artistpages/internal/infra/blob"
)

// collectionStep is one child collection of a save. Steps run in a fixed
// order and each commits on its own.
type collectionStep struct {
	name    string
	state   pages.CollectionState
	replace func(tx *gorm.DB) error
}

// Save writes a draft over one of the user's pages.
//
// The root row is updated in place. Every collection present in the draft
// is replaced (delete all, then insert) in its own transaction; collections
// left unset are not touched. A failing collection aborts the remaining
// ones but does not roll back the ones already written.
//
// All validation happens before the first write.
func (s *PageService) Save(ctx context.Context, email string, d pages.Draft) (*pages.Page, error) {
	db := s.db.WithContext(ctx)
	user, err := findUser(db, email)
	if err != nil {
		return nil, err
	}
	if d.ID == "" {
		return nil, ErrNotFound
	}

	var page pages.Page
	if err := userPagesQuery(db, user.ID).Where("id = ?", d.ID).First(&page).Error; err != nil {
		return nil, translate(err)
	}

	updates, err := s.rootUpdates(db, &page, d)
	if err != nil {
		return nil, err
	}
	steps, err := s.collectionSteps(page.ID, d)
	if err != nil {
		return nil, translate(err)
	}

	if cover, ok := s.coverUpdate(ctx, &page, d.CoverPhotoURL); ok {
		updates["cover_photo_url"] = cover
	}

	if err := db.Model(&page).Updates(updates).Error; err != nil {
		return nil, translate(err)
	}

	for _, step := range steps {
		if step.state == pages.Unset {
			continue
		}
		if err := db.Transaction(step.replace); err != nil {
			s.log.Error("collection save failed",
				zap.String("page_id", page.ID),
				zap.String("collection", step.name),
				zap.Error(err))
			return nil, errors.Wrapf(err, "save %s", step.name)
		}
		s.log.Debug("collection replaced",
			zap.String("page_id", page.ID),
			zap.String("collection", step.name),
			zap.String("state", step.state.String()))
	}

	return s.loadOwned(db, user.ID, page.ID)
}

// rootUpdates builds the column map for the page row. A map is used so that
// false and empty values are written.
func (s *PageService) rootUpdates(db *gorm.DB, page *pages.Page, d pages.Draft) (map[string]interface{}, error) {
	updates := map[string]interface{}{
		"is_published": d.IsPublished,
	}

	if name := strings.TrimSpace(d.DisplayName); name != "" {
		updates["display_name"] = name
	}

	if slug := strings.ToLower(strings.TrimSpace(d.Slug)); slug != "" {
		if !pages.ValidSlug(slug) {
			return nil, reason(ErrInvalidSlug, "Slug must be 3-30 characters of a-z, 0-9 and -")
		}
		if slug != page.Slug {
			taken, err := slugTaken(db, slug, page.ID)
			if err != nil {
				return nil, translate(err)
			}
			if taken {
				return nil, reason(ErrSlugTaken, "This subdomain is already taken")
			}
		}
		updates["slug"] = slug
	}

	color, mode := page.ThemeColor, page.ThemeMode
	if v := strings.TrimSpace(d.ThemeColor); v != "" {
		color = v
		updates["theme_color"] = v
	}
	if v := strings.TrimSpace(d.ThemeMode); v != "" {
		mode = v
		updates["theme_mode"] = v
	}
	if err := pages.ValidateTheme(color, mode); err != nil {
		return nil, translate(err)
	}

	if d.CoverPhotoShape != nil {
		shape := strings.TrimSpace(*d.CoverPhotoShape)
		if err := pages.ValidateCoverShape(shape); err != nil {
			return nil, translate(err)
		}
		updates["cover_photo_shape"] = shape
	}
	if d.Bio != nil {
		updates["bio"] = strings.TrimSpace(*d.Bio)
	}
	if d.Genre != nil {
		updates["genre"] = strings.TrimSpace(*d.Genre)
	}
	return updates, nil
}

// coverUpdate resolves the submitted cover photo. Inline images are uploaded
// first; if that fails the stored URL is kept and the save goes on.
func (s *PageService) coverUpdate(ctx context.Context, page *pages.Page, submitted *string) (interface{}, bool) {
	if submitted == nil {
		return nil, false
	}
	v := strings.TrimSpace(*submitted)
	if v == "" {
		return nil, true
	}
	if !blob.IsDataURL(v) {
		return v, true
	}

	url, err := s.uploadInline(ctx, "cover-"+page.ID, v)
	if err != nil {
		s.log.Warn("cover photo upload failed, keeping previous url",
			zap.String("page_id", page.ID),
			zap.Error(err))
		return nil, false
	}
	return url, true
}

func (s *PageService) uploadInline(ctx context.Context, name, dataURL string) (string, error) {
	if s.blobs == nil {
		return "", errors.New("no blob store configured")
	}
	img, err := blob.ParseDataURL(dataURL)
	if err != nil {
		return "", err
	}
	return s.blobs.Put(ctx, name+img.Ext, img.ContentType, img.Data)
}

func (s *PageService) collectionSteps(pageID string, d pages.Draft) ([]collectionStep, error) {
	now := s.now()

	links, err := pages.LinkRecords(pageID, d.Links.Rows())
	if err != nil {
		return nil, err
	}
	socials, err := pages.SocialLinkRecords(pageID, d.SocialLinks.Rows())
	if err != nil {
		return nil, err
	}
	buttons, err := pages.CustomButtonRecords(pageID, d.CustomButtons.Rows())
	if err != nil {
		return nil, err
	}
	featured, err := pages.FeaturedItemRecords(pageID, d.FeaturedItems.Rows())
	if err != nil {
		return nil, err
	}
	tracks, err := pages.TrackRecords(pageID, d.Tracks.Rows())
	if err != nil {
		return nil, err
	}
	events, err := pages.EventRecords(pageID, d.Events.Rows(), now)
	if err != nil {
		return nil, err
	}
	sets, err := pages.FullSetRecords(pageID, d.FullSets.Rows(), now)
	if err != nil {
		return nil, err
	}

	return []collectionStep{
		{"links", d.Links.State(), replaceRows(pageID, links)},
		{"social_links", d.SocialLinks.State(), replaceRows(pageID, socials)},
		{"custom_buttons", d.CustomButtons.State(), replaceRows(pageID, buttons)},
		{"featured_items", d.FeaturedItems.State(), replaceRows(pageID, featured)},
		{"tracks", d.Tracks.State(), replaceRows(pageID, tracks)},
		{"events", d.Events.State(), replaceRows(pageID, events)},
		{"full_sets", d.FullSets.State(), replaceRows(pageID, sets)},
	}, nil
}

func replaceRows[S any](pageID string, rows []S) func(tx *gorm.DB) error {
	return func(tx *gorm.DB) error {
		if err := tx.Where("page_id = ?", pageID).Delete(new(S)).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 100).Error
	}
}
