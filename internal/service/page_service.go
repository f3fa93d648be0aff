package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"artistpages/internal/domain/pages"
	"artistpages/internal/infra/blob"
)

// PageService loads, saves and projects artist pages. It is the only
// writer of the page aggregate.
type PageService struct {
	db         *gorm.DB
	blobs      blob.Store
	log        *zap.Logger
	now        func() time.Time
	rootDomain string
}

type Option func(*PageService)

func WithClock(now func() time.Time) Option {
	return func(s *PageService) { s.now = now }
}

func WithRootDomain(domain string) Option {
	return func(s *PageService) { s.rootDomain = domain }
}

func NewPageService(db *gorm.DB, blobs blob.Store, logger *zap.Logger, opts ...Option) *PageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &PageService{
		db:         db,
		blobs:      blobs,
		log:        logger.Named("pages"),
		now:        time.Now,
		rootDomain: "theartistt.com",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PageService) RootDomain() string { return s.rootDomain }

// Load returns one of the user's pages with every collection in display
// order. An empty pageID means the user's first page.
func (s *PageService) Load(ctx context.Context, email, pageID string) (*pages.Page, error) {
	db := s.db.WithContext(ctx)
	user, err := findUser(db, email)
	if err != nil {
		return nil, err
	}
	return s.loadOwned(db, user.ID, pageID)
}

// LoadDraft is Load in the editor vocabulary.
func (s *PageService) LoadDraft(ctx context.Context, email, pageID string) (pages.Draft, error) {
	page, err := s.Load(ctx, email, pageID)
	if err != nil {
		return pages.Draft{}, err
	}
	d, err := pages.FromPage(*page)
	if err != nil {
		return pages.Draft{}, translate(err)
	}
	return d, nil
}

func (s *PageService) loadOwned(db *gorm.DB, userID uint, pageID string) (*pages.Page, error) {
	q := withChildren(userPagesQuery(db, userID))
	if pageID != "" {
		q = q.Where("id = ?", pageID)
	} else {
		q = q.Order("created_at ASC")
	}

	var page pages.Page
	if err := q.First(&page).Error; err != nil {
		return nil, translate(err)
	}
	pages.SortSocialLinks(page.SocialLinks)
	return &page, nil
}

// Delete removes a page and all of its children.
func (s *PageService) Delete(ctx context.Context, email, pageID string) error {
	if pageID == "" {
		return ErrNotFound
	}
	db := s.db.WithContext(ctx)
	user, err := findUser(db, email)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var page pages.Page
		if err := userPagesQuery(tx, user.ID).Where("id = ?", pageID).First(&page).Error; err != nil {
			return err
		}
		return tx.Select(clause.Associations).Delete(&page).Error
	})
	if err != nil {
		return translate(err)
	}
	s.log.Info("page deleted", zap.String("page_id", pageID), zap.Uint("user_id", user.ID))
	return nil
}

type PageStats struct {
	Links         int64 `json:"links"`
	SocialLinks   int64 `json:"socialLinks"`
	CustomButtons int64 `json:"customButtons"`
	FeaturedItems int64 `json:"featuredItems"`
	Tracks        int64 `json:"tracks"`
	Events        int64 `json:"events"`
	FullSets      int64 `json:"fullSets"`
}

type PageSummary struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	DisplayName   string    `json:"displayName"`
	URL           string    `json:"url"`
	IsPublished   bool      `json:"isPublished"`
	ThemeColor    string    `json:"themeColor"`
	CoverPhotoURL *string   `json:"coverPhotoUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Stats         PageStats `json:"stats"`
}

// List returns the user's pages, newest first.
func (s *PageService) List(ctx context.Context, email string) ([]PageSummary, error) {
	db := s.db.WithContext(ctx)
	user, err := findUser(db, email)
	if err != nil {
		return nil, err
	}

	var rows []pages.Page
	if err := userPagesQuery(db, user.ID).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	out := make([]PageSummary, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]string, len(rows))
	for i, p := range rows {
		ids[i] = p.ID
	}
	counts := make([]map[string]int64, 0, 7)
	for _, model := range []interface{}{
		&pages.Link{}, &pages.SocialLink{}, &pages.CustomButton{}, &pages.FeaturedItem{},
		&pages.Track{}, &pages.Event{}, &pages.FullSet{},
	} {
		c, err := countByPage(db, model, ids)
		if err != nil {
			return nil, translate(err)
		}
		counts = append(counts, c)
	}

	for _, p := range rows {
		out = append(out, PageSummary{
			ID:            p.ID,
			Slug:          p.Slug,
			DisplayName:   p.DisplayName,
			URL:           pages.BuildPublicURL(p.Slug, s.rootDomain),
			IsPublished:   p.IsPublished,
			ThemeColor:    p.ThemeColor,
			CoverPhotoURL: p.CoverPhotoURL,
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     p.UpdatedAt,
			Stats: PageStats{
				Links:         counts[0][p.ID],
				SocialLinks:   counts[1][p.ID],
				CustomButtons: counts[2][p.ID],
				FeaturedItems: counts[3][p.ID],
				Tracks:        counts[4][p.ID],
				Events:        counts[5][p.ID],
				FullSets:      counts[6][p.ID],
			},
		})
	}
	return out, nil
}

type SlugAvailability struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// CheckSlug reports whether slug could be claimed right now. A badly
// formatted slug is unavailable, not an error.
func (s *PageService) CheckSlug(ctx context.Context, slug string) (SlugAvailability, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return SlugAvailability{}, reason(ErrInvalidSlug, "Slug is required")
	}
	if !pages.ValidSlug(slug) {
		return SlugAvailability{Slug: slug, Available: false, Reason: "Invalid format"}, nil
	}
	taken, err := slugTaken(s.db.WithContext(ctx), slug, "")
	if err != nil {
		return SlugAvailability{}, translate(err)
	}
	return SlugAvailability{Slug: slug, Available: !taken}, nil
}
