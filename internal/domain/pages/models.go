package pages

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Page is the root of one artist's landing page. Every child row below
// belongs to exactly one page and goes away with it.
type Page struct {
	ID     string `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"-"`

	Slug            string  `gorm:"not null;uniqueIndex" json:"slug"`
	DisplayName     string  `gorm:"not null" json:"display_name"`
	Bio             string  `gorm:"not null;default:''" json:"bio"`
	Genre           string  `gorm:"not null;default:''" json:"genre"`
	ThemeColor      string  `gorm:"not null;default:'cyan'" json:"theme_color"`
	ThemeMode       string  `gorm:"not null;default:'dark'" json:"theme_mode"`
	CoverPhotoShape string  `gorm:"not null;default:''" json:"cover_photo_shape"`
	CoverPhotoURL   *string `json:"cover_photo_url"`
	IsPublished     bool    `gorm:"not null;default:false" json:"is_published"`

	Links         []Link         `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE;" json:"links,omitempty"`
	SocialLinks   []SocialLink   `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE;" json:"social_links,omitempty"`
	CustomButtons []CustomButton `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE;" json:"custom_buttons,omitempty"`
	FeaturedItems []FeaturedItem `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE;" json:"featured_items,omitempty"`
	Tracks        []Track        `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE;" json:"tracks,omitempty"`
	Events        []Event        `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE;" json:"events,omitempty"`
	FullSets      []FullSet      `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE;" json:"full_sets,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Link struct {
	ID        string `gorm:"type:varchar(36);primaryKey" json:"id"`
	PageID    string `gorm:"type:varchar(36);not null;index" json:"page_id"`
	Platform  string `gorm:"not null" json:"platform"`
	URL       string `gorm:"not null" json:"url"`
	IsVisible bool   `gorm:"not null" json:"is_visible"`
	SortIndex int    `gorm:"not null;default:0;index" json:"sort_index"`

	CreatedAt time.Time `json:"created_at"`
}

// SocialLink has no stored order; see SortSocialLinks.
type SocialLink struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	PageID   string `gorm:"type:varchar(36);not null;index" json:"page_id"`
	Platform string `gorm:"not null" json:"platform"`
	URL      string `gorm:"not null" json:"url"`

	CreatedAt time.Time `json:"created_at"`
}

type CustomButton struct {
	ID        string `gorm:"type:varchar(36);primaryKey" json:"id"`
	PageID    string `gorm:"type:varchar(36);not null;index" json:"page_id"`
	Text      string `gorm:"not null" json:"text"`
	URL       string `gorm:"not null" json:"url"`
	Style     string `gorm:"not null;default:'primary'" json:"style"`
	SortIndex int    `gorm:"not null;default:0;index" json:"sort_index"`

	CreatedAt time.Time `json:"created_at"`
}

type FeaturedItem struct {
	ID        string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	PageID    string  `gorm:"type:varchar(36);not null;index" json:"page_id"`
	Title     string  `gorm:"not null" json:"title"`
	Subtitle  *string `json:"subtitle"`
	ImageURL  string  `gorm:"not null;default:''" json:"image_url"`
	CtaURL    *string `json:"cta_url"`
	SortIndex int     `gorm:"not null;default:0;index" json:"sort_index"`

	CreatedAt time.Time `json:"created_at"`
}

type Track struct {
	ID              string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	PageID          string  `gorm:"type:varchar(36);not null;index" json:"page_id"`
	Name            string  `gorm:"not null" json:"name"`
	Credits         *string `json:"credits"`
	ArtworkURL      string  `gorm:"not null;default:''" json:"artwork_url"`
	SpotifyURL      *string `json:"spotify_url"`
	AppleMusicURL   *string `json:"apple_music_url"`
	BeatportURL     *string `json:"beatport_url"`
	YoutubeURL      *string `json:"youtube_url"`
	YoutubeMusicURL *string `json:"youtube_music_url"`
	SoundcloudURL   *string `json:"soundcloud_url"`
	SortIndex       int     `gorm:"not null;default:0;index" json:"sort_index"`

	CreatedAt time.Time `json:"created_at"`
}

type Event struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	PageID    string    `gorm:"type:varchar(36);not null;index" json:"page_id"`
	Title     string    `gorm:"not null" json:"title"`
	Date      time.Time `gorm:"not null" json:"date"`
	Location  *string   `json:"location"`
	URL       *string   `json:"url"`
	SortIndex int       `gorm:"not null;default:0;index" json:"sort_index"`

	CreatedAt time.Time `json:"created_at"`
}

type FullSet struct {
	ID              string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	PageID          string     `gorm:"type:varchar(36);not null;index" json:"page_id"`
	Title           string     `gorm:"not null" json:"title"`
	URL             *string    `json:"url"`
	ThumbnailURL    *string    `json:"thumbnail_url"`
	Date            *time.Time `json:"date"`
	Location        *string    `json:"location"`
	SpotifyURL      *string    `json:"spotify_url"`
	AppleMusicURL   *string    `json:"apple_music_url"`
	BeatportURL     *string    `json:"beatport_url"`
	YoutubeURL      *string    `json:"youtube_url"`
	YoutubeMusicURL *string    `json:"youtube_music_url"`
	SoundcloudURL   *string    `json:"soundcloud_url"`
	SortIndex       int        `gorm:"not null;default:0;index" json:"sort_index"`

	CreatedAt time.Time `json:"created_at"`
}

// Models lists the aggregate tables for AutoMigrate, parents first.
func Models() []interface{} {
	return []interface{}{
		&Page{},
		&Link{},
		&SocialLink{},
		&CustomButton{},
		&FeaturedItem{},
		&Track{},
		&Event{},
		&FullSet{},
	}
}

func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (p *Page) BeforeCreate(*gorm.DB) error         { newID(&p.ID); return nil }
func (l *Link) BeforeCreate(*gorm.DB) error         { newID(&l.ID); return nil }
func (s *SocialLink) BeforeCreate(*gorm.DB) error   { newID(&s.ID); return nil }
func (b *CustomButton) BeforeCreate(*gorm.DB) error { newID(&b.ID); return nil }
func (f *FeaturedItem) BeforeCreate(*gorm.DB) error { newID(&f.ID); return nil }
func (t *Track) BeforeCreate(*gorm.DB) error        { newID(&t.ID); return nil }
func (e *Event) BeforeCreate(*gorm.DB) error        { newID(&e.ID); return nil }
func (f *FullSet) BeforeCreate(*gorm.DB) error      { newID(&f.ID); return nil }
