package pages

import (
	"time"
)

// Draft is a page in the editor's vocabulary. It is what the admin editor
// submits on save and what it receives on load.
//
// Root fields left nil (or blank for the required strings) keep their
// stored value. IsPublished is always written.
type Draft struct {
	ID              string  `json:"id" yaml:"id"`
	Slug            string  `json:"slug" yaml:"slug"`
	DisplayName     string  `json:"displayName" yaml:"displayName"`
	Bio             *string `json:"bio,omitempty" yaml:"bio,omitempty"`
	Genre           *string `json:"genre,omitempty" yaml:"genre,omitempty"`
	ThemeColor      string  `json:"themeColor" yaml:"themeColor"`
	ThemeMode       string  `json:"themeMode" yaml:"themeMode"`
	CoverPhotoShape *string `json:"coverPhotoShape,omitempty" yaml:"coverPhotoShape,omitempty"`
	CoverPhotoURL   *string `json:"coverPhotoUrl,omitempty" yaml:"coverPhotoUrl,omitempty"`
	IsPublished     bool    `json:"isPublished" yaml:"isPublished"`

	Links         Collection[LinkDraft]         `json:"links,omitzero" yaml:"links,omitempty"`
	SocialLinks   Collection[SocialLinkDraft]   `json:"socialLinks,omitzero" yaml:"socialLinks,omitempty"`
	CustomButtons Collection[CustomButtonDraft] `json:"customButtons,omitzero" yaml:"customButtons,omitempty"`
	FeaturedItems Collection[FeaturedItemDraft] `json:"featuredItems,omitzero" yaml:"featuredItems,omitempty"`
	Tracks        Collection[TrackDraft]        `json:"tracks,omitzero" yaml:"tracks,omitempty"`
	Events        Collection[EventDraft]        `json:"events,omitzero" yaml:"events,omitempty"`
	FullSets      Collection[FullSetDraft]      `json:"fullSets,omitzero" yaml:"fullSets,omitempty"`
}

type LinkDraft struct {
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
	Platform  string `json:"platform" yaml:"platform"`
	URL       string `json:"url" yaml:"url"`
	IsVisible *bool  `json:"isVisible,omitempty" yaml:"isVisible,omitempty"`
	Order     int    `json:"order" yaml:"order"`
}

type SocialLinkDraft struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
}

type CustomButtonDraft struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Text  string `json:"text" yaml:"text"`
	URL   string `json:"url" yaml:"url"`
	Style string `json:"style" yaml:"style"`
	Order int    `json:"order" yaml:"order"`
}

type FeaturedItemDraft struct {
	ID       string  `json:"id,omitempty" yaml:"id,omitempty"`
	Title    string  `json:"title" yaml:"title"`
	Subtitle *string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	ImageURL string  `json:"imageUrl" yaml:"imageUrl"`
	CtaURL   *string `json:"ctaUrl,omitempty" yaml:"ctaUrl,omitempty"`
	Order    int     `json:"order" yaml:"order"`
}

// PlatformURLs are the per-service links a track or full set may carry.
type PlatformURLs struct {
	SpotifyURL      *string `json:"spotifyUrl,omitempty" yaml:"spotifyUrl,omitempty"`
	AppleMusicURL   *string `json:"appleMusicUrl,omitempty" yaml:"appleMusicUrl,omitempty"`
	BeatportURL     *string `json:"beatportUrl,omitempty" yaml:"beatportUrl,omitempty"`
	YoutubeURL      *string `json:"youtubeUrl,omitempty" yaml:"youtubeUrl,omitempty"`
	YoutubeMusicURL *string `json:"youtubeMusicUrl,omitempty" yaml:"youtubeMusicUrl,omitempty"`
	SoundcloudURL   *string `json:"soundcloudUrl,omitempty" yaml:"soundcloudUrl,omitempty"`
}

type TrackDraft struct {
	ID           string  `json:"id,omitempty" yaml:"id,omitempty"`
	Name         string  `json:"name" yaml:"name"`
	Credits      *string `json:"credits,omitempty" yaml:"credits,omitempty"`
	ArtworkURL   string  `json:"artworkUrl" yaml:"artworkUrl"`
	PlatformURLs `yaml:",inline"`
	Order        int `json:"order" yaml:"order"`
}

// EventDraft.Date accepts the layouts in DateLayouts.
type EventDraft struct {
	ID       string  `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string  `json:"name" yaml:"name"`
	Date     string  `json:"date" yaml:"date"`
	Location *string `json:"location,omitempty" yaml:"location,omitempty"`
	URL      *string `json:"url,omitempty" yaml:"url,omitempty"`
	Order    int     `json:"order" yaml:"order"`
}

type FullSetDraft struct {
	ID           string  `json:"id,omitempty" yaml:"id,omitempty"`
	Name         string  `json:"name" yaml:"name"`
	URL          *string `json:"url,omitempty" yaml:"url,omitempty"`
	ThumbnailURL *string `json:"thumbnailUrl,omitempty" yaml:"thumbnailUrl,omitempty"`
	Date         *string `json:"date,omitempty" yaml:"date,omitempty"`
	Location     *string `json:"location,omitempty" yaml:"location,omitempty"`
	PlatformURLs `yaml:",inline"`
	Order        int `json:"order" yaml:"order"`
}

// FromPage shapes a stored page into the editor vocabulary. Every
// collection comes back set, so saving the result unchanged is a no-op.
func FromPage(p Page) (Draft, error) {
	d := Draft{
		ID:              p.ID,
		Slug:            p.Slug,
		DisplayName:     p.DisplayName,
		Bio:             strPtr(p.Bio),
		Genre:           strPtr(p.Genre),
		ThemeColor:      p.ThemeColor,
		ThemeMode:       p.ThemeMode,
		CoverPhotoShape: strPtr(p.CoverPhotoShape),
		CoverPhotoURL:   p.CoverPhotoURL,
		IsPublished:     p.IsPublished,
	}
	if d.CoverPhotoURL == nil {
		d.CoverPhotoURL = strPtr("")
	}

	links, err := toDrafts[LinkDraft](LinkFields, p.Links)
	if err != nil {
		return Draft{}, err
	}
	socials := make([]SocialLink, len(p.SocialLinks))
	copy(socials, p.SocialLinks)
	SortSocialLinks(socials)
	socialDrafts, err := toDrafts[SocialLinkDraft](SocialLinkFields, socials)
	if err != nil {
		return Draft{}, err
	}
	buttons, err := toDrafts[CustomButtonDraft](CustomButtonFields, p.CustomButtons)
	if err != nil {
		return Draft{}, err
	}
	featured, err := toDrafts[FeaturedItemDraft](FeaturedItemFields, p.FeaturedItems)
	if err != nil {
		return Draft{}, err
	}
	tracks, err := toDrafts[TrackDraft](TrackFields, p.Tracks)
	if err != nil {
		return Draft{}, err
	}
	events, err := toDrafts[EventDraft](EventFields, p.Events)
	if err != nil {
		return Draft{}, err
	}
	for i := range events {
		events[i].Date = p.Events[i].Date.UTC().Format(time.DateOnly)
	}
	sets, err := toDrafts[FullSetDraft](FullSetFields, p.FullSets)
	if err != nil {
		return Draft{}, err
	}
	for i := range sets {
		if p.FullSets[i].Date != nil {
			sets[i].Date = strPtr(p.FullSets[i].Date.UTC().Format(time.DateOnly))
		}
	}

	d.Links = ReplaceWith(links...)
	d.SocialLinks = ReplaceWith(socialDrafts...)
	d.CustomButtons = ReplaceWith(buttons...)
	d.FeaturedItems = ReplaceWith(featured...)
	d.Tracks = ReplaceWith(tracks...)
	d.Events = ReplaceWith(events...)
	d.FullSets = ReplaceWith(sets...)
	return d, nil
}

func toDrafts[D any, S any](m *FieldMap, records []S) ([]D, error) {
	out := make([]D, 0, len(records))
	for _, r := range records {
		d, err := ToDraft[D](m, r)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func strPtr(s string) *string { return &s }
