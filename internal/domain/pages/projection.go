package pages

import (
	"bytes"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// View is the public, read-only shape of a published page. Every optional
// string is present and defaults to "".
type View struct {
	ID              string `json:"id"`
	Slug            string `json:"slug"`
	DisplayName     string `json:"displayName"`
	Bio             string `json:"bio"`
	BioHTML         string `json:"bioHtml"`
	Genre           string `json:"genre"`
	ThemeColor      string `json:"themeColor"`
	ThemeMode       string `json:"themeMode"`
	CoverPhotoShape string `json:"coverPhotoShape"`
	CoverPhotoURL   string `json:"coverPhotoUrl"`
	PublicURL       string `json:"publicUrl"`

	Links         []LinkView         `json:"links"`
	SocialLinks   []SocialLinkView   `json:"socialLinks"`
	CustomButtons []CustomButtonView `json:"customButtons"`
	FeaturedItems []FeaturedItemView `json:"featuredItems"`
	Tracks        []TrackView        `json:"tracks"`
	Events        []EventView        `json:"events"`
	FullSets      []FullSetView      `json:"fullSets"`
}

type LinkView struct {
	ID        string `json:"id"`
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	IsVisible bool   `json:"isVisible"`
	Order     int    `json:"order"`
}

type SocialLinkView struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type CustomButtonView struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	URL   string `json:"url"`
	Style string `json:"style"`
	Order int    `json:"order"`
}

type FeaturedItemView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
	CtaURL   string `json:"ctaUrl"`
	Order    int    `json:"order"`
}

type PlatformLinks struct {
	SpotifyURL      string `json:"spotifyUrl"`
	AppleMusicURL   string `json:"appleMusicUrl"`
	BeatportURL     string `json:"beatportUrl"`
	YoutubeURL      string `json:"youtubeUrl"`
	YoutubeMusicURL string `json:"youtubeMusicUrl"`
	SoundcloudURL   string `json:"soundcloudUrl"`
}

type TrackView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Credits    string `json:"credits"`
	ArtworkURL string `json:"artworkUrl"`
	PlatformLinks
	Order int `json:"order"`
}

type EventView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Location string `json:"location"`
	URL      string `json:"url"`
	Order    int    `json:"order"`
}

type FullSetView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Date         string `json:"date"`
	Location     string `json:"location"`
	PlatformLinks
	Order int `json:"order"`
}

// ViewDateLayout is how event and set dates are shown publicly.
const ViewDateLayout = "02/01/2006"

type ProjectOptions struct {
	RootDomain string
}

var (
	markdown  = goldmark.New()
	bioPolicy = bluemonday.UGCPolicy()
)

// Project shapes a stored page for the public surface. Children are
// expected in sort_index order, as Load returns them.
func Project(p Page, opts ProjectOptions) (View, error) {
	v := View{
		ID:              p.ID,
		Slug:            p.Slug,
		DisplayName:     p.DisplayName,
		Bio:             p.Bio,
		BioHTML:         renderBio(p.Bio),
		Genre:           p.Genre,
		ThemeColor:      p.ThemeColor,
		ThemeMode:       p.ThemeMode,
		CoverPhotoShape: p.CoverPhotoShape,
	}
	if p.CoverPhotoURL != nil {
		v.CoverPhotoURL = *p.CoverPhotoURL
	}
	if opts.RootDomain != "" {
		v.PublicURL = BuildPublicURL(p.Slug, opts.RootDomain)
	}

	visible := make([]Link, 0, len(p.Links))
	for _, l := range p.Links {
		if l.IsVisible {
			visible = append(visible, l)
		}
	}
	socials := make([]SocialLink, len(p.SocialLinks))
	copy(socials, p.SocialLinks)
	SortSocialLinks(socials)

	var err error
	if v.Links, err = toDrafts[LinkView](LinkFields, visible); err != nil {
		return View{}, err
	}
	if v.SocialLinks, err = toDrafts[SocialLinkView](SocialLinkFields, socials); err != nil {
		return View{}, err
	}
	if v.CustomButtons, err = toDrafts[CustomButtonView](CustomButtonFields, p.CustomButtons); err != nil {
		return View{}, err
	}
	if v.FeaturedItems, err = toDrafts[FeaturedItemView](FeaturedItemFields, p.FeaturedItems); err != nil {
		return View{}, err
	}
	if v.Tracks, err = toDrafts[TrackView](TrackFields, p.Tracks); err != nil {
		return View{}, err
	}
	if v.Events, err = toDrafts[EventView](EventFields, p.Events); err != nil {
		return View{}, err
	}
	for i := range v.Events {
		v.Events[i].Date = formatViewDate(p.Events[i].Date)
	}
	if v.FullSets, err = toDrafts[FullSetView](FullSetFields, p.FullSets); err != nil {
		return View{}, err
	}
	for i := range v.FullSets {
		v.FullSets[i].Date = ""
		if d := p.FullSets[i].Date; d != nil {
			v.FullSets[i].Date = formatViewDate(*d)
		}
	}
	return v, nil
}

func formatViewDate(t time.Time) string {
	return t.UTC().Format(ViewDateLayout)
}

func renderBio(bio string) string {
	if bio == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(bio), &buf); err != nil {
		return bioPolicy.Sanitize(bio)
	}
	return string(bioPolicy.SanitizeBytes(buf.Bytes()))
}
