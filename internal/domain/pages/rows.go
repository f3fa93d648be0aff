package pages

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError is a rejected draft. Reason is safe to show to the editor.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// DateLayouts are the event date formats the editor and import files use.
var DateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"02.01.2006",
	"02/01/2006",
}

// FutureHorizon bounds event dates. Anything later is treated as a corrupt
// value and replaced with the save date.
const FutureHorizon = 10 * 365 * 24 * time.Hour

// ParseDate tries DateLayouts in order and returns the calendar date, as
// read in the offset it was written in, at UTC midnight.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func clampDate(t, now time.Time) time.Time {
	if t.After(now.Add(FutureHorizon)) {
		y, m, d := now.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return t
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func trimPlatforms(p PlatformURLs) PlatformURLs {
	return PlatformURLs{
		SpotifyURL:      trimPtr(p.SpotifyURL),
		AppleMusicURL:   trimPtr(p.AppleMusicURL),
		BeatportURL:     trimPtr(p.BeatportURL),
		YoutubeURL:      trimPtr(p.YoutubeURL),
		YoutubeMusicURL: trimPtr(p.YoutubeMusicURL),
		SoundcloudURL:   trimPtr(p.SoundcloudURL),
	}
}

func stamp[S any, D any](m *FieldMap, rows []D, set func(*S)) ([]S, error) {
	out := make([]S, 0, len(rows))
	for _, row := range rows {
		rec, err := ToStorage[S](m, row)
		if err != nil {
			return nil, err
		}
		set(&rec)
		out = append(out, rec)
	}
	return out, nil
}

// LinkRecords validates link rows. Missing visibility means visible.
func LinkRecords(pageID string, rows []LinkDraft) ([]Link, error) {
	for i := range rows {
		rows[i].Platform = strings.TrimSpace(rows[i].Platform)
		rows[i].URL = strings.TrimSpace(rows[i].URL)
		if !oneOf(rows[i].Platform, LinkPlatforms) {
			return nil, invalid("unknown link platform %q", rows[i].Platform)
		}
		if rows[i].IsVisible == nil {
			visible := true
			rows[i].IsVisible = &visible
		}
	}
	return stamp(LinkFields, rows, func(l *Link) { l.PageID = pageID })
}

func SocialLinkRecords(pageID string, rows []SocialLinkDraft) ([]SocialLink, error) {
	for i := range rows {
		rows[i].Platform = strings.TrimSpace(rows[i].Platform)
		rows[i].URL = strings.TrimSpace(rows[i].URL)
		if !oneOf(rows[i].Platform, SocialPlatforms) {
			return nil, invalid("unknown social platform %q", rows[i].Platform)
		}
	}
	return stamp(SocialLinkFields, rows, func(s *SocialLink) { s.PageID = pageID })
}

// CustomButtonRecords validates buttons. A blank style means primary.
func CustomButtonRecords(pageID string, rows []CustomButtonDraft) ([]CustomButton, error) {
	for i := range rows {
		rows[i].Text = strings.TrimSpace(rows[i].Text)
		rows[i].URL = strings.TrimSpace(rows[i].URL)
		rows[i].Style = strings.TrimSpace(rows[i].Style)
		if rows[i].Style == "" {
			rows[i].Style = ButtonPrimary
		}
		if !oneOf(rows[i].Style, ButtonStyles) {
			return nil, invalid("unknown button style %q", rows[i].Style)
		}
	}
	return stamp(CustomButtonFields, rows, func(b *CustomButton) { b.PageID = pageID })
}

func FeaturedItemRecords(pageID string, rows []FeaturedItemDraft) ([]FeaturedItem, error) {
	for i := range rows {
		rows[i].Title = strings.TrimSpace(rows[i].Title)
		rows[i].Subtitle = trimPtr(rows[i].Subtitle)
		rows[i].ImageURL = strings.TrimSpace(rows[i].ImageURL)
		rows[i].CtaURL = trimPtr(rows[i].CtaURL)
	}
	return stamp(FeaturedItemFields, rows, func(f *FeaturedItem) { f.PageID = pageID })
}

// TrackRecords drops tracks without a name.
func TrackRecords(pageID string, rows []TrackDraft) ([]Track, error) {
	kept := make([]TrackDraft, 0, len(rows))
	for _, r := range rows {
		if blank(r.Name) {
			continue
		}
		r.Name = strings.TrimSpace(r.Name)
		r.Credits = trimPtr(r.Credits)
		r.ArtworkURL = strings.TrimSpace(r.ArtworkURL)
		r.PlatformURLs = trimPlatforms(r.PlatformURLs)
		kept = append(kept, r)
	}
	return stamp(TrackFields, kept, func(t *Track) { t.PageID = pageID })
}

// EventRecords drops events without a name or a parseable date.
func EventRecords(pageID string, rows []EventDraft, now time.Time) ([]Event, error) {
	kept := make([]EventDraft, 0, len(rows))
	for _, r := range rows {
		if blank(r.Name) {
			continue
		}
		date, ok := ParseDate(r.Date)
		if !ok {
			continue
		}
		r.Name = strings.TrimSpace(r.Name)
		r.Date = clampDate(date, now).Format(time.RFC3339)
		r.Location = trimPtr(r.Location)
		r.URL = trimPtr(r.URL)
		kept = append(kept, r)
	}
	return stamp(EventFields, kept, func(e *Event) { e.PageID = pageID })
}

// FullSetRecords drops sets without a name. An unreadable date is cleared
// rather than rejected since it is optional.
func FullSetRecords(pageID string, rows []FullSetDraft, now time.Time) ([]FullSet, error) {
	kept := make([]FullSetDraft, 0, len(rows))
	for _, r := range rows {
		if blank(r.Name) {
			continue
		}
		r.Name = strings.TrimSpace(r.Name)
		if r.Date != nil {
			if date, ok := ParseDate(*r.Date); ok {
				r.Date = strPtr(clampDate(date, now).Format(time.RFC3339))
			} else {
				r.Date = nil
			}
		}
		r.URL = trimPtr(r.URL)
		r.ThumbnailURL = trimPtr(r.ThumbnailURL)
		r.Location = trimPtr(r.Location)
		r.PlatformURLs = trimPlatforms(r.PlatformURLs)
		kept = append(kept, r)
	}
	return stamp(FullSetFields, kept, func(f *FullSet) { f.PageID = pageID })
}

// ValidateTheme checks the theme enum values.
func ValidateTheme(color, mode string) error {
	if !oneOf(color, ThemeColors) {
		return invalid("unknown theme color %q", color)
	}
	if !oneOf(mode, ThemeModes) {
		return invalid("unknown theme mode %q", mode)
	}
	return nil
}

func ValidateCoverShape(shape string) error {
	if shape != "" && !oneOf(shape, CoverShapes) {
		return invalid("unknown cover photo shape %q", shape)
	}
	return nil
}
