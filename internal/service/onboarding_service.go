package service

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"artistpages/internal/domain/pages"
	"artistpages/internal/domain/users"
	"artistpages/internal/infra/blob"
)

type OnboardingTrack struct {
	Name       string `json:"name"`
	Credits    string `json:"credits"`
	ArtworkURL string `json:"artworkUrl"`
	Order      int    `json:"order"`
}

// OnboardingInput is the wizard's final submission.
type OnboardingInput struct {
	Email         string            `json:"email"`
	Name          string            `json:"name"`
	ArtistName    string            `json:"artistName"`
	Subdomain     string            `json:"subdomain"`
	Genre         string            `json:"genre"`
	Bio           string            `json:"bio"`
	ThemeColor    string            `json:"themeColor"`
	ThemeMode     string            `json:"themeMode"`
	CoverPhotoURL string            `json:"coverPhotoUrl"`
	SocialLinks   map[string]string `json:"socialLinks"`
	Tracks        []OnboardingTrack `json:"tracks"`
}

const untitledTrack = "Untitled Track"

// Onboard creates the user when needed and their first, published page.
// Nothing exists yet, so it all happens in one transaction.
func (s *PageService) Onboard(ctx context.Context, in OnboardingInput) (*pages.Page, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	in.ArtistName = strings.TrimSpace(in.ArtistName)
	in.Subdomain = strings.ToLower(strings.TrimSpace(in.Subdomain))

	if in.Email == "" || in.Name == "" || in.ArtistName == "" || in.Subdomain == "" {
		return nil, reason(ErrValidation, "Email, name, artist name and subdomain are required")
	}
	if !pages.ValidSlug(in.Subdomain) {
		return nil, reason(ErrInvalidSlug, "Slug must be 3-30 characters of a-z, 0-9 and -")
	}

	page, err := s.onboardingPage(ctx, in)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user users.User
		err := tx.Where("email = ?", in.Email).First(&user).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = users.User{Email: in.Email, Name: in.Name}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		}

		taken, err := slugTaken(tx, in.Subdomain, "")
		if err != nil {
			return err
		}
		if taken {
			return reason(ErrSlugTaken, "This subdomain is already taken")
		}

		page.UserID = user.ID
		return tx.Create(page).Error
	})
	if err != nil {
		return nil, translate(err)
	}

	s.log.Info("page onboarded",
		zap.String("page_id", page.ID),
		zap.String("slug", page.Slug))
	return s.loadOwned(s.db.WithContext(ctx), page.UserID, page.ID)
}

func (s *PageService) onboardingPage(ctx context.Context, in OnboardingInput) (*pages.Page, error) {
	color := strings.TrimSpace(in.ThemeColor)
	if color == "" {
		color = pages.ThemeCyan
	}
	mode := strings.TrimSpace(in.ThemeMode)
	if mode == "" {
		mode = pages.ModeDark
	}
	if err := pages.ValidateTheme(color, mode); err != nil {
		return nil, translate(err)
	}

	page := &pages.Page{
		Slug:        in.Subdomain,
		DisplayName: in.ArtistName,
		Genre:       strings.TrimSpace(in.Genre),
		Bio:         strings.TrimSpace(in.Bio),
		ThemeColor:  color,
		ThemeMode:   mode,
		IsPublished: true,
	}

	if cover := strings.TrimSpace(in.CoverPhotoURL); cover != "" {
		page.CoverPhotoURL = &cover
		if blob.IsDataURL(cover) {
			page.CoverPhotoURL = nil
			url, err := s.uploadInline(ctx, "cover-"+in.Subdomain, cover)
			if err != nil {
				s.log.Warn("onboarding cover upload failed", zap.String("slug", in.Subdomain), zap.Error(err))
			} else {
				page.CoverPhotoURL = &url
			}
		}
	}

	platforms := make([]string, 0, len(in.SocialLinks))
	for p := range in.SocialLinks {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)
	socials := make([]pages.SocialLinkDraft, 0, len(platforms))
	for _, p := range platforms {
		url := strings.TrimSpace(in.SocialLinks[p])
		if url == "" {
			continue
		}
		socials = append(socials, pages.SocialLinkDraft{Platform: p, URL: url})
	}
	socialRows, err := pages.SocialLinkRecords("", socials)
	if err != nil {
		return nil, translate(err)
	}
	page.SocialLinks = socialRows

	for _, t := range in.Tracks {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			name = untitledTrack
		}
		track := pages.Track{
			Name:       name,
			ArtworkURL: strings.TrimSpace(t.ArtworkURL),
			SortIndex:  t.Order,
		}
		if c := strings.TrimSpace(t.Credits); c != "" {
			track.Credits = &c
		}
		page.Tracks = append(page.Tracks, track)
	}
	return page, nil
}
