package pages

import "sort"

const (
	ThemeCyan   = "cyan"
	ThemePink   = "pink"
	ThemePurple = "purple"
	ThemeOrange = "orange"
	ThemeGreen  = "green"

	ModeDark  = "dark"
	ModeLight = "light"

	ButtonPrimary   = "primary"
	ButtonSecondary = "secondary"

	SocialInstagram = "instagram"
	SocialFacebook  = "facebook"
	SocialTikTok    = "tiktok"
)

var (
	ThemeColors  = []string{ThemeCyan, ThemePink, ThemePurple, ThemeOrange, ThemeGreen}
	ThemeModes   = []string{ModeDark, ModeLight}
	ButtonStyles = []string{ButtonPrimary, ButtonSecondary}
	CoverShapes  = []string{"triangle", "starburst", "square"}

	// LinkPlatforms are the streaming services a Link may point at.
	LinkPlatforms = []string{"spotify", "apple-music", "soundcloud", "beatport", "youtube", "youtube-music"}

	// SocialPlatforms doubles as the fixed render priority.
	SocialPlatforms = []string{SocialInstagram, SocialFacebook, SocialTikTok}
)

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func socialRank(platform string) int {
	for i, p := range SocialPlatforms {
		if p == platform {
			return i
		}
	}
	return len(SocialPlatforms)
}

// SortSocialLinks puts social links in platform priority order regardless
// of how they were inserted.
func SortSocialLinks(links []SocialLink) {
	sort.SliceStable(links, func(i, j int) bool {
		return socialRank(links[i].Platform) < socialRank(links[j].Platform)
	})
}
