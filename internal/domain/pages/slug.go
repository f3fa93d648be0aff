package pages

import (
	"regexp"
	"strings"
)

/*
	Slug helpers
	------------
	- A slug is both the page lookup key and its subdomain label.
	- Format only. Uniqueness is checked against the store by the service.
*/

var (
	slugFormat = regexp.MustCompile(`^[a-z0-9-]{3,30}$`)
	nonSlug    = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash  = regexp.MustCompile(`-+`)
)

// ValidSlug reports whether slug can be used as a subdomain label.
func ValidSlug(slug string) bool {
	return slugFormat.MatchString(slug)
}

// MakeSlug turns a display name into a slug candidate.
// Example: "Nova Beats!" -> "nova-beats"
func MakeSlug(name string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if len(base) > 30 {
		base = strings.TrimRight(base[:30], "-")
	}
	if len(base) < 3 {
		base = "artist"
	}
	return base
}

// BuildPublicURL builds the public page URL from a slug.
// Example: "nova-beats" -> "https://nova-beats.theartistt.com"
func BuildPublicURL(slug, rootDomain string) string {
	return "https://" + slug + "." + rootDomain
}
