package pages

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	venue := "Tresor"
	setDate := time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC)
	p := Page{
		ID:          "p1",
		Slug:        "nova",
		DisplayName: "Nova",
		Bio:         "**Techno** <script>alert(1)</script>",
		ThemeColor:  ThemeGreen,
		ThemeMode:   ModeLight,
		Links: []Link{
			{ID: "l1", Platform: "spotify", URL: "https://s", IsVisible: true, SortIndex: 0},
			{ID: "l2", Platform: "beatport", URL: "https://b", IsVisible: false, SortIndex: 1},
		},
		SocialLinks: []SocialLink{
			{ID: "s1", Platform: SocialTikTok, URL: "https://t"},
			{ID: "s2", Platform: SocialInstagram, URL: "https://i"},
			{ID: "s3", Platform: SocialFacebook, URL: "https://f"},
		},
		FeaturedItems: []FeaturedItem{{ID: "f1", Title: "New EP", ImageURL: "https://img"}},
		Events: []Event{
			{ID: "e1", Title: "Club Night", Date: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), Location: &venue},
		},
		FullSets: []FullSet{
			{ID: "fs1", Title: "Dated", Date: &setDate},
			{ID: "fs2", Title: "Undated"},
		},
		Tracks: []Track{{ID: "t1", Name: "Ride"}},
	}

	v, err := Project(p, ProjectOptions{RootDomain: "theartistt.com"})
	require.NoError(t, err)

	assert.Equal(t, "https://nova.theartistt.com", v.PublicURL)
	assert.Equal(t, "", v.CoverPhotoURL)
	assert.Contains(t, v.BioHTML, "<strong>Techno</strong>")
	assert.NotContains(t, v.BioHTML, "<script>")

	require.Len(t, v.Links, 1, "hidden links are not public")
	assert.Equal(t, "spotify", v.Links[0].Platform)

	require.Len(t, v.SocialLinks, 3)
	assert.Equal(t, []string{SocialInstagram, SocialFacebook, SocialTikTok},
		[]string{v.SocialLinks[0].Platform, v.SocialLinks[1].Platform, v.SocialLinks[2].Platform})
	assert.Equal(t, SocialTikTok, p.SocialLinks[0].Platform, "input is not reordered")

	assert.Equal(t, "", v.FeaturedItems[0].Subtitle)
	assert.Equal(t, "", v.FeaturedItems[0].CtaURL)

	require.Len(t, v.Events, 1)
	assert.Equal(t, "Club Night", v.Events[0].Name)
	assert.Equal(t, "07/06/2025", v.Events[0].Date)
	assert.Equal(t, "Tresor", v.Events[0].Location)
	assert.Equal(t, "", v.Events[0].URL)

	assert.Equal(t, "09/02/2024", v.FullSets[0].Date)
	assert.Equal(t, "", v.FullSets[1].Date)
	assert.Equal(t, "Dated", v.FullSets[0].Name)

	assert.Equal(t, "", v.Tracks[0].Credits)
	assert.Equal(t, "", v.Tracks[0].SpotifyURL)
}

func TestProject_EmptyPageHasEmptyLists(t *testing.T) {
	v, err := Project(Page{ID: "p1", Slug: "nova"}, ProjectOptions{})
	require.NoError(t, err)
	assert.NotNil(t, v.Links)
	assert.NotNil(t, v.Events)
	assert.Empty(t, v.BioHTML)
	assert.Empty(t, v.PublicURL)
}

func TestFromPage_EditorVocabulary(t *testing.T) {
	d, err := FromPage(Page{
		ID:   "p1",
		Slug: "nova",
		Events: []Event{
			{ID: "e1", Title: "Club Night", Date: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), SortIndex: 2},
		},
		SocialLinks: []SocialLink{
			{Platform: SocialFacebook, URL: "https://f"},
			{Platform: SocialInstagram, URL: "https://i"},
		},
	})
	require.NoError(t, err)

	require.Equal(t, Replace, d.Events.State())
	ev := d.Events.Rows()[0]
	assert.Equal(t, "Club Night", ev.Name)
	assert.Equal(t, "2025-06-07", ev.Date)
	assert.Equal(t, 2, ev.Order)

	assert.Equal(t, SocialInstagram, d.SocialLinks.Rows()[0].Platform)
	assert.Equal(t, Clear, d.Tracks.State(), "every collection comes back set")
	require.NotNil(t, d.CoverPhotoURL)
	assert.Equal(t, "", *d.CoverPhotoURL)
}
