package pages

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCollection_JSONStates(t *testing.T) {
	t.Run("MissingKeyIsUnset", func(t *testing.T) {
		var d Draft
		require.NoError(t, json.Unmarshal([]byte(`{"id":"p1"}`), &d))
		assert.Equal(t, Unset, d.Links.State())
		assert.False(t, d.Links.IsSet())
	})

	t.Run("NullIsUnset", func(t *testing.T) {
		var d Draft
		require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","tracks":null}`), &d))
		assert.Equal(t, Unset, d.Tracks.State())
	})

	t.Run("EmptyArrayIsClear", func(t *testing.T) {
		var d Draft
		require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","events":[]}`), &d))
		assert.Equal(t, Clear, d.Events.State())
		assert.True(t, d.Events.IsSet())
		assert.Empty(t, d.Events.Rows())
	})

	t.Run("RowsAreReplace", func(t *testing.T) {
		var d Draft
		body := `{"id":"p1","links":[{"platform":"spotify","url":"https://s","order":2}]}`
		require.NoError(t, json.Unmarshal([]byte(body), &d))
		require.Equal(t, Replace, d.Links.State())
		rows := d.Links.Rows()
		require.Len(t, rows, 1)
		assert.Equal(t, "spotify", rows[0].Platform)
		assert.Equal(t, 2, rows[0].Order)
	})

	t.Run("BadRowsError", func(t *testing.T) {
		var d Draft
		err := json.Unmarshal([]byte(`{"links":{"platform":"spotify"}}`), &d)
		assert.Error(t, err)
	})
}

func TestCollection_MarshalKeepsState(t *testing.T) {
	d := Draft{
		ID:     "p1",
		Links:  ClearOf[LinkDraft](),
		Tracks: ReplaceWith(TrackDraft{Name: "Ride"}),
	}
	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.JSONEq(t, `[]`, string(fields["links"]))
	assert.Contains(t, string(fields["tracks"]), `"Ride"`)
	_, hasEvents := fields["events"]
	assert.False(t, hasEvents, "unset collections are omitted")

	var back Draft
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, Clear, back.Links.State())
	assert.Equal(t, Replace, back.Tracks.State())
	assert.Equal(t, Unset, back.Events.State())
}

func TestCollection_ReplaceWithNothingIsClear(t *testing.T) {
	c := ReplaceWith[LinkDraft]()
	assert.Equal(t, Clear, c.State())
	assert.Nil(t, c.Rows())
}

func TestCollection_RowsIsACopy(t *testing.T) {
	c := ReplaceWith(LinkDraft{Platform: "spotify"})
	rows := c.Rows()
	rows[0].Platform = "beatport"
	assert.Equal(t, "spotify", c.Rows()[0].Platform)
}

func TestCollection_YAML(t *testing.T) {
	doc := `
id: p1
links: []
tracks:
  - name: Ride
    spotifyUrl: https://open.spotify.com/track/1
`
	var d Draft
	require.NoError(t, yaml.Unmarshal([]byte(doc), &d))
	assert.Equal(t, Clear, d.Links.State())
	require.Equal(t, Replace, d.Tracks.State())
	tr := d.Tracks.Rows()[0]
	assert.Equal(t, "Ride", tr.Name)
	require.NotNil(t, tr.SpotifyURL)
	assert.Equal(t, "https://open.spotify.com/track/1", *tr.SpotifyURL)
	assert.Equal(t, Unset, d.Events.State())
}
