package pages

import (
	"encoding/json"
	"fmt"
)

// FieldPair maps one editor (draft) key to one storage key.
type FieldPair struct {
	Draft   string
	Storage string
}

// FieldMap is the single rename table between the two vocabularies of one
// child entity. Both conversion directions walk the same table; keys that
// are not listed are dropped. Row ids only travel storage -> draft, since
// a save always recreates rows.
type FieldMap struct {
	Entity string
	Pairs  []FieldPair

	toStorage map[string]string
	toDraft   map[string]string
}

func newFieldMap(entity string, pairs ...FieldPair) *FieldMap {
	m := &FieldMap{
		Entity:    entity,
		Pairs:     pairs,
		toStorage: make(map[string]string, len(pairs)),
		toDraft:   make(map[string]string, len(pairs)+1),
	}
	for _, p := range pairs {
		m.toStorage[p.Draft] = p.Storage
		m.toDraft[p.Storage] = p.Draft
	}
	m.toDraft["id"] = "id"
	return m
}

func (m *FieldMap) StorageKey(draftKey string) (string, bool) {
	k, ok := m.toStorage[draftKey]
	return k, ok
}

func (m *FieldMap) DraftKey(storageKey string) (string, bool) {
	k, ok := m.toDraft[storageKey]
	return k, ok
}

func same(key string) FieldPair { return FieldPair{Draft: key, Storage: key} }

var orderPair = FieldPair{Draft: "order", Storage: "sort_index"}

var platformPairs = []FieldPair{
	{Draft: "spotifyUrl", Storage: "spotify_url"},
	{Draft: "appleMusicUrl", Storage: "apple_music_url"},
	{Draft: "beatportUrl", Storage: "beatport_url"},
	{Draft: "youtubeUrl", Storage: "youtube_url"},
	{Draft: "youtubeMusicUrl", Storage: "youtube_music_url"},
	{Draft: "soundcloudUrl", Storage: "soundcloud_url"},
}

var (
	LinkFields = newFieldMap("link",
		same("platform"),
		same("url"),
		FieldPair{Draft: "isVisible", Storage: "is_visible"},
		orderPair,
	)

	SocialLinkFields = newFieldMap("social_link",
		same("platform"),
		same("url"),
	)

	CustomButtonFields = newFieldMap("custom_button",
		same("text"),
		same("url"),
		same("style"),
		orderPair,
	)

	FeaturedItemFields = newFieldMap("featured_item",
		same("title"),
		same("subtitle"),
		FieldPair{Draft: "imageUrl", Storage: "image_url"},
		FieldPair{Draft: "ctaUrl", Storage: "cta_url"},
		orderPair,
	)

	TrackFields = newFieldMap("track", append([]FieldPair{
		same("name"),
		same("credits"),
		FieldPair{Draft: "artworkUrl", Storage: "artwork_url"},
		orderPair,
	}, platformPairs...)...)

	EventFields = newFieldMap("event",
		FieldPair{Draft: "name", Storage: "title"},
		same("date"),
		same("location"),
		same("url"),
		orderPair,
	)

	FullSetFields = newFieldMap("full_set", append([]FieldPair{
		FieldPair{Draft: "name", Storage: "title"},
		same("url"),
		FieldPair{Draft: "thumbnailUrl", Storage: "thumbnail_url"},
		same("date"),
		same("location"),
		orderPair,
	}, platformPairs...)...)
)

// FieldMaps returns every entity table.
func FieldMaps() []*FieldMap {
	return []*FieldMap{
		LinkFields,
		SocialLinkFields,
		CustomButtonFields,
		FeaturedItemFields,
		TrackFields,
		EventFields,
		FullSetFields,
	}
}

// ToStorage converts a draft row into its storage record.
func ToStorage[S any](m *FieldMap, draftRow any) (S, error) {
	return rename[S](m, draftRow, m.StorageKey)
}

// ToDraft converts a storage record into its draft row.
func ToDraft[D any](m *FieldMap, record any) (D, error) {
	return rename[D](m, record, m.DraftKey)
}

func rename[T any](m *FieldMap, src any, key func(string) (string, bool)) (T, error) {
	var out T

	raw, err := json.Marshal(src)
	if err != nil {
		return out, fmt.Errorf("%s: encode: %w", m.Entity, err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return out, fmt.Errorf("%s: decode fields: %w", m.Entity, err)
	}

	renamed := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		if nk, ok := key(k); ok {
			renamed[nk] = v
		}
	}

	raw, err = json.Marshal(renamed)
	if err != nil {
		return out, fmt.Errorf("%s: encode renamed: %w", m.Entity, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%s: decode renamed: %w", m.Entity, err)
	}
	return out, nil
}
