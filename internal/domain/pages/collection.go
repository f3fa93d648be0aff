package pages

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// CollectionState tells the synchronizer what to do with one child collection.
type CollectionState int

const (
	// Unset leaves the stored rows untouched.
	Unset CollectionState = iota
	// Clear deletes every stored row.
	Clear
	// Replace deletes every stored row and inserts the submitted ones.
	Replace
)

func (s CollectionState) String() string {
	switch s {
	case Clear:
		return "clear"
	case Replace:
		return "replace"
	default:
		return "unset"
	}
}

// Collection is one child collection of a draft. The zero value is Unset.
//
// JSON: a missing key or null decodes to Unset, [] to Clear and a non-empty
// array to Replace.
type Collection[T any] struct {
	state CollectionState
	rows  []T
}

func UnsetOf[T any]() Collection[T] { return Collection[T]{} }

func ClearOf[T any]() Collection[T] { return Collection[T]{state: Clear} }

// ReplaceWith returns a Replace collection, or Clear when rows is empty.
func ReplaceWith[T any](rows ...T) Collection[T] {
	if len(rows) == 0 {
		return ClearOf[T]()
	}
	out := make([]T, len(rows))
	copy(out, rows)
	return Collection[T]{state: Replace, rows: out}
}

func (c Collection[T]) State() CollectionState { return c.state }

// IsSet reports whether the synchronizer must touch the stored rows.
func (c Collection[T]) IsSet() bool { return c.state != Unset }

// Rows returns a copy of the submitted rows; nil unless the state is Replace.
func (c Collection[T]) Rows() []T {
	if c.state != Replace {
		return nil
	}
	out := make([]T, len(c.rows))
	copy(out, c.rows)
	return out
}

func (c Collection[T]) Len() int { return len(c.rows) }

// IsZero lets `omitzero` drop Unset collections when encoding.
func (c Collection[T]) IsZero() bool { return c.state == Unset }

func (c Collection[T]) MarshalJSON() ([]byte, error) {
	switch c.state {
	case Replace:
		return json.Marshal(c.rows)
	case Clear:
		return []byte("[]"), nil
	default:
		return []byte("null"), nil
	}
}

func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = Collection[T]{}
		return nil
	}
	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	*c = ReplaceWith(rows...)
	return nil
}

// UnmarshalYAML follows the same three-way rule for import files.
func (c *Collection[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null" {
		*c = Collection[T]{}
		return nil
	}
	var rows []T
	if err := value.Decode(&rows); err != nil {
		return err
	}
	*c = ReplaceWith(rows...)
	return nil
}
