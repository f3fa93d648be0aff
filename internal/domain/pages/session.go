package pages

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Session is one editing session over a page. It owns two snapshots: the
// last saved draft and the working draft the editor mutates. Discard and
// Dirty are pure functions of the two.
type Session struct {
	saved   Draft
	working Draft
}

// NewSession starts a session from a loaded draft.
func NewSession(saved Draft) (*Session, error) {
	s, err := cloneDraft(saved)
	if err != nil {
		return nil, err
	}
	w, err := cloneDraft(saved)
	if err != nil {
		return nil, err
	}
	return &Session{saved: s, working: w}, nil
}

// Edit applies fn to the working draft.
func (s *Session) Edit(fn func(d *Draft)) {
	fn(&s.working)
}

// Working returns a copy of the working draft.
func (s *Session) Working() (Draft, error) { return cloneDraft(s.working) }

// Saved returns a copy of the last saved draft.
func (s *Session) Saved() (Draft, error) { return cloneDraft(s.saved) }

// Dirty reports whether the working draft differs from the saved one.
func (s *Session) Dirty() bool {
	a, errA := json.Marshal(s.saved)
	b, errB := json.Marshal(s.working)
	if errA != nil || errB != nil {
		return true
	}
	return !bytes.Equal(a, b)
}

// Discard resets the working draft to the last saved snapshot.
func (s *Session) Discard() error {
	w, err := cloneDraft(s.saved)
	if err != nil {
		return err
	}
	s.working = w
	return nil
}

// Payload is the draft to submit on save.
func (s *Session) Payload() (Draft, error) { return cloneDraft(s.working) }

// MarkSaved records what the store returned as the new saved snapshot and
// makes it the working draft too.
func (s *Session) MarkSaved(saved Draft) error {
	a, err := cloneDraft(saved)
	if err != nil {
		return err
	}
	b, err := cloneDraft(saved)
	if err != nil {
		return err
	}
	s.saved, s.working = a, b
	return nil
}

// cloneDraft deep-copies through JSON. Collection states survive the trip:
// Unset is omitted, Clear encodes as [] and Replace as its rows.
func cloneDraft(d Draft) (Draft, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return Draft{}, errors.Wrap(err, "clone draft")
	}
	var out Draft
	if err := json.Unmarshal(raw, &out); err != nil {
		return Draft{}, errors.Wrap(err, "clone draft")
	}
	return out, nil
}
