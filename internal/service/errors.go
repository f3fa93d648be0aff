package service

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"artistpages/internal/domain/pages"
)

var (
	// ErrNotFound covers a missing user, page or slug, and a page that
	// belongs to someone else. Callers must not tell these apart.
	ErrNotFound    = errors.New("not found")
	ErrInvalidSlug = errors.New("invalid slug")
	ErrSlugTaken   = errors.New("slug already taken")
	ErrValidation  = errors.New("validation failed")
)

// ReasonError carries a message that is safe to return to the client.
type ReasonError struct {
	Kind   error
	Reason string
}

func (e *ReasonError) Error() string { return e.Reason }
func (e *ReasonError) Unwrap() error { return e.Kind }

func reason(kind error, msg string) error {
	return &ReasonError{Kind: kind, Reason: msg}
}

// Reason returns the client-facing message for a 400 error.
func Reason(err error) string {
	var re *ReasonError
	if errors.As(err, &re) {
		return re.Reason
	}
	var ve *pages.ValidationError
	if errors.As(err, &ve) {
		return ve.Reason
	}
	return err.Error()
}

// IsClientError reports whether err is one of the 400 kinds.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidSlug) || errors.Is(err, ErrSlugTaken) || errors.Is(err, ErrValidation)
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	var ve *pages.ValidationError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return reason(ErrSlugTaken, "This subdomain is already taken")
	case errors.As(err, &ve):
		return reason(ErrValidation, ve.Reason)
	case errors.Is(err, ErrNotFound), IsClientError(err):
		return err
	}
	return errors.WithStack(err)
}
