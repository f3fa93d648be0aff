package blob

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/pkg/errors"
	_ "golang.org/x/image/webp"
)

// Inline is a decoded data: URL image.
type Inline struct {
	ContentType string
	Ext         string
	Data        []byte
	Width       int
	Height      int
}

var ErrNotImage = errors.New("blob: payload is not a supported image")

// IsDataURL reports whether s is an inline payload rather than a hosted URL.
func IsDataURL(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "data:")
}

// ParseDataURL decodes data:<mime>;base64,<payload>. Only png, jpeg, gif
// and webp are accepted, and the bytes must decode as that image.
func ParseDataURL(s string) (*Inline, error) {
	s = strings.TrimSpace(s)
	if !IsDataURL(s) {
		return nil, errors.New("blob: not a data url")
	}
	header, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !ok {
		return nil, errors.New("blob: data url has no payload")
	}
	mime, params, _ := strings.Cut(header, ";")
	if !strings.Contains(params, "base64") {
		return nil, errors.New("blob: data url is not base64")
	}
	ext := extensionFor(strings.ToLower(mime))
	if ext == ".bin" {
		return nil, ErrNotImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Wrap(err, "blob: decode base64")
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ErrNotImage
	}
	if extensionFor("image/"+format) != ext {
		return nil, errors.Errorf("blob: payload is %s, header says %s", format, mime)
	}

	return &Inline{
		ContentType: strings.ToLower(mime),
		Ext:         ext,
		Data:        data,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}
