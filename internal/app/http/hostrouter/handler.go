package hostrouter

import (
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// DefaultSkipPrefixes are paths that already name their surface. They reach
// the router untouched whatever the host.
var DefaultSkipPrefixes = []string{
	"/api",
	"/blobs",
	"/health",
	"/onboarding",
	"/admin",
	"/marketing",
}

type options struct {
	skip []string
	log  *zap.Logger
}

type Option func(*options)

func WithSkipPrefixes(prefixes ...string) Option {
	return func(o *options) { o.skip = prefixes }
}

func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// Wrap applies Decide in front of next. Rewrites change the request path and
// keep the query; redirects point at an absolute URL.
func Wrap(next http.Handler, opts ...Option) http.Handler {
	o := options{skip: DefaultSkipPrefixes, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if skipped(r.URL.Path, o.skip) {
			next.ServeHTTP(w, r)
			return
		}

		d := Decide(r.Host, r.URL.Path)
		o.log.Debug("host route",
			zap.String("host", r.Host),
			zap.String("path", r.URL.Path),
			zap.Stringer("action", d.Action),
			zap.String("target", d.Path))

		switch d.Action {
		case Rewrite:
			r2 := r.Clone(r.Context())
			u := *r.URL
			u.Path = d.Path
			u.RawPath = ""
			r2.URL = &u
			r2.RequestURI = u.RequestURI()
			next.ServeHTTP(w, r2)
		case Redirect, PermanentRedirect:
			code := http.StatusFound
			if d.Action == PermanentRedirect {
				code = http.StatusMovedPermanently
			}
			http.Redirect(w, r, redirectURL(r, d), code)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func skipped(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

func redirectURL(r *http.Request, d Decision) string {
	host := d.Host
	if host == "" {
		host = r.Host
	}
	u := url.URL{
		Scheme:   scheme(r),
		Host:     host,
		Path:     d.Path,
		RawQuery: r.URL.RawQuery,
	}
	return u.String()
}

func scheme(r *http.Request) string {
	if p := r.Header.Get("X-Forwarded-Proto"); p != "" {
		return strings.ToLower(strings.TrimSpace(strings.Split(p, ",")[0]))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
