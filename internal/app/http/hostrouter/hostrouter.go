// Package hostrouter maps the request host onto an internal path before
// the router sees it. Tenants live on subdomains of the root domain:
//
//	admin.<root>/        -> 302 /admin
//	www.<root>/x         -> 301 <root>/x
//	<root>/              -> /marketing (rewrite)
//	<slug>.<root>/...    -> /artist/<slug> (rewrite)
package hostrouter

import (
	"net"
	"regexp"
	"strings"
)

type Action int

const (
	PassThrough Action = iota
	Rewrite
	Redirect
	PermanentRedirect
)

func (a Action) String() string {
	switch a {
	case Rewrite:
		return "rewrite"
	case Redirect:
		return "redirect"
	case PermanentRedirect:
		return "permanent_redirect"
	default:
		return "pass_through"
	}
}

// Decision is what to do with one request. Path is the rewrite or redirect
// target. Host is only set when a redirect changes host.
type Decision struct {
	Action Action
	Host   string
	Path   string
}

const (
	AdminLabel = "admin"
	WWWLabel   = "www"

	AdminPath     = "/admin"
	MarketingPath = "/marketing"
	ArtistPrefix  = "/artist/"
)

var labelFormat = regexp.MustCompile(`^[a-z0-9-]+$`)

// normalizeHost drops the port and a trailing dot and lowercases.
func normalizeHost(host string) string {
	host = strings.TrimSpace(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimPrefix(strings.TrimSuffix(host, "]"), "[")
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	return host
}

// Subdomain extracts the tenant label from host.
//
// IP literals and bare localhost have none. For local development
// "<label>.localhost" yields label. Otherwise the host needs at least three
// dot-separated parts and the label is the first one.
func Subdomain(host string) (string, bool) {
	host = normalizeHost(host)
	if host == "" || host == "localhost" || net.ParseIP(host) != nil {
		return "", false
	}

	parts := strings.Split(host, ".")
	var label string
	switch {
	case len(parts) == 2 && parts[1] == "localhost":
		label = parts[0]
	case len(parts) >= 3:
		label = parts[0]
	default:
		return "", false
	}

	if !labelFormat.MatchString(label) {
		return "", false
	}
	return label, true
}

// Decide is total: every host and path gets a decision.
func Decide(host, path string) Decision {
	if path == "" {
		path = "/"
	}

	label, ok := Subdomain(host)
	if !ok {
		if path == "/" {
			return Decision{Action: Rewrite, Path: MarketingPath}
		}
		return Decision{Action: PassThrough}
	}

	switch label {
	case AdminLabel:
		if path == "/" {
			return Decision{Action: Redirect, Path: AdminPath}
		}
		return Decision{Action: PassThrough}
	case WWWLabel:
		bare := normalizeHost(host)
		bare = strings.TrimPrefix(bare, WWWLabel+".")
		if _, port, err := net.SplitHostPort(strings.TrimSpace(host)); err == nil && port != "" {
			bare = net.JoinHostPort(bare, port)
		}
		return Decision{Action: PermanentRedirect, Host: bare, Path: path}
	default:
		return Decision{Action: Rewrite, Path: ArtistPrefix + label}
	}
}
