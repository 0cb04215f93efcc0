package web

import (
	"errors"
	"strings"
)

// ErrUnsupportedScheme is returned by [URL.Parse] for any input that does
// not contain the literal "http://" marker. Only plain HTTP is handled.
var ErrUnsupportedScheme = errors.New("Only HTTP is supported.")

// URL holds a raw URL string and the four components the page-loading
// pipeline needs: host, port, path, and searchpart (query string). The
// derived fields are empty until [URL.Parse] succeeds.
//
// This is deliberately not a general URI implementation: no percent
// decoding, no IPv6 bracket literals, no userinfo, no fragments, and no
// scheme other than literal "http://".
type URL struct {
	raw        string
	host       string
	port       string
	path       string
	searchpart string
}

// NewURL wraps raw URL text. No validation happens here; call [URL.Parse].
func NewURL(raw string) *URL {
	return &URL{raw: raw}
}

func (u *URL) String() string {
	return u.raw
}

// Host returns the hostname text, without port. Empty before a successful parse.
func (u *URL) Host() string {
	return u.host
}

// Port returns the port as decimal text. Defaults to "80" when the input
// had no port. Empty before a successful parse.
func (u *URL) Port() string {
	return u.port
}

// Path returns the path text without the leading slash. Empty when the
// input had no path, or before a successful parse.
func (u *URL) Path() string {
	return u.path
}

// Searchpart returns the query string, without the leading '?'. Empty when
// the input had no query, or before a successful parse.
func (u *URL) Searchpart() string {
	return u.searchpart
}

// Parse derives host, port, path, and searchpart from the raw text and
// returns the same instance. On failure no field is modified.
//
// The scheme check is substring containment: "http://" may appear anywhere
// in the text. Only a true prefix is stripped before splitting, so a
// mid-string marker passes the check unstripped and the split runs over
// the full text.
func (u *URL) Parse() (*URL, error) {
	if !u.isHTTP() {
		return nil, ErrUnsupportedScheme
	}

	u.host = u.extractHost()
	u.port = u.extractPort()
	u.path = u.extractPath()
	u.searchpart = u.extractSearchpart()

	return u, nil
}

func (u *URL) isHTTP() bool {
	return strings.Contains(u.raw, "http://")
}

func (u *URL) extractHost() string {
	authority := urlParts(u.raw)[0]

	if i := strings.Index(authority, ":"); i >= 0 {
		return authority[:i]
	}
	return authority
}

func (u *URL) extractPort() string {
	authority := urlParts(u.raw)[0]

	if i := strings.Index(authority, ":"); i >= 0 {
		return authority[i+1:]
	}
	return "80"
}

func (u *URL) extractPath() string {
	parts := urlParts(u.raw)
	if len(parts) < 2 {
		return ""
	}

	// drop the query string
	path, _, _ := strings.Cut(parts[1], "?")
	return path
}

func (u *URL) extractSearchpart() string {
	parts := urlParts(u.raw)
	if len(parts) < 2 {
		return ""
	}

	_, searchpart, ok := strings.Cut(parts[1], "?")
	if !ok {
		return ""
	}
	return searchpart
}

// urlParts strips a leading "http://" and splits the rest into authority
// (host[:port]) and path-and-beyond on the first '/'.
func urlParts(raw string) []string {
	return strings.SplitN(strings.TrimPrefix(raw, "http://"), "/", 2)
}
