package web

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLParts(t *testing.T) {
	assert := assert.New(t)

	// raw, host, port, path, searchpart
	testVec := [][]string{
		{"http://example.com", "example.com", "80", "", ""},
		{"http://example.com:8888", "example.com", "8888", "", ""},
		{"http://example.com:8888/index.html", "example.com", "8888", "index.html", ""},
		{"http://example.com/index.html", "example.com", "80", "index.html", ""},
		{"http://example.com:8888/index.html?a=123&b=456", "example.com", "8888", "index.html", "a=123&b=456"},
		{"http://localhost:8000/", "localhost", "8000", "", ""},
		{"http://example.com/a/b/c", "example.com", "80", "a/b/c", ""},
		{"http://example.com/?q=1", "example.com", "80", "", "q=1"},
		{"http://example.com/index.html?a=1?b=2", "example.com", "80", "index.html", "a=1?b=2"},
		{"http://127.0.0.1:3000/status", "127.0.0.1", "3000", "status", ""},
	}

	for _, parts := range testVec {
		u, err := NewURL(parts[0]).Parse()
		require.NoError(t, err, parts[0])
		assert.Equal(parts[1], u.Host(), parts[0])
		assert.Equal(parts[2], u.Port(), parts[0])
		assert.Equal(parts[3], u.Path(), parts[0])
		assert.Equal(parts[4], u.Searchpart(), parts[0])
	}
}

func TestURLUnsupportedScheme(t *testing.T) {
	assert := assert.New(t)

	for _, raw := range []string{
		"example.com",
		"https://example.com",
		"ftp://example.com",
		"http:/example.com",
		"",
	} {
		u := NewURL(raw)
		_, err := u.Parse()
		assert.ErrorIs(err, ErrUnsupportedScheme, raw)
		assert.Equal("Only HTTP is supported.", err.Error())

		// failure is atomic: no field was touched
		assert.Equal("", u.Host(), raw)
		assert.Equal("", u.Port(), raw)
		assert.Equal("", u.Path(), raw)
		assert.Equal("", u.Searchpart(), raw)
	}
}

// The scheme check is containment but the strip is a prefix trim. Inputs
// where "http://" appears only mid-string pass the check unstripped and
// split into garbled parts. That behavior is load-bearing for compatibility,
// so pin it down.
func TestURLSchemeQuirks(t *testing.T) {
	assert := assert.New(t)

	testVec := [][]string{
		{"foo http://bar", "foo http", "", "/bar", ""},
		{"http://http://x", "http", "", "/x", ""},
		{"see http://example.com/page", "see http", "", "/example.com/page", ""},
	}

	for _, parts := range testVec {
		u, err := NewURL(parts[0]).Parse()
		require.NoError(t, err, parts[0])
		assert.Equal(parts[1], u.Host(), parts[0])
		assert.Equal(parts[2], u.Port(), parts[0])
		assert.Equal(parts[3], u.Path(), parts[0])
		assert.Equal(parts[4], u.Searchpart(), parts[0])
	}
}

func TestURLBareColonPort(t *testing.T) {
	assert := assert.New(t)

	// trailing colon with no digits: port comes back empty, not "80"
	u, err := NewURL("http://example.com:").Parse()
	require.NoError(t, err)
	assert.Equal("example.com", u.Host())
	assert.Equal("", u.Port())
}

func TestURLParseIdempotent(t *testing.T) {
	assert := assert.New(t)

	u := NewURL("http://example.com:8888/index.html?a=1")
	_, err := u.Parse()
	require.NoError(t, err)
	host, port, path, search := u.Host(), u.Port(), u.Path(), u.Searchpart()

	again, err := u.Parse()
	require.NoError(t, err)
	assert.Same(u, again)
	assert.Equal(host, u.Host())
	assert.Equal(port, u.Port())
	assert.Equal(path, u.Path())
	assert.Equal(search, u.Searchpart())
}

func TestURLNoPanic(t *testing.T) {
	for _, s := range []string{"", ".", "http://", "http:///", "http://:", "http://?", "http://a?b"} {
		u := NewURL(s)
		_, _ = u.Parse()
		_ = u.Host()
		_ = u.Port()
		_ = u.Path()
		_ = u.Searchpart()
		_ = u.String()
	}
}

func TestURLAccessorsBeforeParse(t *testing.T) {
	assert := assert.New(t)

	u := NewURL("http://example.com/index.html")
	assert.Equal("http://example.com/index.html", u.String())
	assert.Equal("", u.Host())
	assert.Equal("", u.Port())
	assert.Equal("", u.Path())
	assert.Equal("", u.Searchpart())
}

func TestURLErrorIsSentinel(t *testing.T) {
	_, err := NewURL("gopher://example.com").Parse()
	if !errors.Is(err, ErrUnsupportedScheme) {
		t.Fatalf("expected ErrUnsupportedScheme, got %v", err)
	}
}
