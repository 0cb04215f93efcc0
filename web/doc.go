// Package web implements the networking core of the engine: splitting raw
// HTTP URL text into host, port, path, and searchpart, and fetching pages
// over plain HTTP with retries and a small in-memory cache.
//
// This is intentionally narrow. It is not a general URL or HTTP library;
// only the literal "http://" scheme is recognized, and the split rules are
// purely mechanical with no decoding or validation beyond the scheme check.
package web
