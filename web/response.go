package web

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// Header is a single response header. Duplicate headers from the wire are
// kept as separate entries.
type Header struct {
	Name  string
	Value string
}

// Response is the view of a completed HTTP exchange that the rendering
// pipeline consumes. Bodies are held in memory as text; this is a toy
// engine, not a streaming client.
type Response struct {
	Version    string
	StatusCode int
	Reason     string
	Headers    []Header
	Body       string
}

// HeaderValue returns the first header matching name, case-insensitively.
func (r *Response) HeaderValue(name string) (string, bool) {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value, true
		}
	}
	return "", false
}

func newResponse(hr *http.Response) (*Response, error) {
	body, err := io.ReadAll(hr.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		Version:    hr.Proto,
		StatusCode: hr.StatusCode,
		Reason:     strings.TrimSpace(strings.TrimPrefix(hr.Status, strconv.Itoa(hr.StatusCode))),
		Body:       string(body),
	}
	for name, values := range hr.Header {
		for _, v := range values {
			resp.Headers = append(resp.Headers, Header{Name: name, Value: v})
		}
	}
	return resp, nil
}
