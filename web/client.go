package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

type leveledSlog struct {
	inner *slog.Logger
}

// re-writes HTTP client ERROR to WARN level (because of retries)
func (l leveledSlog) Error(msg string, keysAndValues ...interface{}) {
	l.inner.Warn(msg, keysAndValues...)
}

func (l leveledSlog) Warn(msg string, keysAndValues ...interface{}) {
	l.inner.Warn(msg, keysAndValues...)
}

func (l leveledSlog) Info(msg string, keysAndValues ...interface{}) {
	l.inner.Info(msg, keysAndValues...)
}

// re-writes HTTP client DEBUG to INFO level (this is where retry is logged)
func (l leveledSlog) Debug(msg string, keysAndValues ...interface{}) {
	l.inner.Info(msg, keysAndValues...)
}

// Client fetches pages for the engine. It retries on connection errors and
// 5xx status, and keeps recently fetched pages in a bounded TTL cache so
// that reloads of the same URL don't hit the network again.
type Client struct {
	httpClient *http.Client
	pageCache  *expirable.LRU[string, *Response]
	logger     *slog.Logger
}

// NewClient sets up a fetch client with decent general-purpose defaults
// around timeouts and retries. Cache capacity of zero means unlimited size;
// similarly, ttl of zero means unlimited duration.
func NewClient(capacity int, ttl time.Duration) *Client {
	logger := slog.Default().With("system", "web")

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 10 * time.Second
	retryClient.Logger = retryablehttp.LeveledLogger(leveledSlog{logger})
	httpClient := retryClient.StandardClient()
	httpClient.Timeout = 20 * time.Second

	return &Client{
		httpClient: httpClient,
		pageCache:  expirable.NewLRU[string, *Response](capacity, nil, ttl),
		logger:     logger,
	}
}

// Get fetches the page at u, which must have been parsed successfully. The
// response is returned for any status code; deciding what to do with a 404
// is the renderer's business, not ours.
func (c *Client) Get(ctx context.Context, u *URL) (*Response, error) {
	if u.Host() == "" {
		return nil, fmt.Errorf("fetching unparsed or hostless URL %q", u)
	}

	target := requestTarget(u)
	if cached, ok := c.pageCache.Get(target); ok {
		c.logger.Debug("page cache hit", "url", target)
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %q: %w", target, err)
	}
	req.Header.Set("Accept", "text/html")

	c.logger.Debug("fetching page", "url", target)
	hr, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", target, err)
	}
	defer hr.Body.Close()

	resp, err := newResponse(hr)
	if err != nil {
		return nil, err
	}

	c.pageCache.Add(target, resp)
	return resp, nil
}

// requestTarget rebuilds a fetchable URL from the four parsed components.
func requestTarget(u *URL) string {
	target := "http://" + u.Host() + ":" + u.Port() + "/" + u.Path()
	if u.Searchpart() != "" {
		target += "?" + u.Searchpart()
	}
	return target
}
