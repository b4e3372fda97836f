// Package feeds fetches RSS and Atom feeds for the modules.
package feeds

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyFeed is returned when a feed parses but has no usable entries.
var ErrEmptyFeed = errors.New("feed has no usable entries")

// ClientConfig provides configuration options for the feed client.
type ClientConfig struct {
	// Timeout is the overall request timeout.
	// Default: 10 seconds.
	Timeout time.Duration

	// UserAgent is sent with feed requests.
	// Default: "open-epaper-gen".
	UserAgent string

	// MaxIdleConns controls the maximum number of idle (keep-alive) connections.
	// Default: 10.
	MaxIdleConns int

	// IdleConnTimeout is the maximum time an idle connection will remain idle.
	// Default: 90 seconds.
	IdleConnTimeout time.Duration
}

// DefaultClientConfig returns the default feed client configuration.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Timeout:         10 * time.Second,
		UserAgent:       "open-epaper-gen",
		MaxIdleConns:    10,
		IdleConnTimeout: 90 * time.Second,
	}
}

// Client fetches and parses feeds over HTTP.
type Client struct {
	parser *gofeed.Parser
}

// NewClient creates a feed client with the specified configuration.
// A nil config uses the defaults.
func NewClient(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultClientConfig()
	}

	dialer := &net.Dialer{
		Timeout:   config.Timeout,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		MaxIdleConns:        config.MaxIdleConns,
		IdleConnTimeout:     config.IdleConnTimeout,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	parser := gofeed.NewParser()
	parser.Client = &http.Client{
		Transport: transport,
		Timeout:   config.Timeout,
	}
	parser.UserAgent = config.UserAgent

	return &Client{parser: parser}
}

// LatestTitle fetches a feed and returns the title of its first entry,
// NFC-normalized and with surrounding whitespace removed. News feeds list
// their newest entry first.
func (c *Client) LatestTitle(ctx context.Context, url string) (string, error) {
	feed, err := c.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return "", fmt.Errorf("fetching feed %s: %w", url, err)
	}
	if len(feed.Items) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyFeed, url)
	}

	title := norm.NFC.String(strings.TrimSpace(feed.Items[0].Title))
	if title == "" {
		return "", fmt.Errorf("%w: first entry of %s has no title", ErrEmptyFeed, url)
	}
	return title, nil
}
