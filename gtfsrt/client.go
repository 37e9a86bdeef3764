package gtfsrt

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Client fetches raw GTFS-RT protobuf payloads over HTTP.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads a feed and returns the raw protobuf bytes.
func (c *Client) Fetch(url string) ([]byte, error) {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// Load reads a feed from an http(s) URL or a local file path.
func (c *Client) Load(src string) ([]byte, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return c.Fetch(src)
	}
	b, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("reading feed %s: %w", src, err)
	}
	return b, nil
}
