// Package store is a thin REST client for the document database and
// file bucket backend the seeder targets. It covers only the calls the
// seeder needs: paginated listing, create and delete for documents and
// files, plus public view URLs.
package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client holds connection details for one project on the store.
type Client struct {
	Endpoint string // base URL including the API version prefix, no trailing slash
	Project  string
	APIKey   string
	HTTP     *http.Client
}

// New builds a client for the given endpoint and project credentials.
func New(endpoint, project, apiKey string) *Client {
	return &Client{
		Endpoint: strings.TrimRight(endpoint, "/"),
		Project:  project,
		APIKey:   apiKey,
		HTTP:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Databases returns the document database service.
func (c *Client) Databases() *Databases { return &Databases{client: c} }

// Storage returns the file bucket service.
func (c *Client) Storage() *Storage { return &Storage{client: c} }

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Response, error) {
	u := c.Endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Store-Project", c.Project)
	if c.APIKey != "" {
		req.Header.Set("X-Store-Key", c.APIKey)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}
