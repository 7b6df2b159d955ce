package database

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hellscube/cubegen/internal/card"
)

// Fetcher yields the upstream card records
type Fetcher interface {
	Fetch(ctx context.Context) ([]*card.Card, error)
}

// payload is the upstream document shape
type payload struct {
	Data []*card.Card `json:"data"`
}

// HTTPFetcher downloads the card database with a single GET
type HTTPFetcher struct {
	URL       string
	UserAgent string
	client    *http.Client
}

// NewHTTPFetcher creates a fetcher for url. No client timeout is set; the
// request lives as long as ctx.
func NewHTTPFetcher(url, userAgent string) *HTTPFetcher {
	return &HTTPFetcher{
		URL:       url,
		UserAgent: userAgent,
		client:    &http.Client{},
	}
}

// Fetch downloads and decodes the database
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]*card.Card, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch database: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch database: %s returned %s", f.URL, resp.Status)
	}

	var p payload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse database: %w", err)
	}

	if p.Data == nil {
		return nil, fmt.Errorf("failed to parse database: no \"data\" key in %s", f.URL)
	}

	for i, c := range p.Data {
		if c == nil {
			return nil, fmt.Errorf("failed to parse database: record %d is null", i)
		}
	}

	return p.Data, nil
}

// StaticFetcher serves a fixed collection, for tests and offline runs
type StaticFetcher []*card.Card

// Fetch returns the collection
func (s StaticFetcher) Fetch(context.Context) ([]*card.Card, error) {
	return s, nil
}
