// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wikidata queries the Wikidata entity API and hands back the raw
// response text. Responses are never parsed and HTTP status codes are not
// inspected: the service's body is returned as the server sent it.
package wikidata

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/entity-lookup/internal/httputil"
	"github.com/pdiddy/entity-lookup/pkg/types"
)

// DefaultEndpoint is the Wikidata MediaWiki API.
const DefaultEndpoint = "https://www.wikidata.org/w/api.php"

// Client sends lookups to the entity API. A Client holds no per-call state
// and is safe for concurrent use; its http.Client is the shared connection
// pool.
type Client struct {
	http       *http.Client
	endpoint   string
	language   string
	userAgent  string
	maxRetries int
	logger     zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. The configured
// timeout is ignored when this option is used.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient builds a Client from cfg. Zero values select the defaults:
// DefaultEndpoint, DefaultLanguage, no timeout and no retries.
func NewClient(cfg types.LookupConfig, opts ...Option) *Client {
	c := &Client{
		endpoint:   cfg.Endpoint,
		language:   cfg.Language,
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		logger:     zerolog.Nop(),
	}
	if c.endpoint == "" {
		c.endpoint = DefaultEndpoint
	}
	if c.language == "" {
		c.language = DefaultLanguage
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: cfg.Timeout}
	}
	return c
}

// Search runs wbsearchentities for term and returns the response body
// unmodified. Failures are *TransportError or *ResponseReadError; an empty
// term yields ErrEmptyTerm.
func (c *Client) Search(ctx context.Context, term string) (string, error) {
	l, err := c.SearchLookup(ctx, term)
	if err != nil {
		return "", err
	}
	return l.Body, nil
}

// SearchLookup is Search but returns the full lookup record, including the
// request URL and receive time.
func (c *Client) SearchLookup(ctx context.Context, term string) (types.Lookup, error) {
	sr, err := NewSearchRequest(term, c.language)
	if err != nil {
		return types.Lookup{}, err
	}
	return c.fetch(ctx, types.ActionSearchEntities, term, sr.URL(c.endpoint))
}

// GetEntities runs wbgetentities for ids (e.g. "Q76") and returns the
// response body unmodified.
func (c *Client) GetEntities(ctx context.Context, ids ...string) (string, error) {
	l, err := c.EntitiesLookup(ctx, ids...)
	if err != nil {
		return "", err
	}
	return l.Body, nil
}

// EntitiesLookup is GetEntities but returns the full lookup record.
func (c *Client) EntitiesLookup(ctx context.Context, ids ...string) (types.Lookup, error) {
	params := entitiesValues(ids, c.language)
	if params == nil {
		return types.Lookup{}, ErrNoIDs
	}
	return c.fetch(ctx, types.ActionGetEntities, params.Get("ids"), c.endpoint+"?"+params.Encode())
}

func (c *Client) fetch(ctx context.Context, action types.Action, term, reqURL string) (types.Lookup, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return types.Lookup{}, &TransportError{URL: reqURL, Err: err}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().Str("action", string(action)).Str("url", reqURL).Msg("sending request")

	resp, err := httputil.DoWithRetry(c.logger.WithContext(ctx), c.http, req, c.maxRetries)
	if err != nil {
		return types.Lookup{}, &TransportError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	var sb strings.Builder
	if _, err := io.Copy(&sb, resp.Body); err != nil {
		return types.Lookup{}, &ResponseReadError{URL: reqURL, StatusCode: resp.StatusCode, Err: err}
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", sb.Len()).
		Msg("response received")

	return types.Lookup{
		Action:    action,
		Term:      term,
		Language:  c.language,
		URL:       reqURL,
		Body:      sb.String(),
		Timestamp: time.Now().UTC(),
	}, nil
}
