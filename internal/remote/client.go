// Package remote reads recipes from an external recipes API. Every failure
// is logged and reported as an empty result.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pageza/recipe-share/backend/internal/logger"
	"github.com/pageza/recipe-share/backend/internal/metrics"
	"github.com/pageza/recipe-share/backend/internal/models"
)

const defaultTimeout = 10 * time.Second

// Client performs plain GET requests against baseURL
type Client struct {
	baseURL string
	http    *http.Client
	log     logger.Logger
	metrics *metrics.Metrics
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient creates a client for the API rooted at baseURL, e.g. http://localhost:3001/api
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		log:     logger.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches every recipe. Returns an empty slice on failure.
func (c *Client) List(ctx context.Context) []models.Recipe {
	body, ok := c.get(ctx, "list", "/recipes")
	if !ok {
		return []models.Recipe{}
	}
	recipes, err := decodeList(body)
	if err != nil {
		c.fail("list", "/recipes", err)
		return []models.Recipe{}
	}
	return recipes
}

// SearchByTitle asks the remote API for recipes whose title matches title
func (c *Client) SearchByTitle(ctx context.Context, title string) []models.Recipe {
	path := "/recipes/search?title=" + url.QueryEscape(title)
	body, ok := c.get(ctx, "search", path)
	if !ok {
		return []models.Recipe{}
	}
	recipes, err := decodeList(body)
	if err != nil {
		c.fail("search", path, err)
		return []models.Recipe{}
	}
	return recipes
}

// Get fetches a single recipe. ok is false when it is missing or the request failed.
func (c *Client) Get(ctx context.Context, id string) (models.Recipe, bool) {
	path := "/recipes/" + url.PathEscape(id)
	body, ok := c.get(ctx, "get", path)
	if !ok {
		return models.Recipe{}, false
	}
	var rec models.Recipe
	if err := json.Unmarshal(body, &rec); err != nil {
		c.fail("get", path, fmt.Errorf("decode recipe: %w", err))
		return models.Recipe{}, false
	}
	return rec, true
}

func (c *Client) get(ctx context.Context, endpoint, path string) ([]byte, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		c.fail(endpoint, path, fmt.Errorf("build request: %w", err))
		return nil, false
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.fail(endpoint, path, err)
		return nil, false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.fail(endpoint, path, fmt.Errorf("read body: %w", err))
		return nil, false
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.fail(endpoint, path, fmt.Errorf("unexpected status %d", resp.StatusCode))
		return nil, false
	}
	return body, true
}

func (c *Client) fail(endpoint, path string, err error) {
	c.metrics.RemoteFailure(endpoint)
	c.log.Warn("remote recipes request failed",
		logger.String("endpoint", endpoint),
		logger.String("path", path),
		logger.Error(err),
	)
}

// decodeList accepts either a bare array or an object with a "recipes" array
func decodeList(body []byte) ([]models.Recipe, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var recipes []models.Recipe
		if err := json.Unmarshal(trimmed, &recipes); err != nil {
			return nil, fmt.Errorf("decode recipe list: %w", err)
		}
		return recipes, nil
	}

	var envelope struct {
		Recipes []models.Recipe `json:"recipes"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decode recipe list: %w", err)
	}
	if envelope.Recipes == nil {
		return []models.Recipe{}, nil
	}
	return envelope.Recipes, nil
}
