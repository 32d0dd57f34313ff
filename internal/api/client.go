// Package api is the client for the remote fashion search and virtual try-on
// endpoints. Calls are single shot: no retry, no backoff.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alexisbeaulieu97/luxe/internal/logger"
	apperrors "github.com/alexisbeaulieu97/luxe/pkg/errors"
)

const (
	EndpointSearch = "search"
	EndpointTryon  = "tryon"

	// SearchFallback is surfaced when a failed search carries no error text.
	SearchFallback = "Search failed"
	// TryonFallback is surfaced when a failed try-on carries no error text.
	TryonFallback = "Virtual try-on failed"

	// DefaultUserID stands in for a real identity until authentication exists.
	DefaultUserID = "1"

	DefaultSearchURL = "https://functions.poehali.dev/ae958169-a240-49c4-82fb-b7aa1dace58d"
	DefaultTryonURL  = "https://functions.poehali.dev/17910f06-60fb-4d82-b85e-8544ff4e2d63"

	// UserIDHeader carries the caller identity on every request.
	UserIDHeader = "X-User-Id"

	maxErrorBody = 1 << 20
)

// Options configures a Client.
type Options struct {
	SearchURL  string
	TryonURL   string
	UserID     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logger.Logger
}

// Client posts encoded images to the remote endpoints.
type Client struct {
	searchURL string
	tryonURL  string
	userID    string
	http      *http.Client
	log       *logger.Logger
}

// NewClient builds a Client, filling unset options with the demo defaults.
// A zero Timeout leaves requests unbounded.
func NewClient(opts Options) *Client {
	c := &Client{
		searchURL: opts.SearchURL,
		tryonURL:  opts.TryonURL,
		userID:    opts.UserID,
		http:      opts.HTTPClient,
		log:       opts.Logger,
	}
	if c.searchURL == "" {
		c.searchURL = DefaultSearchURL
	}
	if c.tryonURL == "" {
		c.tryonURL = DefaultTryonURL
	}
	if c.userID == "" {
		c.userID = DefaultUserID
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: opts.Timeout}
	}
	if c.log == nil {
		c.log = logger.Nop()
	}
	return c
}

// UserID returns the identity sent with each request.
func (c *Client) UserID() string {
	return c.userID
}

// SearchFashion looks up products matching the image. An empty hint is sent
// as an empty string.
func (c *Client) SearchFashion(ctx context.Context, imageDataURL, clothingTypeHint string) (*SearchResponse, error) {
	var out SearchResponse
	req := SearchRequest{Image: imageDataURL, ClothingType: clothingTypeHint}
	if err := c.post(ctx, EndpointSearch, c.searchURL, SearchFallback, req, &out); err != nil {
		return nil, err
	}
	if out.Results == nil {
		out.Results = []SearchResult{}
	}
	return &out, nil
}

// VirtualTryon composites the clothes image onto the person image.
func (c *Client) VirtualTryon(ctx context.Context, personDataURL, clothesDataURL string) (*TryonResponse, error) {
	var out TryonResponse
	req := TryonRequest{PersonImage: personDataURL, ClothesImage: clothesDataURL}
	if err := c.post(ctx, EndpointTryon, c.tryonURL, TryonFallback, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, endpoint, url, fallback string, body, out any) error {
	log := c.log.Endpoint(endpoint)
	start := time.Now()

	payload, err := json.Marshal(body)
	if err != nil {
		return apperrors.NewRequestError(endpoint, 0, fallback, fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return apperrors.NewRequestError(endpoint, 0, fallback, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(UserIDHeader, c.userID)

	log.Debug("request started")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error(err, "request failed")
		return apperrors.NewRequestError(endpoint, 0, fallback, err)
	}
	defer resp.Body.Close()

	log = log.Response(resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := errorMessage(resp.Body, fallback)
		reqErr := &apperrors.RequestError{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: message}
		log.Warn(reqErr.Detail())
		return reqErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error(err, "response decode failed")
		return apperrors.NewRequestError(endpoint, resp.StatusCode, fallback, fmt.Errorf("decode response: %w", err))
	}

	log.Info("request completed")
	return nil
}

// errorMessage extracts the "error" field of a failure body, or returns
// fallback when the body is empty, not JSON, or lacks the field.
func errorMessage(body io.Reader, fallback string) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return fallback
	}

	var parsed ErrorResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fallback
	}
	if parsed.Error == "" {
		return fallback
	}
	return parsed.Error
}
