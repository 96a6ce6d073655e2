// Package registry is a client for the entity registry the loader writes to.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	semerrors "github.com/c360studio/semstreams/pkg/errs"
	"github.com/c360studio/semstreams/pkg/retry"
)

// APIKeyHeader carries the registry credential on every request.
const APIKeyHeader = "api-key"

// DefaultTimeout bounds a single registry request.
const DefaultTimeout = 30 * time.Second

// Client talks to a single registry.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	retry      RetryConfig
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(cl *Client) {
		cl.httpClient.Timeout = d
	}
}

// WithRetryConfig sets the retry policy for Update and Fetch.
func WithRetryConfig(cfg RetryConfig) ClientOption {
	return func(cl *Client) {
		cl.retry = cfg
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(cl *Client) {
		cl.logger = logger
	}
}

// NewClient creates a client for the registry rooted at baseURL.
func NewClient(baseURL *url.URL, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		retry:      DefaultRetryConfig(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the registry root.
func (c *Client) BaseURL() *url.URL {
	return c.baseURL
}

// Create stores doc as a new entity under the client-minted localID and
// returns the IRI the registry assigned, taken from the Location header.
// A response that is not 2xx or lacks a Location wraps ErrMissingLocation;
// a request that never got a response does not. Create is not retried: a repeated POST could create a second entity.
func (c *Client) Create(ctx context.Context, localID string, doc []byte) (string, error) {
	endpoint := c.baseURL.JoinPath("entity")

	data, err := json.Marshal(entityRequest{ID: localID, Body: documentBody(doc)})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, endpoint.String(), data)
	if err != nil {
		return "", fmt.Errorf("post entity: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: %w", ErrMissingLocation, statusError(resp))
	}

	loc := resp.Header.Get("Location")
	if loc == "" {
		return "", ErrMissingLocation
	}
	ref, err := url.Parse(loc)
	if err != nil {
		return "", fmt.Errorf("%w: invalid location %q: %w", ErrMissingLocation, loc, err)
	}

	iri := c.baseURL.ResolveReference(ref).String()
	c.logger.Debug("Created entity", "local_id", localID, "iri", iri)
	return iri, nil
}

// Update replaces the document of the entity with the given registry ID.
func (c *Client) Update(ctx context.Context, registryID string, doc []byte) error {
	endpoint := c.baseURL.JoinPath("entity", registryID).String()

	data, err := json.Marshal(entityRequest{ID: registryID, Body: documentBody(doc)})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	return retry.Do(ctx, c.retry.toRetry(), func() error {
		resp, err := c.do(ctx, http.MethodPut, endpoint, data)
		if err != nil {
			return gate(classify(err, "Update", "send request"))
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return gate(classify(statusError(resp), "Update", "update entity"))
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	})
}

// Fetch reads an entity back by its registry IRI.
func (c *Client) Fetch(ctx context.Context, registryIRI string) (*Entity, error) {
	return retry.DoWithResult(ctx, c.retry.toRetry(), func() (*Entity, error) {
		resp, err := c.do(ctx, http.MethodGet, registryIRI, nil)
		if err != nil {
			return nil, gate(classify(err, "Fetch", "send request"))
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, gate(classify(statusError(resp), "Fetch", "fetch entity"))
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, gate(classify(err, "Fetch", "read response"))
		}

		var entity Entity
		if err := json.Unmarshal(body, &entity); err != nil {
			return nil, retry.NonRetryable(fmt.Errorf("unmarshal entity: %w", err))
		}
		c.logger.Debug("Fetched entity", "iri", registryIRI, "etag", entity.ETag())
		return &entity, nil
	})
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, r)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(APIKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	return resp, nil
}

// gate stops the retry loop for anything that is not transient.
func gate(err error) error {
	if semerrors.IsTransient(err) {
		return err
	}
	return retry.NonRetryable(err)
}

func statusError(resp *http.Response) *StatusError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &StatusError{
		Method:     resp.Request.Method,
		URL:        resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
}

// StatusCode extracts the HTTP status from err, or 0 when err carries none.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
