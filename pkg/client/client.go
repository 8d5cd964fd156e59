// Package client talks to the Gravity Forms REST API (wp-json/gf/v2).
// Configuration is an explicit struct passed at construction; there is no
// package-level state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-gravity/pkg/schema"
	"github.com/goliatone/go-gravity/pkg/submission"
)

const (
	apiBasePath    = "/wp-json/gf/v2"
	defaultTimeout = 30 * time.Second

	headerRequestID = "X-Request-Id"
)

// Config collects everything the client needs. BaseURL is the WordPress site
// root; the API path is appended internally. Key and secret feed the Basic
// Auth header attached to every request.
type Config struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string

	// HTTPClient defaults to a fresh client with Timeout applied.
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     zerolog.Logger
}

// Client is a Gravity Forms API client. Safe for concurrent use.
type Client struct {
	baseURL string
	key     string
	secret  string
	http    *http.Client
	log     zerolog.Logger
}

// New validates the configuration and builds a Client.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("client: base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: base + apiBasePath,
		key:     cfg.ConsumerKey,
		secret:  cfg.ConsumerSecret,
		http:    httpClient,
		log:     cfg.Logger,
	}, nil
}

// FetchForm retrieves a form schema by id.
func (c *Client) FetchForm(ctx context.Context, formID int) (*schema.Form, error) {
	body, status, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/forms/%d", formID), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: form %d", ErrNotFound, formID)
	}
	if status < 200 || status >= 300 {
		return nil, newTransportError(status, fmt.Sprintf("/forms/%d", formID), body)
	}

	var form schema.Form
	if err := json.Unmarshal(body, &form); err != nil {
		return nil, fmt.Errorf("client: decode form %d: %w", formID, err)
	}
	return &form, nil
}

// Validate runs the payload through the validation endpoint without creating
// an entry.
func (c *Client) Validate(ctx context.Context, formID int, payload submission.Payload) (*schema.SubmissionResult, error) {
	path := fmt.Sprintf("/forms/%d/submissions/validation", formID)
	return c.postSubmission(ctx, path, payload)
}

// Submit creates an entry from the payload.
func (c *Client) Submit(ctx context.Context, formID int, payload submission.Payload) (*schema.SubmissionResult, error) {
	path := fmt.Sprintf("/forms/%d/submissions", formID)
	return c.postSubmission(ctx, path, payload)
}

// postSubmission handles the API's status-code overload: a 400 whose body is
// a validation-shaped response is a successful call that reports
// is_valid=false, not a transport failure.
func (c *Client) postSubmission(ctx context.Context, path string, payload submission.Payload) (*schema.SubmissionResult, error) {
	body, status, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}

	switch {
	case status >= 200 && status < 300:
		// fall through to decode
	case status == http.StatusBadRequest && looksLikeValidation(body):
		// fall through to decode
	case status == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	default:
		return nil, newTransportError(status, path, body)
	}

	var result schema.SubmissionResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("client: decode submission response: %w", err)
	}
	return &result, nil
}

func looksLikeValidation(body []byte) bool {
	var probe struct {
		IsValid *bool `json:"is_valid"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return false
	}
	return probe.IsValid != nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("client: encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("client: build request: %w", err)
	}
	req.SetBasicAuth(c.key, c.secret)
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	req.Header.Set(headerRequestID, requestID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("request_id", requestID).Str("url", url).Err(err).Msg("gravity request failed")
		return nil, 0, fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("client: read response body: %w", err)
	}

	c.log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("gravity request")

	return body, resp.StatusCode, nil
}
