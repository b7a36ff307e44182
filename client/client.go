// Package client is the Go SDK for the InnSight mood-journal backend.
//
// A Client constructed with a bearer token talks to every endpoint; one
// constructed without a token stays usable for read paths, reporting the
// signed-out empty state instead of failing.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lucianoaf8/InnSight/devmode"
	"github.com/lucianoaf8/InnSight/pkg/journal"
)

// Client is a thin HTTP wrapper over the InnSight API.
type Client struct {
	baseURL string
	http    *http.Client
	apiKey  string
}

// New constructs a Client for the given base URL. apiKey may be empty:
// the client then operates signed-out, where reads return the empty
// state and writes fail with ErrNoCredentials.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.apiKey != "" {
		c.wrapTransportWithAPIKey()
	}
	return c, nil
}

// NewWithDevMode constructs a Client using the shared development API
// key. This only works against a server running with dev mode enabled.
func NewWithDevMode(baseURL string, opts ...Option) (*Client, error) {
	return New(baseURL, devmode.APIKey, opts...)
}

// Authenticated reports whether the client carries credentials.
func (c *Client) Authenticated() bool { return c.apiKey != "" }

// wrapTransportWithAPIKey wraps the HTTP client's transport to add the
// Authorization header to all requests using the configured API key.
func (c *Client) wrapTransportWithAPIKey() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &apiKeyTransport{
		base:   baseTransport,
		apiKey: c.apiKey,
	}
}

// apiKeyTransport wraps an http.RoundTripper to add the Authorization header.
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.apiKey)
	return t.base.RoundTrip(cloned)
}

// LogMoodRequest is a new entry to record. Date and Time default to the
// current day and minute when left empty; Period is derived server-side
// when omitted.
type LogMoodRequest struct {
	Date    string   `json:"date,omitempty"`
	Time    string   `json:"time,omitempty"`
	Period  string   `json:"period,omitempty"`
	Emojis  []string `json:"-"`
	Journal string   `json:"journal"`
}

// Ping checks the service is reachable. Works without credentials.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/ping", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return nil
}

// LogMood records a mood entry.
func (c *Client) LogMood(ctx context.Context, req LogMoodRequest) error {
	if !c.Authenticated() {
		return ErrNoCredentials
	}
	body := struct {
		LogMoodRequest
		Emojis string `json:"emojis"`
	}{LogMoodRequest: req, Emojis: journal.JoinEmojis(req.Emojis)}

	return c.postJSON(ctx, "/api/log-mood", body, http.StatusCreated)
}

// Entries returns the caller's full mood history, newest day first.
// A signed-out client gets the empty history without a network call.
func (c *Client) Entries(ctx context.Context) ([]journal.Entry, error) {
	if !c.Authenticated() {
		return []journal.Entry{}, nil
	}
	var entries []journal.Entry
	if err := c.getJSON(ctx, "/api/entries", &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []journal.Entry{}
	}
	return entries, nil
}

// TodayIntention returns today's saved intention, or "" when none is set.
// A signed-out client gets "" without a network call.
func (c *Client) TodayIntention(ctx context.Context) (string, error) {
	if !c.Authenticated() {
		return "", nil
	}
	var out struct {
		Intention string `json:"intention"`
	}
	if err := c.getJSON(ctx, "/api/intention/today", &out); err != nil {
		return "", err
	}
	return out.Intention, nil
}

// SaveIntention sets today's intention, replacing any earlier value.
func (c *Client) SaveIntention(ctx context.Context, text string) error {
	if !c.Authenticated() {
		return ErrNoCredentials
	}
	body := struct {
		Intention string `json:"intention"`
	}{Intention: text}
	return c.postJSON(ctx, "/api/save-intention", body, http.StatusOK)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}, wantStatus int) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != wantStatus {
		return statusError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
