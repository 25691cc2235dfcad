package githubapi

import (
	"log/slog"
	"net/http"
	"time"
)

// Client provides access to the GitHub GraphQL API.
type Client struct {
	endpoint   string
	token      string
	login      string
	viewer     bool
	httpClient *http.Client
	logger     *slog.Logger

	maxRetries   int
	retryBackoff time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new GraphQL API client for the given account login.
func NewClient(endpoint, token, login string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: endpoint,
		token:    token,
		login:    login,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:       slog.Default(),
		maxRetries:   3,
		retryBackoff: time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithViewer switches queries to viewer{} (personal access token mode).
func WithViewer(viewer bool) ClientOption {
	return func(c *Client) {
		c.viewer = viewer
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRetries sets the retry configuration.
func WithRetries(max int, backoff time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = max
		c.retryBackoff = backoff
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// Viewer reports whether the client queries viewer{} and therefore sees
// private contributions.
func (c *Client) Viewer() bool {
	return c.viewer
}

// Login returns the account the client was built for.
func (c *Client) Login() string {
	return c.login
}
