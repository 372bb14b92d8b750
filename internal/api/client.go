package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/syncteam/mailroutes/internal/crypto"
)

const (
	// DefaultBaseURL is the Mailgun v3 API root for the US region.
	DefaultBaseURL = "https://api.mailgun.net/v3/"
	// EUBaseURL is the Mailgun v3 API root for the EU region.
	EUBaseURL = "https://api.eu.mailgun.net/v3/"
	// UserAgent identifies this client on every request.
	UserAgent = "mailroutes (https://github.com/syncteam/mailroutes)"
	// DefaultTimeout is the transport timeout when no HTTP client is supplied.
	DefaultTimeout = 30 * time.Second

	basicAuthUser = "api"
	// maxErrorBodySize caps how much of a non-2xx body is kept on APIError.
	maxErrorBodySize = 1 << 20
)

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	secret     *crypto.Secret
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL. A trailing slash is added if missing so
// that relative paths concatenate cleanly.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL == "" {
			return
		}
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		c.baseURL = baseURL
	}
}

// WithTimeout sets the timeout of the default HTTP client. It has no effect
// when WithHTTPClient supplies the client, whatever the option order.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger sets the logger used for request-level debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a new API client. No network I/O is performed.
func New(secret *crypto.Secret, opts ...Option) (*Client, error) {
	if secret == nil {
		return nil, ErrMissingAPIKey
	}

	defaultHTTPClient := &http.Client{
		Timeout: DefaultTimeout,
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		secret:     secret,
		httpClient: defaultHTTPClient,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == defaultHTTPClient && c.timeout > 0 {
		defaultHTTPClient.Timeout = c.timeout
	}

	return c, nil
}

// BaseURL returns the URL relative paths are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// resolve maps a request path to an absolute URL.
func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + path
}

// newRequest is the only place requests are built. It attaches credentials
// and identification, so no request may be created any other way.
func (c *Client) newRequest(ctx context.Context, method, path string, form url.Values) (*http.Request, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	err = c.secret.Expose(func(key []byte) error {
		req.SetBasicAuth(basicAuthUser, string(key))
		return nil
	})
	if errors.Is(err, crypto.ErrSecretDestroyed) {
		return nil, ErrClientClosed
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read API key: %w", err)
	}

	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	return req, nil
}

// Do sends a single request and decodes a 2xx JSON body into result when
// result is non-nil.
func (c *Client) Do(ctx context.Context, method, path string, form url.Values, result interface{}) error {
	req, err := c.newRequest(ctx, method, path, form)
	if err != nil {
		return err
	}

	c.logger.Debug("sending request",
		zap.String("method", method),
		zap.String("url", req.URL.Redacted()),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err, Method: method, URL: req.URL.Redacted()}
	}
	defer resp.Body.Close()

	c.logger.Debug("received response",
		zap.String("method", method),
		zap.String("url", req.URL.Redacted()),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp)
	}

	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err, Method: method, URL: req.URL.Redacted()}
	}

	if err := json.Unmarshal(data, result); err != nil {
		return &DecodeError{Err: err, Body: string(data)}
	}

	return nil
}

func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	var errResp struct {
		Message string `json:"message"`
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		apiErr.Message = errResp.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}

	return apiErr
}
