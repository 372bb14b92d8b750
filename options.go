package mailroutes

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/syncteam/mailroutes/internal/api"
)

const (
	// DefaultBaseURL is the Mailgun API root for the US region.
	DefaultBaseURL = api.DefaultBaseURL
	// EUBaseURL is the Mailgun API root for the EU region.
	EUBaseURL = api.EUBaseURL
	// UserAgent is sent on every request.
	UserAgent = api.UserAgent
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API root relative paths are resolved against.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP timeout.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger. Delete intents are logged at info level and
// request traces at debug level. Default: no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
