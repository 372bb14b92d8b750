package mailroutes

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/syncteam/mailroutes/internal/api"
	"github.com/syncteam/mailroutes/internal/crypto"
)

// Client manages Mailgun routes. The dry-run flag is fixed at construction.
// A Client issues one synchronous request per call and never retries.
type Client struct {
	apiClient *api.Client
	mutator   mutator
	secret    *crypto.Secret
	dryRun    bool
	logger    *zap.Logger
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(secret *crypto.Secret, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithLogger(cfg.logger),
	}
	// Timeout applies to the default transport only; a caller-supplied
	// client keeps its own settings.
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}

	return api.New(secret, apiOpts...)
}

// New creates a client for the given API key. When dryRun is true,
// CreateRoute, UpdateRoute and DeleteRoute succeed without sending anything.
// No network I/O happens here.
func New(apiKey string, dryRun bool, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	secret, err := crypto.NewSecretString(apiKey)
	if err != nil {
		return nil, fmt.Errorf("seal API key: %w", err)
	}

	apiClient, err := buildAPIClient(secret, cfg)
	if err != nil {
		secret.Destroy()
		return nil, wrapError(err)
	}

	return &Client{
		apiClient: apiClient,
		mutator:   selectMutator(dryRun, apiClient, cfg.logger),
		secret:    secret,
		dryRun:    dryRun,
		logger:    cfg.logger,
	}, nil
}

// DryRun reports whether mutating calls are simulated.
func (c *Client) DryRun() bool {
	return c.dryRun
}

// ListRoutes fetches one page of routes. It is never affected by dry-run.
// The returned page holds at most one server page; see the package
// documentation for walking all pages.
func (c *Client) ListRoutes(ctx context.Context, opts ...ListOption) (*RoutesPage, error) {
	var params api.ListParams
	for _, opt := range opts {
		opt(&params)
	}

	page, err := c.apiClient.ListRoutes(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}
	return page, nil
}

// CreateRoute creates a route. The new route's ID is not returned.
func (c *Client) CreateRoute(ctx context.Context, route RouteDescriptor) error {
	return wrapError(c.mutator.CreateRoute(ctx, route))
}

// UpdateRoute replaces the priority and actions of route id.
func (c *Client) UpdateRoute(ctx context.Context, id string, update RouteUpdate) error {
	return wrapError(c.mutator.UpdateRoute(ctx, id, update))
}

// DeleteRoute deletes route id. The intent is logged at info level before
// the dry-run check, so it shows up in dry runs too.
func (c *Client) DeleteRoute(ctx context.Context, id string) error {
	c.logger.Info("deleting route with ID "+id,
		zap.String("route_id", id),
		zap.Bool("dry_run", c.dryRun),
	)
	return wrapError(c.mutator.DeleteRoute(ctx, id))
}

// Close destroys the sealed API key. Later requests fail with
// ErrClientClosed; dry-run mutations keep succeeding since they send nothing.
func (c *Client) Close() error {
	c.secret.Destroy()
	return nil
}
