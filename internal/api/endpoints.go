package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

const routesPath = "routes"

// ListRoutes fetches a single page of routes.
func (c *Client) ListRoutes(ctx context.Context, params ListParams) (*RoutesPage, error) {
	var result RoutesPage
	if err := c.Do(ctx, http.MethodGet, listPath(params), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateRoute creates a route. The server's response body is discarded.
func (c *Client) CreateRoute(ctx context.Context, route RouteDescriptor) error {
	return c.Do(ctx, http.MethodPost, routesPath, route.Form(), nil)
}

// UpdateRoute changes the priority and actions of an existing route.
func (c *Client) UpdateRoute(ctx context.Context, id string, update RouteUpdate) error {
	return c.Do(ctx, http.MethodPut, routePath(id), update.Form(), nil)
}

// DeleteRoute deletes a route.
func (c *Client) DeleteRoute(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, routePath(id), nil, nil)
}

func listPath(params ListParams) string {
	query := url.Values{}
	if params.Skip != nil {
		query.Set("skip", strconv.FormatUint(*params.Skip, 10))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if len(query) == 0 {
		return routesPath
	}
	return routesPath + "?" + query.Encode()
}

func routePath(id string) string {
	return routesPath + "/" + url.PathEscape(id)
}
