package mailroutes

import "github.com/syncteam/mailroutes/internal/api"

// Route is a routing rule returned by the server.
type Route = api.Route

// RoutesPage is one page of routes plus the server-wide total.
type RoutesPage = api.RoutesPage

// Description is a route description decoded without assuming its JSON type.
type Description = api.Description

// RouteDescriptor describes a route to create. Actions are sent in order.
type RouteDescriptor = api.RouteDescriptor

// RouteUpdate holds the fields an update may change. Description and
// expression are fixed once a route exists; delete and recreate to change
// them.
type RouteUpdate = api.RouteUpdate

// ListOption configures a ListRoutes call.
type ListOption func(*api.ListParams)

// WithSkip sets the offset into the route collection. Without it the skip
// parameter is omitted and the server starts at the first route.
func WithSkip(skip uint64) ListOption {
	return func(p *api.ListParams) {
		p.Skip = &skip
	}
}

// WithLimit sets the page size. The server default is 100.
func WithLimit(limit int) ListOption {
	return func(p *api.ListParams) {
		p.Limit = limit
	}
}
