package mailroutes

import (
	"context"

	"go.uber.org/zap"

	"github.com/syncteam/mailroutes/internal/api"
)

// mutator is the set of operations that change server state. Client reaches
// them only through this interface, bound once at construction, so every new
// mutation needs a dry-run implementation before it compiles.
type mutator interface {
	CreateRoute(ctx context.Context, route api.RouteDescriptor) error
	UpdateRoute(ctx context.Context, id string, update api.RouteUpdate) error
	DeleteRoute(ctx context.Context, id string) error
}

var (
	_ mutator = (*api.Client)(nil)
	_ mutator = dryRunMutator{}
)

// dryRunMutator accepts every mutation and performs none.
type dryRunMutator struct {
	logger *zap.Logger
}

func (d dryRunMutator) CreateRoute(_ context.Context, route api.RouteDescriptor) error {
	d.logger.Debug("dry run: skipping route creation",
		zap.Int("priority", route.Priority),
		zap.String("expression", route.Expression),
		zap.Strings("actions", route.Actions),
	)
	return nil
}

func (d dryRunMutator) UpdateRoute(_ context.Context, id string, update api.RouteUpdate) error {
	d.logger.Debug("dry run: skipping route update",
		zap.String("route_id", id),
		zap.Int("priority", update.Priority),
		zap.Strings("actions", update.Actions),
	)
	return nil
}

func (d dryRunMutator) DeleteRoute(_ context.Context, id string) error {
	d.logger.Debug("dry run: skipping route deletion", zap.String("route_id", id))
	return nil
}

// selectMutator returns live unless dryRun is set.
func selectMutator(dryRun bool, live mutator, logger *zap.Logger) mutator {
	if dryRun {
		return dryRunMutator{logger: logger}
	}
	return live
}
