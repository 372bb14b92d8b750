// Command mailroutes lists and edits Mailgun routes.
//
// Usage:
//
//	mailroutes list
//	mailroutes create <priority> <description> <expression> [action...]
//	mailroutes update <id> <priority> [action...]
//	mailroutes delete <id>
//
// Configuration is read from the environment and an optional .env file; see
// internal/config. Set MAILROUTES_DRY_RUN=true to simulate create, update
// and delete.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/syncteam/mailroutes"
	"github.com/syncteam/mailroutes/internal/config"
	"github.com/syncteam/mailroutes/internal/logging"
)

const usage = `usage: mailroutes <command> [args]

commands:
  list
  create <priority> <description> <expression> [action...]
  update <id> <priority> [action...]
  delete <id>`

var errUsage = errors.New(usage)

// routeClient is the subset of *mailroutes.Client the commands use.
type routeClient interface {
	ListRoutes(ctx context.Context, opts ...mailroutes.ListOption) (*mailroutes.RoutesPage, error)
	CreateRoute(ctx context.Context, route mailroutes.RouteDescriptor) error
	UpdateRoute(ctx context.Context, id string, update mailroutes.RouteUpdate) error
	DeleteRoute(ctx context.Context, id string) error
	DryRun() bool
}

// Config holds the process streams and the command timeout.
type Config struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Timeout time.Duration
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Timeout: 5 * time.Minute,
	}
}

// ListOutput is printed by the list command.
type ListOutput struct {
	TotalCount uint64             `json:"total_count"`
	Items      []mailroutes.Route `json:"items"`
}

// ResultOutput is printed by the mutating commands.
type ResultOutput struct {
	Success bool   `json:"success"`
	DryRun  bool   `json:"dry_run"`
	Command string `json:"command"`
	ID      string `json:"id,omitempty"`
}

// run loads configuration, builds a client and dispatches args[1:].
func run(args []string, cfg Config) error {
	if len(args) < 2 {
		return errUsage
	}

	envCfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := envCfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(logging.LogConfig{
		Level:  envCfg.LogLevel,
		Output: cfg.Stderr,
		Name:   "mailroutes",
	})
	defer func() { _ = logger.Sync() }()

	client, err := mailroutes.New(envCfg.APIKey, envCfg.DryRun,
		mailroutes.WithBaseURL(envCfg.BaseURL),
		mailroutes.WithTimeout(envCfg.Timeout),
		mailroutes.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer client.Close()

	if envCfg.DryRun {
		logger.Info("dry run: no routes will be changed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	return dispatch(ctx, client, args[1:], cfg.Stdout)
}

func dispatch(ctx context.Context, client routeClient, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "list":
		return listRoutes(ctx, client, out)
	case "create":
		return createRoute(ctx, client, args[1:], out)
	case "update":
		return updateRoute(ctx, client, args[1:], out)
	case "delete":
		return deleteRoute(ctx, client, args[1:], out)
	default:
		return fmt.Errorf("unknown command: %s\n%w", args[0], errUsage)
	}
}

// collectRoutes walks every page, advancing skip by the number of routes
// received until total_count is reached or a page comes back empty.
func collectRoutes(ctx context.Context, client routeClient) (*ListOutput, error) {
	result := &ListOutput{Items: []mailroutes.Route{}}
	var opts []mailroutes.ListOption

	for {
		page, err := client.ListRoutes(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("list routes (skip %d): %w", len(result.Items), err)
		}

		result.Items = append(result.Items, page.Items...)
		result.TotalCount = page.TotalCount

		if len(page.Items) == 0 || uint64(len(result.Items)) >= page.TotalCount {
			return result, nil
		}
		opts = []mailroutes.ListOption{mailroutes.WithSkip(uint64(len(result.Items)))}
	}
}

func listRoutes(ctx context.Context, client routeClient, out io.Writer) error {
	result, err := collectRoutes(ctx, client)
	if err != nil {
		return err
	}
	return writeJSON(out, result)
}

func createRoute(ctx context.Context, client routeClient, args []string, out io.Writer) error {
	if len(args) < 3 {
		return fmt.Errorf("create needs <priority> <description> <expression>\n%w", errUsage)
	}

	priority, err := parsePriority(args[0])
	if err != nil {
		return err
	}

	route := mailroutes.RouteDescriptor{
		Priority:    priority,
		Description: args[1],
		Expression:  args[2],
		Actions:     args[3:],
	}
	if err := client.CreateRoute(ctx, route); err != nil {
		return fmt.Errorf("create route %q: %w", route.Expression, err)
	}

	return writeJSON(out, ResultOutput{Success: true, DryRun: client.DryRun(), Command: "create"})
}

func updateRoute(ctx context.Context, client routeClient, args []string, out io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("update needs <id> <priority>\n%w", errUsage)
	}

	priority, err := parsePriority(args[1])
	if err != nil {
		return err
	}

	id := args[0]
	update := mailroutes.RouteUpdate{Priority: priority, Actions: args[2:]}
	if err := client.UpdateRoute(ctx, id, update); err != nil {
		return fmt.Errorf("update route %s: %w", id, err)
	}

	return writeJSON(out, ResultOutput{Success: true, DryRun: client.DryRun(), Command: "update", ID: id})
}

func deleteRoute(ctx context.Context, client routeClient, args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("delete needs <id>\n%w", errUsage)
	}

	id := args[0]
	if err := client.DeleteRoute(ctx, id); err != nil {
		return fmt.Errorf("delete route %s: %w", id, err)
	}

	return writeJSON(out, ResultOutput{Success: true, DryRun: client.DryRun(), Command: "delete", ID: id})
}

func parsePriority(value string) (int, error) {
	priority, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid priority %q: %w", value, err)
	}
	return priority, nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

var _ routeClient = (*mailroutes.Client)(nil)
