//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/syncteam/mailroutes"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var (
	apiKey  string
	baseURL string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("MAILGUN_API_KEY")
	baseURL = os.Getenv("MAILGUN_BASE_URL")

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: MAILGUN_API_KEY not set\n")
		os.Exit(0)
	}

	if baseURL == "" {
		baseURL = mailroutes.DefaultBaseURL
	}

	os.Stderr.WriteString("Running integration tests...\n")
	os.Stderr.WriteString("API URL: " + baseURL + "\n")

	os.Exit(m.Run())
}

func newClient(t *testing.T, dryRun bool, opts ...mailroutes.Option) *mailroutes.Client {
	t.Helper()

	opts = append([]mailroutes.Option{
		mailroutes.WithBaseURL(baseURL),
		mailroutes.WithTimeout(30 * time.Second),
	}, opts...)

	client, err := mailroutes.New(apiKey, dryRun, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestIntegration_ListRoutes(t *testing.T) {
	client := newClient(t, false)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	page, err := client.ListRoutes(ctx)
	if err != nil {
		t.Fatalf("ListRoutes() error = %v", err)
	}
	if uint64(len(page.Items)) > page.TotalCount {
		t.Errorf("page has %d items but total_count is %d", len(page.Items), page.TotalCount)
	}
	for _, route := range page.Items {
		if route.ID == "" {
			t.Error("route without ID")
		}
	}
}

func TestIntegration_ListRoutesPastEnd(t *testing.T) {
	client := newClient(t, false)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	first, err := client.ListRoutes(ctx)
	if err != nil {
		t.Fatalf("ListRoutes() error = %v", err)
	}

	page, err := client.ListRoutes(ctx, mailroutes.WithSkip(first.TotalCount))
	if err != nil {
		t.Fatalf("ListRoutes(skip=%d) error = %v", first.TotalCount, err)
	}
	if len(page.Items) != 0 {
		t.Errorf("ListRoutes(skip=%d) returned %d items, want 0", first.TotalCount, len(page.Items))
	}
}

func TestIntegration_ListRoutesWithLimit(t *testing.T) {
	client := newClient(t, false)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	page, err := client.ListRoutes(ctx, mailroutes.WithLimit(1))
	if err != nil {
		t.Fatalf("ListRoutes(limit=1) error = %v", err)
	}
	if len(page.Items) > 1 {
		t.Errorf("ListRoutes(limit=1) returned %d items", len(page.Items))
	}
}

func TestIntegration_InvalidAPIKey(t *testing.T) {
	client, err := mailroutes.New("key-invalid", false, mailroutes.WithBaseURL(baseURL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	_, err = client.ListRoutes(ctx)
	if !errors.Is(err, mailroutes.ErrUnauthorized) {
		t.Fatalf("ListRoutes() error = %v, want ErrUnauthorized", err)
	}

	var apiErr *mailroutes.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
}

// Mutations run in dry-run mode only so the account is never changed.
func TestIntegration_DryRunMutations(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	client := newClient(t, true, mailroutes.WithLogger(zap.New(core)))
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	before, err := client.ListRoutes(ctx)
	if err != nil {
		t.Fatalf("ListRoutes() error = %v", err)
	}

	route := mailroutes.RouteDescriptor{
		Priority:    0,
		Description: "mailroutes integration",
		Expression:  mailroutes.MatchRecipient(`integration@example\.com`),
		Actions:     []string{mailroutes.Stop()},
	}
	if err := client.CreateRoute(ctx, route); err != nil {
		t.Errorf("CreateRoute() error = %v", err)
	}
	if err := client.UpdateRoute(ctx, "000000000000000000000000", mailroutes.RouteUpdate{Priority: 1}); err != nil {
		t.Errorf("UpdateRoute() error = %v", err)
	}
	if err := client.DeleteRoute(ctx, "000000000000000000000000"); err != nil {
		t.Errorf("DeleteRoute() error = %v", err)
	}

	if n := logs.FilterMessage("deleting route with ID 000000000000000000000000").Len(); n != 1 {
		t.Errorf("delete log entries = %d, want 1", n)
	}

	after, err := client.ListRoutes(ctx)
	if err != nil {
		t.Fatalf("ListRoutes() error = %v", err)
	}
	if after.TotalCount != before.TotalCount {
		t.Errorf("total_count changed from %d to %d in dry-run mode", before.TotalCount, after.TotalCount)
	}
}
