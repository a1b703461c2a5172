package main

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/custview/custview/internal/repository"
	"github.com/custview/custview/internal/testutil"
)

func TestRun_SeedsCustomers(t *testing.T) {
	databaseURL := testutil.RequireEnv(t, "DATABASE_URL")
	ctx := context.Background()

	repo, err := repository.New(ctx, databaseURL)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(repo.Close)

	release, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	t.Cleanup(func() { _ = release() })

	if err := testutil.ResetCustomersSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset schema: %v", err)
	}

	root, err := testutil.ProjectRoot()
	if err != nil {
		t.Fatalf("project root: %v", err)
	}
	schema := filepath.Join(root, "migrations", "000001_customers.up.sql")
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	if err := run(ctx, logger, databaseURL, schema, 30, 1, false); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := run(ctx, logger, databaseURL, schema, 15, 2, false); err != nil {
		t.Fatalf("second run: %v", err)
	}
	assertCount(t, ctx, repo, 45)

	if err := run(ctx, logger, databaseURL, "", 5, 3, true); err != nil {
		t.Fatalf("truncate run: %v", err)
	}
	assertCount(t, ctx, repo, 5)

	customers, err := repo.ListCustomers(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if customers[0].Sno != 1 {
		t.Errorf("identity not restarted: first sno = %d", customers[0].Sno)
	}
}

func assertCount(t *testing.T, ctx context.Context, repo *repository.Repository, want int) {
	t.Helper()
	got, err := repo.CountCustomers(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if got != want {
		t.Errorf("count = %d, want %d", got, want)
	}
}
