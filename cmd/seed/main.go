// Command seed loads sample customers into the customers table.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lib/pq"

	"github.com/custview/custview/internal/cache"
	"github.com/custview/custview/internal/config"
	"github.com/custview/custview/internal/logging"
	"github.com/custview/custview/internal/model"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	var (
		databaseURL = flag.String("database-url", cfg.DatabaseDSN(), "PostgreSQL connection string")
		redisURL    = flag.String("redis-url", cfg.RedisURL, "Redis URL; when set the cached list is invalidated")
		schemaFile  = flag.String("schema", "migrations/000001_customers.up.sql", "SQL file applied before seeding; empty skips it")
		count       = flag.Int("count", 100, "number of customers to insert")
		seed        = flag.Int64("seed", time.Now().UnixNano(), "random seed for generated data")
		truncate    = flag.Bool("truncate", false, "delete existing customers first")
	)
	flag.Parse()

	logger := logging.New(os.Stderr, cfg.LogLevel, "text")

	if *count < 0 {
		logger.Error("count must not be negative", "count", *count)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, logger, *databaseURL, *schemaFile, *count, *seed, *truncate); err != nil {
		logger.Error("seed failed",
			"error", logging.SanitizeError(err, *databaseURL, cfg.DBPassword),
			"database_url", logging.RedactURL(*databaseURL),
		)
		os.Exit(1)
	}

	if *redisURL != "" {
		if err := invalidateCache(ctx, *redisURL); err != nil {
			// The cached list expires on its own.
			logger.Warn("failed to invalidate customer cache",
				"error", logging.SanitizeError(err, *redisURL),
				"redis_url", logging.RedactURL(*redisURL),
			)
		}
	}
}

func run(ctx context.Context, logger *slog.Logger, databaseURL, schemaFile string, count int, seed int64, truncate bool) error {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if schemaFile != "" {
		content, err := os.ReadFile(schemaFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", schemaFile, err)
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("apply %s: %w", schemaFile, err)
		}
		logger.Info("schema applied", "file", schemaFile)
	}

	if truncate {
		if _, err := db.ExecContext(ctx, "TRUNCATE customers RESTART IDENTITY"); err != nil {
			return fmt.Errorf("truncate customers: %w", err)
		}
		logger.Info("existing customers removed")
	}

	customers := generateCustomers(count, rand.New(rand.NewSource(seed)), time.Now().UTC())
	if err := copyCustomers(ctx, db, customers); err != nil {
		return err
	}

	logger.Info("customers seeded", "count", len(customers), "seed", seed)
	return nil
}

// copyCustomers bulk inserts customers with COPY in one transaction.
func copyCustomers(ctx context.Context, db *sql.DB, customers []*model.Customer) error {
	txn, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = txn.Rollback() }()

	stmt, err := txn.PrepareContext(ctx, pq.CopyIn("customers", "customer_name", "age", "phone", "location", "created_at"))
	if err != nil {
		return fmt.Errorf("prepare copy: %w", err)
	}

	for _, c := range customers {
		if _, err := stmt.ExecContext(ctx, c.CustomerName, c.Age, c.Phone, c.Location, c.CreatedAt); err != nil {
			_ = stmt.Close()
			return fmt.Errorf("copy customer %q: %w", c.CustomerName, err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return fmt.Errorf("flush copy: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("close copy: %w", err)
	}

	if err := txn.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func invalidateCache(ctx context.Context, redisURL string) error {
	c, err := cache.New(ctx, redisURL, 0)
	if err != nil {
		return err
	}
	defer c.Close()
	return c.InvalidateCustomers(ctx)
}
