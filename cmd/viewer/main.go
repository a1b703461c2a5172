// Package main is the interactive terminal client for the customer list.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/custview/custview/internal/config"
	"github.com/custview/custview/internal/logging"
	"github.com/custview/custview/internal/viewer"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadViewer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr so the table on stdout stays readable.
	logger := logging.New(os.Stderr, cfg.LogLevel, "text")
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		logger.Error("invalid timezone", "timezone", cfg.Timezone, "error", err)
		os.Exit(1)
	}

	opts := viewer.Options{Location: loc, Paging: viewer.PagingFetchOrder}
	if cfg.GlobalSort {
		opts.Paging = viewer.PagingSortedRank
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := viewer.NewClient(cfg.APIURL, viewer.NewHTTPClient(cfg.FetchTimeout))
	if err := run(ctx, client, opts, logger, os.Stdin, os.Stdout); err != nil {
		logger.Error("viewer stopped", "error", err)
		os.Exit(1)
	}
}

// run drives a session from line-oriented input until quit, EOF or ctx ends.
func run(ctx context.Context, fetcher viewer.Fetcher, opts viewer.Options, logger *slog.Logger, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu      sync.Mutex
		current = viewer.InitialState()
	)
	session := viewer.NewSession(fetcher, opts, logger, func(s viewer.Snapshot) {
		mu.Lock()
		current = s.State
		mu.Unlock()

		if s.Loading {
			fmt.Fprintln(out, "loading...")
		}
		if err := viewer.WriteTable(out, s.View); err != nil {
			logger.Warn("failed to draw table", "error", err)
		}
		fmt.Fprint(out, "> ")
	})

	runErr := make(chan error, 1)
	go func() { runErr <- session.Run(ctx) }()

	fmt.Fprintln(out, helpText)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			logger.Warn("input error", "error", err)
		}
	}()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case line, ok := <-lines:
			if !ok {
				break loop
			}

			mu.Lock()
			state := current
			mu.Unlock()

			ev, err := parseCommand(line, state)
			switch {
			case errors.Is(err, errQuit):
				break loop
			case errors.Is(err, errHelp):
				fmt.Fprintln(out, helpText)
				fmt.Fprint(out, "> ")
				continue
			case err != nil:
				fmt.Fprintln(out, err)
				fmt.Fprint(out, "> ")
				continue
			case ev == nil:
				fmt.Fprint(out, "> ")
				continue
			}
			if err := session.Dispatch(ctx, ev); err != nil {
				break loop
			}
		}
	}

	cancel()
	return <-runErr
}
