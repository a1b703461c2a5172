// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/custview/custview/internal/cache"
	"github.com/custview/custview/internal/metrics"
	"github.com/custview/custview/internal/model"
)

// CustomerStore is the read side of the record store.
type CustomerStore interface {
	ListCustomers(ctx context.Context) ([]*model.Customer, error)
}

// CustomerCache holds a copy of the full customer list.
type CustomerCache interface {
	GetCustomers(ctx context.Context) ([]*model.Customer, error)
	SetCustomers(ctx context.Context, customers []*model.Customer) error
}

// CustomerService answers customer list queries.
type CustomerService struct {
	store   CustomerStore
	cache   CustomerCache
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewCustomerService creates a new CustomerService.
// cache may be nil, in which case every call reads the store.
func NewCustomerService(store CustomerStore, c CustomerCache, logger *slog.Logger, recorder metrics.Recorder) *CustomerService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CustomerService{
		store:   store,
		cache:   c,
		logger:  logger.With("component", "service.customers"),
		metrics: recorder,
	}
}

// ListCustomersInput carries the query parameters of a list request.
// Page and SortBy are accepted for compatibility with existing clients;
// paging and sorting happen in the presentation client.
type ListCustomersInput struct {
	Page   int
	SortBy string
}

// ListCustomers returns the complete, unfiltered customer set in store order.
func (s *CustomerService) ListCustomers(ctx context.Context, input ListCustomersInput) ([]*model.Customer, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveCustomersListDuration(time.Since(start))
	}()

	if input.Page != 0 || input.SortBy != "" {
		s.logger.DebugContext(ctx, "list parameters ignored",
			"page", input.Page,
			"sort_by", input.SortBy,
		)
	}

	if customers, ok := s.fromCache(ctx); ok {
		return customers, nil
	}

	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		s.metrics.IncCustomersListError()
		return nil, fmt.Errorf("list customers: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetCustomers(ctx, customers); err != nil {
			s.logger.WarnContext(ctx, "failed to cache customers", "error", err)
		}
	}

	return customers, nil
}

// fromCache returns the cached list if one is available. Cache errors are
// logged and treated as a miss.
func (s *CustomerService) fromCache(ctx context.Context) ([]*model.Customer, bool) {
	if s.cache == nil {
		return nil, false
	}

	customers, err := s.cache.GetCustomers(ctx)
	if err == nil {
		s.metrics.IncCustomersCacheHit()
		return customers, true
	}

	s.metrics.IncCustomersCacheMiss()
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.WarnContext(ctx, "customer cache unavailable", "error", err)
	}
	return nil, false
}
