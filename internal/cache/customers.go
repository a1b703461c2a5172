package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/custview/custview/internal/model"
)

const (
	customersKey = "customers:all"

	// DefaultCustomersTTL is used when no TTL is configured.
	DefaultCustomersTTL = 30 * time.Second
)

// ErrCacheMiss is returned when the customer list is not cached.
var ErrCacheMiss = errors.New("cache miss")

// GetCustomers returns the cached customer list.
// Returns ErrCacheMiss if nothing is cached.
func (c *Cache) GetCustomers(ctx context.Context) ([]*model.Customer, error) {
	data, err := c.client.Get(ctx, customersKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	customers, err := decodeCustomers(data)
	if err != nil {
		// Drop the unreadable entry so the next request repopulates it.
		c.client.Del(ctx, customersKey)
		return nil, err
	}

	return customers, nil
}

// SetCustomers caches the full customer list for the configured TTL.
func (c *Cache) SetCustomers(ctx context.Context, customers []*model.Customer) error {
	data, err := encodeCustomers(customers)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, customersKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache customers: %w", err)
	}

	return nil
}

// InvalidateCustomers removes the cached customer list.
func (c *Cache) InvalidateCustomers(ctx context.Context) error {
	if err := c.client.Del(ctx, customersKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate customers: %w", err)
	}
	return nil
}

func encodeCustomers(customers []*model.Customer) ([]byte, error) {
	if customers == nil {
		customers = []*model.Customer{}
	}
	data, err := json.Marshal(customers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode customers: %w", err)
	}
	return data, nil
}

func decodeCustomers(data []byte) ([]*model.Customer, error) {
	var customers []*model.Customer
	if err := json.Unmarshal(data, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode cached customers: %w", err)
	}
	if customers == nil {
		customers = []*model.Customer{}
	}
	return customers, nil
}
