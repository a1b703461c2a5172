package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	CustomersCacheHits      uint64
	CustomersCacheMisses    uint64
	CustomersListErrors     uint64
	CustomersListCount      uint64
	CustomersListTotalNanos int64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	cacheHits      atomic.Uint64
	cacheMisses    atomic.Uint64
	listErrors     atomic.Uint64
	listCount      atomic.Uint64
	listTotalNanos atomic.Int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		CustomersCacheHits:      m.cacheHits.Load(),
		CustomersCacheMisses:    m.cacheMisses.Load(),
		CustomersListErrors:     m.listErrors.Load(),
		CustomersListCount:      m.listCount.Load(),
		CustomersListTotalNanos: m.listTotalNanos.Load(),
	}
}

// IncCustomersCacheHit increments the cache hit counter.
func (m *InMemoryRecorder) IncCustomersCacheHit() {
	m.cacheHits.Add(1)
}

// IncCustomersCacheMiss increments the cache miss counter.
func (m *InMemoryRecorder) IncCustomersCacheMiss() {
	m.cacheMisses.Add(1)
}

// IncCustomersListError increments the list error counter.
func (m *InMemoryRecorder) IncCustomersListError() {
	m.listErrors.Add(1)
}

// ObserveCustomersListDuration records one list call.
func (m *InMemoryRecorder) ObserveCustomersListDuration(duration time.Duration) {
	m.listCount.Add(1)
	m.listTotalNanos.Add(duration.Nanoseconds())
}
