// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the customer list path.
// Implementations can forward these to Prometheus, StatsD, etc.
type Recorder interface {
	IncCustomersCacheHit()
	IncCustomersCacheMiss()
	IncCustomersListError()
	ObserveCustomersListDuration(duration time.Duration)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
