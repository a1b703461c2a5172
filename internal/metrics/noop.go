package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncCustomersCacheHit is a no-op.
func (n *NoopRecorder) IncCustomersCacheHit() {}

// IncCustomersCacheMiss is a no-op.
func (n *NoopRecorder) IncCustomersCacheMiss() {}

// IncCustomersListError is a no-op.
func (n *NoopRecorder) IncCustomersListError() {}

// ObserveCustomersListDuration is a no-op.
func (n *NoopRecorder) ObserveCustomersListDuration(duration time.Duration) {}
