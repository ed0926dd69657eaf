package metriki

import "sync/atomic"

// Counter measures the number of some state. It can move in both directions,
// e.g. tracking currently in-flight requests.
// All methods are safe for concurrent use.
type Counter struct {
	val atomic.Int64
}

// NewCounter constructs a Counter starting at zero.
func NewCounter() *Counter { return &Counter{} }

// Incr adds n to the counter.
func (c *Counter) Incr(n int64) { c.val.Add(n) }

// Decr subtracts n from the counter.
func (c *Counter) Decr(n int64) { c.val.Add(-n) }

// Count returns the current value.
func (c *Counter) Count() int64 { return c.val.Load() }
