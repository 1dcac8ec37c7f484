package idmap

import (
	"sync/atomic"
	"time"
)

// MetricsCollector is an interface for collecting operational metrics
// from code driving an IdMap, such as churn harnesses or entity
// systems. Implement it to integrate with an external monitoring
// system.
type MetricsCollector interface {
	// RecordInsert is called after an insert operation.
	RecordInsert(duration time.Duration)

	// RecordRemove is called after a remove operation. hit is false
	// when the identifier was not occupied.
	RecordRemove(duration time.Duration, hit bool)

	// RecordIterate is called after a full traversal of count live
	// values.
	RecordIterate(count int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration)       {}
func (NoopMetricsCollector) RecordRemove(time.Duration, bool) {}
func (NoopMetricsCollector) RecordIterate(int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection,
// useful for debugging and the stress driver without external
// dependencies.
type BasicMetricsCollector struct {
	InsertCount       atomic.Int64
	InsertTotalNanos  atomic.Int64
	RemoveCount       atomic.Int64
	RemoveMisses      atomic.Int64
	RemoveTotalNanos  atomic.Int64
	IterateCount      atomic.Int64
	IterateItems      atomic.Int64
	IterateTotalNanos atomic.Int64
}

func (c *BasicMetricsCollector) RecordInsert(d time.Duration) {
	c.InsertCount.Add(1)
	c.InsertTotalNanos.Add(int64(d))
}

func (c *BasicMetricsCollector) RecordRemove(d time.Duration, hit bool) {
	c.RemoveCount.Add(1)
	if !hit {
		c.RemoveMisses.Add(1)
	}
	c.RemoveTotalNanos.Add(int64(d))
}

func (c *BasicMetricsCollector) RecordIterate(count int, d time.Duration) {
	c.IterateCount.Add(1)
	c.IterateItems.Add(int64(count))
	c.IterateTotalNanos.Add(int64(d))
}

// Inserts returns the number of recorded insert operations.
func (c *BasicMetricsCollector) Inserts() int64 { return c.InsertCount.Load() }

// Removes returns the number of recorded remove operations.
func (c *BasicMetricsCollector) Removes() int64 { return c.RemoveCount.Load() }

// Misses returns the number of removes that found no value.
func (c *BasicMetricsCollector) Misses() int64 { return c.RemoveMisses.Load() }

// Traversals returns the number of recorded full traversals.
func (c *BasicMetricsCollector) Traversals() int64 { return c.IterateCount.Load() }

// TraversedItems returns the total number of values visited across all
// recorded traversals.
func (c *BasicMetricsCollector) TraversedItems() int64 { return c.IterateItems.Load() }

// AvgInsert returns the mean insert duration, or zero if none were
// recorded.
func (c *BasicMetricsCollector) AvgInsert() time.Duration {
	n := c.InsertCount.Load()
	if n == 0 {
		return 0
	}
	return time.Duration(c.InsertTotalNanos.Load() / n)
}

// AvgRemove returns the mean remove duration, or zero if none were
// recorded.
func (c *BasicMetricsCollector) AvgRemove() time.Duration {
	n := c.RemoveCount.Load()
	if n == 0 {
		return 0
	}
	return time.Duration(c.RemoveTotalNanos.Load() / n)
}
