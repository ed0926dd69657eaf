/*
Package metriki provides a concurrency-safe, named-metric registry for Go.

# Overview

The library is organized around a Registry and two capability interfaces:

1. Registry: get-or-create access to shared metric instruments by name.
Instruments are created lazily on first request and deduplicated by name; every
caller asking for the same name receives a handle to the same underlying
instrument. Five instrument kinds are supported: Counter, Meter, Histogram,
Timer and Gauge.

	reg := metriki.NewRegistry()
	reg.Meter("http.request").Mark(1)
	reg.Counter("queue.depth").Incr(1)

2. MetricsSet: a provider of dynamically computed metrics. A registered set is
asked for its current batch of named metrics on every Snapshot, letting
aggregated or derived metrics join reports without living in the registry's
static map.

	type MetricsSet interface {
	  GetAll() map[string]Metric
	}

3. Filter: a predicate over (name, Metric) deciding snapshot inclusion.

	type Filter interface {
	  Accept(name string, metric Metric) bool
	}

# How it works (high level)

 1. Fast path: accessors look the name up under a read lock and return the
    existing instrument, verifying its kind matches the request.
 2. Slow path: on a miss the accessor takes the write lock, re-checks, and
    inserts a new instrument only if still absent, so concurrent creators of
    the same name all converge on one instance.
 3. Instruments are mutated through the returned handle, outside any registry
    lock. Steady-state recording never contends on the registry.
 4. Snapshot folds the static map and every registered metrics set's current
    output into a detached mapping, applying the optional filter, with name
    collisions resolved last-write-wins in fold order (static entries first,
    then sets in registration order).

Requesting an existing name as a different kind is a programming error and
panics with *KindMismatchError; gauges are the exception, replaced
unconditionally on re-registration.

# Reporting

A Snapshot marshals to JSON as an object of flat per-metric readings. The
promexport subpackage exposes a registry as a prometheus.Collector for
pull-based scraping.

# Build and test

- Run unit tests:

	go test ./...

- Run with the race detector:

	go test -race ./...

# Notes

- A Registry is meant to be shared by reference; construct one and pass it to
instrumented components and reporters explicitly rather than through a global.

- Metric values are cheap handles. Copying a Metric or a Snapshot entry never
copies instrument state.
*/
package metriki
