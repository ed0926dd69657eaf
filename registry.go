package metriki

import (
	"log/slog"
	"sync"
)

// Registry is the entrypoint of all metrics: a concurrency-safe mapping from
// name to instrument with get-or-create semantics, plus dynamically registered
// metrics sets and an optional snapshot filter.
//
// Instrumented code asks the registry for a handle once (or on every call;
// lookups are cheap, read-locked map hits) and then mutates the instrument
// directly, outside any registry lock. Contention on the registry itself only
// occurs on first-time creation of a name, gauge registration and metrics-set
// (un)registration, which all take the write lock.
//
// A Registry is typically constructed once and shared by reference between all
// instrumented components and the reporter. It is not a process-wide global;
// pass it explicitly to whatever needs it.
type Registry struct {
	logger *slog.Logger

	// One lock guards metrics, msets, msetOrder and filter together so a
	// snapshot always observes a consistent pairing of all four.
	mu        sync.RWMutex
	metrics   map[string]Metric
	msets     map[string]MetricsSet
	msetOrder []string
	filter    Filter
}

// NewRegistry constructs an empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	cfg := applyRegistryOptions(opts)
	return &Registry{
		logger:  cfg.logger,
		metrics: make(map[string]Metric),
		msets:   make(map[string]MetricsSet),
	}
}

// Counter returns the Counter registered under name, creating it on first use.
//
// Panics with *KindMismatchError if name is already bound to another kind.
func (r *Registry) Counter(name string) *Counter {
	m := r.getOrCreate(name, KindCounter, func() Metric { return WrapCounter(NewCounter()) })
	c, _ := m.Counter()
	return c
}

// Meter returns the Meter registered under name, creating it on first use.
//
// Panics with *KindMismatchError if name is already bound to another kind.
func (r *Registry) Meter(name string) *Meter {
	m := r.getOrCreate(name, KindMeter, func() Metric { return WrapMeter(NewMeter()) })
	mt, _ := m.Meter()
	return mt
}

// Histogram returns the Histogram registered under name, creating it on first use.
//
// Panics with *KindMismatchError if name is already bound to another kind.
func (r *Registry) Histogram(name string) *Histogram {
	m := r.getOrCreate(name, KindHistogram, func() Metric { return WrapHistogram(NewHistogram()) })
	h, _ := m.Histogram()
	return h
}

// Timer returns the Timer registered under name, creating it on first use.
//
// Panics with *KindMismatchError if name is already bound to another kind.
func (r *Registry) Timer(name string) *Timer {
	m := r.getOrCreate(name, KindTimer, func() Metric { return WrapTimer(NewTimer()) })
	t, _ := m.Timer()
	return t
}

// getOrCreate returns the Metric bound to name, constructing and inserting one
// if the name is unseen. Creation is insert-if-absent: after a read-path miss
// the write path re-checks under the exclusive lock, so all concurrent
// creators of the same name converge on the single instrument that won the
// insert. Nothing external runs under either lock; create only allocates.
func (r *Registry) getOrCreate(name string, kind MetricKind, create func() Metric) Metric {
	r.mu.RLock()
	if m, ok := r.metrics[name]; ok {
		r.mu.RUnlock()
		return mustKind(name, kind, m)
	}
	r.mu.RUnlock()

	r.mu.Lock()
	if m, ok := r.metrics[name]; ok {
		r.mu.Unlock()
		return mustKind(name, kind, m)
	}
	m := create()
	r.metrics[name] = m
	r.mu.Unlock()

	r.logger.Debug("metric created", "name", name, "kind", kind)
	return m
}

// mustKind verifies the stored variant matches the requested kind.
func mustKind(name string, want MetricKind, m Metric) Metric {
	if m.Kind() != want {
		panic(&KindMismatchError{Name: name, Registered: m.Kind(), Requested: want})
	}
	return m
}

// RegisterGauge registers a Gauge computing its value from fn under name,
// unconditionally replacing any prior entry regardless of its kind. The
// function is invoked lazily, whenever the gauge is read or snapshotted.
func (r *Registry) RegisterGauge(name string, fn GaugeFn) {
	g := WrapGauge(NewGauge(fn))
	r.mu.Lock()
	r.metrics[name] = g
	r.mu.Unlock()

	r.logger.Debug("gauge registered", "name", name)
}

// RegisterMetricsSet registers set under name, replacing any prior set with
// that name (a replacement keeps the original position in registration order).
// The name identifies the set for replacement and removal only; it has no
// relation to the metric names the set emits into snapshots.
func (r *Registry) RegisterMetricsSet(name string, set MetricsSet) {
	r.mu.Lock()
	if _, ok := r.msets[name]; !ok {
		r.msetOrder = append(r.msetOrder, name)
	}
	r.msets[name] = set
	r.mu.Unlock()

	r.logger.Debug("metrics set registered", "name", name)
}

// UnregisterMetricsSet removes the set registered under name. Removing an
// unknown name is a no-op.
func (r *Registry) UnregisterMetricsSet(name string) {
	r.mu.Lock()
	if _, ok := r.msets[name]; ok {
		delete(r.msets, name)
		for i, n := range r.msetOrder {
			if n == name {
				r.msetOrder = append(r.msetOrder[:i], r.msetOrder[i+1:]...)
				break
			}
		}
	}
	r.mu.Unlock()
}

// SetFilter sets the filter applied by Snapshot, replacing the current one.
// A nil filter accepts every metric. Only subsequent Snapshot calls are
// affected; already-returned snapshots never change.
func (r *Registry) SetFilter(f Filter) {
	r.mu.Lock()
	r.filter = f
	r.mu.Unlock()
}

// Snapshot returns all metrics held in the registry as a detached mapping:
// static entries first, then each registered metrics set's current output in
// registration order, with a name collision resolved last-write-wins. If a
// filter is set, entries it rejects are omitted.
//
// Metrics-set output is produced synchronously on every call; cost scales with
// the number of sets. A set or gauge that panics while producing propagates to
// the Snapshot caller.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(Snapshot, len(r.metrics))
	for name, m := range r.metrics {
		if r.filter == nil || r.filter.Accept(name, m) {
			out[name] = m
		}
	}
	for _, setName := range r.msetOrder {
		for name, m := range r.msets[setName].GetAll() {
			if r.filter == nil || r.filter.Accept(name, m) {
				out[name] = m
			}
		}
	}
	return out
}

// Snapshot is a detached, point-in-time mapping of metric names to their
// variants. Map entries share the live instruments, so values read from a
// snapshot reflect mutations made after it was taken; the set of names does
// not.
type Snapshot map[string]Metric
