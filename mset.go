package metriki

// MetricsSet produces a batch of named metrics on demand. It lets dynamically
// computed or aggregated metrics join snapshots without living in the
// registry's static map.
//
// GetAll is called synchronously on every Snapshot, under the registry's read
// lock; each call should reflect current state and must not call back into the
// registry. Implementations must be safe for concurrent use.
type MetricsSet interface {
	GetAll() map[string]Metric
}

// MetricsSetFunc adapts a plain function to the MetricsSet interface.
type MetricsSetFunc func() map[string]Metric

func (f MetricsSetFunc) GetAll() map[string]Metric { return f() }
