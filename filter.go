package metriki

// Filter decides whether a named metric is included in a snapshot.
// Implementations must be safe for concurrent use; Accept is called under the
// registry's read lock and must not call back into the registry.
type Filter interface {
	Accept(name string, metric Metric) bool
}

// FilterFunc adapts a plain function to the Filter interface.
type FilterFunc func(name string, metric Metric) bool

func (f FilterFunc) Accept(name string, metric Metric) bool { return f(name, metric) }
